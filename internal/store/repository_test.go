// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock), mock
}

func TestPostgresRepository_SaveObject(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	loc := int64(2)

	mock.ExpectExec(`INSERT INTO objects`).
		WithArgs(int64(1), "widget", "types.objects.Object", created, &loc, (*int64)(nil), (*int64)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.SaveObject(context.Background(), ObjectRecord{
		ID:         1,
		Name:       "widget",
		TypePath:   "types.objects.Object",
		CreatedAt:  created,
		LocationID: &loc,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetObject(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   bool
		notFound  bool
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "name", "type_path", "created_at", "location_id", "destination_id", "home_id"}).
					AddRow(int64(1), "widget", "types.objects.Object", created, (*int64)(nil), (*int64)(nil), (*int64)(nil))
				mock.ExpectQuery(`SELECT id, name, type_path`).WithArgs(int64(1)).WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, type_path`).WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "type_path", "created_at", "location_id", "destination_id", "home_id"}))
			},
			wantErr:  true,
			notFound: true,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, type_path`).WithArgs(int64(1)).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.setupMock(mock)

			rec, err := repo.GetObject(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				if tt.notFound {
					assert.ErrorIs(t, err, ErrNotFound)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "widget", rec.Name)
				assert.Equal(t, created, rec.CreatedAt)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_DeleteObject(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM objects WHERE id`).WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.DeleteObject(context.Background(), 1))

	mock.ExpectExec(`DELETE FROM objects WHERE id`).WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err := repo.DeleteObject(context.Background(), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Tags(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO object_tags`).
		WithArgs(int64(1), `{"id":7,"date":"2026-03-14 09:26:53","cls":"player"}`, "owner").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.AddTag(ctx, 1, `{"id":7,"date":"2026-03-14 09:26:53","cls":"player"}`, "owner"))

	mock.ExpectExec(`DELETE FROM object_tags WHERE object_id = \$1 AND key`).
		WithArgs(int64(1), "k", "owner").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.RemoveTag(ctx, 1, "k", "owner"))

	mock.ExpectExec(`DELETE FROM object_tags WHERE object_id = \$1 AND category`).
		WithArgs(int64(1), "display_owner").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	require.NoError(t, repo.ClearTags(ctx, 1, "display_owner"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CountTagged(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM object_tags`).
		WithArgs("k", "display_owner", "types.objects.Object").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountTagged(context.Background(), "k", "display_owner", "types.objects.Object")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Attrs(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO object_attributes`).
		WithArgs(int64(1), "usr", "desc", []byte(`"a shiny widget"`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.SetAttr(ctx, AttrRecord{ObjectID: 1, Kind: "usr", Name: "desc", Value: []byte(`"a shiny widget"`)}))

	rows := pgxmock.NewRows([]string{"object_id", "kind", "name", "value"}).
		AddRow(int64(1), "usr", "color", []byte(`"red"`)).
		AddRow(int64(1), "usr", "desc", []byte(`"a shiny widget"`))
	mock.ExpectQuery(`SELECT object_id, kind, name, value FROM object_attributes`).
		WithArgs(int64(1), "usr").
		WillReturnRows(rows)

	attrs, err := repo.ListAttrs(ctx, 1, "usr")
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, "color", attrs[0].Name)

	mock.ExpectExec(`DELETE FROM object_attributes`).
		WithArgs(int64(1), "usr", "desc").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.DeleteAttr(ctx, 1, "usr", "desc"))

	require.NoError(t, mock.ExpectationsWereMet())
}
