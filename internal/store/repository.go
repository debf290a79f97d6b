// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ObjectRecord is the persisted form of a world object.
type ObjectRecord struct {
	ID            int64
	Name          string
	TypePath      string
	CreatedAt     time.Time
	LocationID    *int64
	DestinationID *int64
	HomeID        *int64
}

// TagRecord is one persisted tag.
type TagRecord struct {
	ObjectID int64
	Key      string
	Category string
}

// AttrRecord is one persisted attribute. Values are stored as JSON.
type AttrRecord struct {
	ObjectID int64
	Kind     string
	Name     string
	Value    []byte
}

// Repository persists objects, their tags, and their attributes.
type Repository interface {
	SaveObject(ctx context.Context, rec ObjectRecord) error
	GetObject(ctx context.Context, id int64) (ObjectRecord, error)
	DeleteObject(ctx context.Context, id int64) error

	AddTag(ctx context.Context, objectID int64, key, category string) error
	RemoveTag(ctx context.Context, objectID int64, key, category string) error
	ClearTags(ctx context.Context, objectID int64, category string) error
	CountTagged(ctx context.Context, key, category, typePath string) (int, error)

	SetAttr(ctx context.Context, rec AttrRecord) error
	DeleteAttr(ctx context.Context, objectID int64, kind, name string) error
	ListAttrs(ctx context.Context, objectID int64, kind string) ([]AttrRecord, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	pool poolIface
}

// NewPostgresRepository creates a repository over the given pool.
func NewPostgresRepository(pool poolIface) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// SaveObject creates or updates an object record.
func (r *PostgresRepository) SaveObject(ctx context.Context, rec ObjectRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO objects (id, name, type_path, created_at, location_id, destination_id, home_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   name = $2, type_path = $3, location_id = $5, destination_id = $6, home_id = $7`,
		rec.ID, rec.Name, rec.TypePath, rec.CreatedAt, rec.LocationID, rec.DestinationID, rec.HomeID)
	if err != nil {
		return oops.With("operation", "save object").With("id", rec.ID).Wrap(err)
	}
	return nil
}

// GetObject retrieves an object record by id.
func (r *PostgresRepository) GetObject(ctx context.Context, id int64) (ObjectRecord, error) {
	var rec ObjectRecord
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, type_path, created_at, location_id, destination_id, home_id
		 FROM objects WHERE id = $1`, id).
		Scan(&rec.ID, &rec.Name, &rec.TypePath, &rec.CreatedAt, &rec.LocationID, &rec.DestinationID, &rec.HomeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ObjectRecord{}, oops.With("id", id).Wrap(ErrNotFound)
	}
	if err != nil {
		return ObjectRecord{}, oops.With("operation", "get object").With("id", id).Wrap(err)
	}
	return rec, nil
}

// DeleteObject removes an object. Its tags and attributes go with it via
// foreign key cascade.
func (r *PostgresRepository) DeleteObject(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM objects WHERE id = $1`, id)
	if err != nil {
		return oops.With("operation", "delete object").With("id", id).Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.With("id", id).Wrap(ErrNotFound)
	}
	return nil
}

// AddTag files key under category for an object. Re-adding is a no-op.
func (r *PostgresRepository) AddTag(ctx context.Context, objectID int64, key, category string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO object_tags (object_id, key, category) VALUES ($1, $2, $3)
		 ON CONFLICT (object_id, key, category) DO NOTHING`,
		objectID, key, category)
	if err != nil {
		return oops.With("operation", "add tag").With("object_id", objectID).With("category", category).Wrap(err)
	}
	return nil
}

// RemoveTag deletes one tag.
func (r *PostgresRepository) RemoveTag(ctx context.Context, objectID int64, key, category string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM object_tags WHERE object_id = $1 AND key = $2 AND category = $3`,
		objectID, key, category)
	if err != nil {
		return oops.With("operation", "remove tag").With("object_id", objectID).With("category", category).Wrap(err)
	}
	return nil
}

// ClearTags deletes every tag an object carries under category.
func (r *PostgresRepository) ClearTags(ctx context.Context, objectID int64, category string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM object_tags WHERE object_id = $1 AND category = $2`,
		objectID, category)
	if err != nil {
		return oops.With("operation", "clear tags").With("object_id", objectID).With("category", category).Wrap(err)
	}
	return nil
}

// CountTagged counts objects of typePath carrying the tag. This is the
// persisted form of the quota count: always derived, never stored.
func (r *PostgresRepository) CountTagged(ctx context.Context, key, category, typePath string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM object_tags t
		 JOIN objects o ON o.id = t.object_id
		 WHERE t.key = $1 AND t.category = $2 AND o.type_path = $3`,
		key, category, typePath).Scan(&count)
	if err != nil {
		return 0, oops.With("operation", "count tagged").With("category", category).Wrap(err)
	}
	return count, nil
}

// SetAttr creates or replaces one attribute value.
func (r *PostgresRepository) SetAttr(ctx context.Context, rec AttrRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO object_attributes (object_id, kind, name, value)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (object_id, kind, name) DO UPDATE SET value = $4`,
		rec.ObjectID, rec.Kind, rec.Name, rec.Value)
	if err != nil {
		return oops.With("operation", "set attr").With("object_id", rec.ObjectID).With("name", rec.Name).Wrap(err)
	}
	return nil
}

// DeleteAttr removes one attribute.
func (r *PostgresRepository) DeleteAttr(ctx context.Context, objectID int64, kind, name string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM object_attributes WHERE object_id = $1 AND kind = $2 AND name = $3`,
		objectID, kind, name)
	if err != nil {
		return oops.With("operation", "delete attr").With("object_id", objectID).With("name", name).Wrap(err)
	}
	return nil
}

// ListAttrs returns an object's attributes in one store kind, ordered by
// name.
func (r *PostgresRepository) ListAttrs(ctx context.Context, objectID int64, kind string) ([]AttrRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT object_id, kind, name, value FROM object_attributes
		 WHERE object_id = $1 AND kind = $2 ORDER BY name`,
		objectID, kind)
	if err != nil {
		return nil, oops.With("operation", "list attrs").With("object_id", objectID).With("kind", kind).Wrap(err)
	}
	defer rows.Close()

	var out []AttrRecord
	for rows.Next() {
		var rec AttrRecord
		if err := rows.Scan(&rec.ObjectID, &rec.Kind, &rec.Name, &rec.Value); err != nil {
			return nil, oops.With("operation", "scan attr row").With("object_id", objectID).Wrap(err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate attrs").With("object_id", objectID).Wrap(err)
	}
	return out, nil
}
