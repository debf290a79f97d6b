// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bryonwausau/collabmush/internal/collab"
	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/store"
	"github.com/bryonwausau/collabmush/internal/world"
)

// Persistence is write-through and best-effort: the in-memory world is the
// source of truth during a session, and a failed write is logged, never
// surfaced to the player.

func persistObject(ctx context.Context, exec *command.Execution, obj *world.Object) {
	repo := exec.Services.Repo
	if repo == nil {
		return
	}
	rec := store.ObjectRecord{
		ID:            obj.ID,
		Name:          obj.Name,
		TypePath:      obj.TypePath,
		CreatedAt:     obj.CreatedAt,
		LocationID:    objID(obj.Location),
		DestinationID: objID(obj.Destination),
		HomeID:        objID(obj.Home),
	}
	if err := repo.SaveObject(ctx, rec); err != nil {
		slog.WarnContext(ctx, "failed to persist object", "object_id", obj.ID, "error", err)
		return
	}
	persistOwnership(ctx, exec, obj)
}

func persistOwnership(ctx context.Context, exec *command.Execution, obj *world.Object) {
	repo := exec.Services.Repo
	if repo == nil {
		return
	}
	for _, category := range []string{collab.CategoryOwner, collab.CategoryDisplayOwner} {
		if err := repo.ClearTags(ctx, obj.ID, category); err != nil {
			slog.WarnContext(ctx, "failed to clear persisted tags",
				"object_id", obj.ID, "category", category, "error", err)
			continue
		}
		for _, key := range obj.Tags().All(category) {
			if err := repo.AddTag(ctx, obj.ID, key, category); err != nil {
				slog.WarnContext(ctx, "failed to persist tag",
					"object_id", obj.ID, "category", category, "error", err)
			}
		}
	}
}

func persistDelete(ctx context.Context, exec *command.Execution, id int64) {
	repo := exec.Services.Repo
	if repo == nil {
		return
	}
	if err := repo.DeleteObject(ctx, id); err != nil {
		slog.WarnContext(ctx, "failed to delete persisted object", "object_id", id, "error", err)
	}
}

func persistAttr(ctx context.Context, exec *command.Execution, obj *world.Object, kind, name string, value any) {
	repo := exec.Services.Repo
	if repo == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode attribute value",
			"object_id", obj.ID, "kind", kind, "name", name, "error", err)
		return
	}
	rec := store.AttrRecord{ObjectID: obj.ID, Kind: kind, Name: name, Value: raw}
	if err := repo.SetAttr(ctx, rec); err != nil {
		slog.WarnContext(ctx, "failed to persist attribute",
			"object_id", obj.ID, "kind", kind, "name", name, "error", err)
	}
}

func persistAttrDelete(ctx context.Context, exec *command.Execution, obj *world.Object, kind, name string) {
	repo := exec.Services.Repo
	if repo == nil {
		return
	}
	if err := repo.DeleteAttr(ctx, obj.ID, kind, name); err != nil {
		slog.WarnContext(ctx, "failed to delete persisted attribute",
			"object_id", obj.ID, "kind", kind, "name", name, "error", err)
	}
}

func objID(o *world.Object) *int64 {
	if o == nil {
		return nil
	}
	id := o.ID
	return &id
}
