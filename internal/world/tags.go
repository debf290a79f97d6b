// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package world

import "sort"

// Tag is a key filed under a category.
type Tag struct {
	Key      string
	Category string
}

// TagHandler stores an object's tags, keyed by category. Keys are unique
// within a category. The zero value is not usable; objects create their
// handler lazily via Object.Tags.
type TagHandler struct {
	categories map[string]map[string]struct{}
}

// NewTagHandler creates an empty tag handler.
func NewTagHandler() *TagHandler {
	return &TagHandler{categories: make(map[string]map[string]struct{})}
}

// Add files key under category. Adding an existing key is a no-op.
func (h *TagHandler) Add(key, category string) {
	keys, ok := h.categories[category]
	if !ok {
		keys = make(map[string]struct{})
		h.categories[category] = keys
	}
	keys[key] = struct{}{}
}

// Has reports whether key is filed under category.
func (h *TagHandler) Has(key, category string) bool {
	_, ok := h.categories[category][key]
	return ok
}

// All returns the keys filed under category, sorted. Returns nil when the
// category is empty.
func (h *TagHandler) All(category string) []string {
	keys := h.categories[category]
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Remove deletes key from category. Returns false if it was not present.
func (h *TagHandler) Remove(key, category string) bool {
	keys, ok := h.categories[category]
	if !ok {
		return false
	}
	if _, present := keys[key]; !present {
		return false
	}
	delete(keys, key)
	return true
}

// Clear drops every key filed under category.
func (h *TagHandler) Clear(category string) {
	delete(h.categories, category)
}

// Tags returns every tag with its category, sorted by category then key.
func (h *TagHandler) Tags() []Tag {
	var out []Tag
	for category, keys := range h.categories {
		for k := range keys {
			out = append(out, Tag{Key: k, Category: category})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Key < out[j].Key
	})
	return out
}
