// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

// Package config loads and validates the collabmush configuration: the
// object type table with quotas and creation locks, the attribute-type
// permission table, and the privilege/bypass lock strings the permission
// evaluator consults.
package config

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config is the root configuration.
type Config struct {
	Service ServiceConfig `koanf:"service" json:"service,omitempty"`
	Log     LogConfig     `koanf:"log" json:"log,omitempty"`
	Store   StoreConfig   `koanf:"store" json:"store,omitempty"`
	Collab  CollabConfig  `koanf:"collab" json:"collab,omitempty"`
}

// ServiceConfig identifies the service in logs.
type ServiceConfig struct {
	Name    string `koanf:"name" json:"name,omitempty"`
	Version string `koanf:"version" json:"version,omitempty"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level" json:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	// Format is json or text.
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=json,enum=text"`
}

// StoreConfig holds PostgreSQL connection settings.
type StoreConfig struct {
	// URL is a pgx connection string. Empty disables persistence.
	URL string `koanf:"url" json:"url,omitempty"`
	// ConnectAttempts bounds the startup connection retry loop.
	ConnectAttempts int `koanf:"connect_attempts" json:"connect_attempts,omitempty" jsonschema:"minimum=1"`
}

// TypeConfig describes one creatable object type.
type TypeConfig struct {
	// TypePath is the type identifier stamped on created objects.
	TypePath string `koanf:"type_path" json:"type_path" jsonschema:"required"`
	// Quota is the default per-actor object limit for this type.
	Quota int `koanf:"quota" json:"quota,omitempty" jsonschema:"minimum=0"`
	// CreateLock gates creation, checked under the "create" access type.
	CreateLock string `koanf:"create_lock" json:"create_lock,omitempty"`
}

// CollabConfig holds the ownership, quota, and permission policy knobs.
type CollabConfig struct {
	// QuotasEnabled turns quota enforcement on. When false every limit
	// reads as unlimited.
	QuotasEnabled bool `koanf:"quotas_enabled" json:"quotas_enabled,omitempty"`
	// QuotaBypassLock exempts matching actors from quotas entirely,
	// checked under the "quota" access type.
	QuotaBypassLock string `koanf:"quota_bypass_lock" json:"quota_bypass_lock,omitempty"`
	// OverrideLock lets privileged actors pass permission checks on
	// unprotected objects, checked under the "override" access type.
	OverrideLock string `koanf:"override_lock" json:"override_lock,omitempty"`
	// OwnerOverride lets owners pass even when an explicit lock on the
	// object denies them.
	OwnerOverride bool `koanf:"owner_override" json:"owner_override,omitempty"`
	// DefaultPropType is the attribute store unprefixed names resolve to.
	DefaultPropType string `koanf:"default_prop_type" json:"default_prop_type,omitempty"`
	// DefaultType, RoomType, and ExitType name entries of Types used by
	// the create, dig, and open commands.
	DefaultType string `koanf:"default_type" json:"default_type,omitempty"`
	RoomType    string `koanf:"room_type" json:"room_type,omitempty"`
	ExitType    string `koanf:"exit_type" json:"exit_type,omitempty"`
	// Types is the creatable object type table, keyed by type key.
	Types map[string]TypeConfig `koanf:"types" json:"types,omitempty"`
	// PropTypes maps attribute type keys to their permission lock
	// strings ("read"/"write" access types). The empty key is the raw,
	// unprefixed store.
	PropTypes map[string]string `koanf:"prop_types" json:"prop_types,omitempty"`
}

// Default returns the built-in configuration. Loaded files and flags
// override it key by key.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{Name: "collabmush"},
		Log:     LogConfig{Level: "info", Format: "json"},
		Store:   StoreConfig{ConnectAttempts: 5},
		Collab: CollabConfig{
			QuotasEnabled:   true,
			QuotaBypassLock: "quota:pperm(immortal)",
			OverrideLock:    "override:pperm(immortal)",
			OwnerOverride:   true,
			DefaultPropType: "usr",
			DefaultType:     "object",
			RoomType:        "room",
			ExitType:        "exit",
			Types: map[string]TypeConfig{
				"object": {
					TypePath:   "types.objects.Object",
					Quota:      10,
					CreateLock: "create:perm(builder)",
				},
				"room": {
					TypePath:   "types.rooms.Room",
					Quota:      10,
					CreateLock: "create:perm(builder)",
				},
				"exit": {
					TypePath:   "types.exits.Exit",
					Quota:      20,
					CreateLock: "create:perm(builder)",
				},
				"character": {
					TypePath:   "types.characters.Character",
					Quota:      1,
					CreateLock: "create:pperm(wizard)",
				},
			},
			PropTypes: map[string]string{
				"wizh": "read:pperm(immortal);write:pperm(immortal)",
				"wiz":  "read:all();write:pperm(wizard)",
				"pub":  "read:all();write:all()",
				"usr":  "read:all();write:controls()",
				"usrh": "read:controls();write:controls()",
				"":     "read:controls();write:controls()",
			},
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (optional when path is empty), then flag overrides. The result is
// schema-validated before unmarshaling.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD").Wrapf(err, "loading defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD").With("path", path).Wrapf(err, "loading config file")
		}
		raw, err := file.Provider(path).ReadBytes()
		if err != nil {
			return nil, oops.Code("CONFIG_LOAD").With("path", path).Wrapf(err, "reading config file")
		}
		if err := ValidateSchema(raw); err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD").Wrapf(err, "loading flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD").Wrapf(err, "unmarshaling config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field consistency that the schema cannot express.
func (c *Config) Validate() error {
	if _, ok := c.Collab.PropTypes[c.Collab.DefaultPropType]; !ok {
		return oops.Code("CONFIG_INVALID").
			With("default_prop_type", c.Collab.DefaultPropType).
			Errorf("default_prop_type %q has no prop_types entry", c.Collab.DefaultPropType)
	}
	for _, key := range []string{c.Collab.DefaultType, c.Collab.RoomType, c.Collab.ExitType} {
		if _, ok := c.Collab.Types[key]; !ok {
			return oops.Code("CONFIG_INVALID").
				With("type_key", key).
				Errorf("type key %q has no types entry", key)
		}
	}
	return nil
}
