// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "sandbox")
	assert.Contains(t, names, "migrate")
	assert.Contains(t, names, "validate-config")
}

func TestValidateConfig_DefaultsPass(t *testing.T) {
	configFile = ""
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate-config"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Configuration OK")
}

func TestSandbox_ExecutesBuildingCommands(t *testing.T) {
	configFile = ""
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader("@create widget\n@examine widget\nquit\n"))
	cmd.SetArgs([]string{"sandbox", "--log.level", "error"})

	require.NoError(t, cmd.Execute())
	output := out.String()
	assert.Contains(t, output, "Created: widget")
	assert.Contains(t, output, "Owner: Architect")
}
