// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantArgs string
		wantErr  bool
	}{
		{name: "bare command", input: "@create", wantName: "@create"},
		{name: "command with args", input: "@create widget", wantName: "@create", wantArgs: "widget"},
		{name: "args keep internal whitespace", input: "@desc widget = a  thing", wantName: "@desc", wantArgs: "widget = a  thing"},
		{name: "leading whitespace trimmed", input: "   @examine widget", wantName: "@examine", wantArgs: "widget"},
		{name: "tab separator", input: "@set\twidget/color = red", wantName: "@set", wantArgs: "widget/color = red"},
		{name: "empty input", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, parsed.Name)
			assert.Equal(t, tt.wantArgs, parsed.Args)
			assert.Equal(t, tt.input, parsed.Raw)
		})
	}
}

func TestSplitEquals(t *testing.T) {
	left, right, found := SplitEquals("widget = Plaza")
	assert.True(t, found)
	assert.Equal(t, "widget", left)
	assert.Equal(t, "Plaza", right)

	left, right, found = SplitEquals("widget =")
	assert.True(t, found)
	assert.Equal(t, "widget", left)
	assert.Empty(t, right)

	_, _, found = SplitEquals("widget")
	assert.False(t, found)
}

func TestSplitSlash(t *testing.T) {
	left, right, found := SplitSlash("widget/color")
	assert.True(t, found)
	assert.Equal(t, "widget", left)
	assert.Equal(t, "color", right)

	_, _, found = SplitSlash("widget")
	assert.False(t, found)
}

func TestStripSwitch(t *testing.T) {
	cmd, sw := StripSwitch("@destroy/force")
	assert.Equal(t, "@destroy", cmd)
	assert.Equal(t, "force", sw)

	cmd, sw = StripSwitch("@destroy")
	assert.Equal(t, "@destroy", cmd)
	assert.Empty(t, sw)
}
