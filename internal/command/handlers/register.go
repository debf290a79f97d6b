// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import "github.com/bryonwausau/collabmush/internal/command"

// RegisterAll registers every building command.
func RegisterAll(reg *command.Registry) {
	for _, e := range []command.Entry{
		{Name: "@create", Handler: CreateHandler, Help: "Create an object.", Usage: "@create <name>[;<alias>...]"},
		{Name: "@dig", Handler: DigHandler, Help: "Create a room.", Usage: "@dig <name>[;<alias>...]"},
		{Name: "@open", Handler: OpenHandler, Help: "Create an exit to a destination.", Usage: "@open <name>[;<alias>...] = <destination>"},
		{Name: "@destroy", Handler: DestroyHandler, Help: "Destroy an object you own.", Usage: "@destroy[/force] <object>"},
		{Name: "@chown", Handler: ChownHandler, Help: "Transfer ownership of an object.", Usage: "@chown <object> = <character or player>"},
		{Name: "@link", Handler: LinkHandler, Help: "Link an exit to a destination.", Usage: "@link <exit> = <destination>"},
		{Name: "@unlink", Handler: UnlinkHandler, Help: "Remove an exit's destination.", Usage: "@unlink <exit>"},
		{Name: "@home", Handler: HomeHandler, Help: "Show or set an object's home.", Usage: "@home <object>[ = <destination>]"},
		{Name: "@desc", Handler: DescHandler, Help: "Describe an object.", Usage: "@desc <object> = <text>"},
		{Name: "@set", Handler: SetHandler, Help: "View, set, or remove an attribute.", Usage: "@set <object>/<attribute>[ = <value>]"},
		{Name: "@examine", Handler: ExamineHandler, Help: "Examine an object.", Usage: "@examine <object>"},
	} {
		reg.Register(e)
	}
}
