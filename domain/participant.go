// Package domain contains core concepts of the chat presentation layer.
// This file defines users, room members and their display order.
package domain

import (
	"cmp"
	"slices"
	"strings"
)

type User struct {
	ID          string
	DisplayName string
	AvatarURL   string
}

// Name is the display name, or the user ID without its leading @.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return strings.TrimPrefix(u.ID, "@")
}

type Member struct {
	User
	PowerLevel int
	Invited    bool
}

// SortMembers orders joined members before invited ones, then by
// descending power level, then by case-insensitive name.
func SortMembers(members []Member) {
	slices.SortStableFunc(members, func(a, b Member) int {
		if a.Invited != b.Invited {
			if a.Invited {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(b.PowerLevel, a.PowerLevel); c != 0 {
			return c
		}
		if c := cmp.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name())); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
