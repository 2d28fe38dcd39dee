// Package event classifies timeline events and builds the content templates
// displayed for room state changes.
//
// Templates are rich text where %S stands for the sender and %T for the
// user targeted by the event. Names are substituted at render time so the
// templates can be used as translation keys.
package event

import (
	"chatview/domain"
	"regexp"
)

var messageType = regexp.MustCompile(`^RoomMessage($|[A-Z])`)

// IsMessage reports whether eventType is RoomMessage or one of its
// subtypes such as RoomMessageText. RoomMessages does not qualify.
func IsMessage(eventType string) bool {
	return messageType.MatchString(eventType)
}

func EventIsMessage(ev domain.TimelineEvent) bool {
	return IsMessage(ev.EventType)
}

// TypeSpecifier clarifies the purpose of some events, e.g. which member events are profile changes.
type TypeSpecifier string

const (
	Unset            TypeSpecifier = "Unset"
	ProfileChange    TypeSpecifier = "ProfileChange"
	MembershipChange TypeSpecifier = "MembershipChange"
)
