// Package domain contains core concepts of the chat presentation layer.
// This file defines timeline events as the views receive them.
// Events are immutable once built.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslateMode tells how the content of a timeline event is localized.
type TranslateMode int

const (
	// TranslateNone leaves the content untouched, e.g. user written messages.
	TranslateNone TranslateMode = iota
	// TranslatePlain looks the content up in the translation catalog.
	TranslatePlain
	// TranslateArgs looks the content up then fills its %1, %2... markers with Args.
	TranslateArgs
)

type Translatable struct {
	Mode TranslateMode
	Args []string
}

// TimelineEvent represents a room event ready to be displayed.
// Content of state events is a template where %S stands for the sender
// and %T for the target user.
type TimelineEvent struct {
	ID           uuid.UUID // local identifier
	EventID      string
	EventType    string
	SenderID     string
	TargetUserID string
	Content      string
	Translatable Translatable
	Date         time.Time
}

func NewTimelineEvent(eventID, eventType, senderID, content string, at time.Time) TimelineEvent {
	return TimelineEvent{
		ID:        uuid.New(),
		EventID:   eventID,
		EventType: eventType,
		SenderID:  senderID,
		Content:   content,
		Date:      at,
	}
}

// Translated returns a copy of the event flagged for catalog lookup with the given positional args.
func (e TimelineEvent) Translated(args ...string) TimelineEvent {
	e.Translatable = Translatable{Mode: TranslatePlain}
	if len(args) > 0 {
		e.Translatable = Translatable{Mode: TranslateArgs, Args: args}
	}
	return e
}

func (e TimelineEvent) Targeting(userID string) TimelineEvent {
	e.TargetUserID = userID
	return e
}
