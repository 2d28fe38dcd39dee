package projection

import (
	"chatview/domain"
	"chatview/domain/event"
	"chatview/filter"
	"sort"
)

// Line is one rendered timeline entry.
type Line struct {
	Event     domain.TimelineEvent
	HTML      string
	Text      string
	IsMessage bool
}

// Timeline holds the rendered events of a room, newest first.
type Timeline struct {
	renderer Renderer
	lines    []Line
}

func NewTimeline(renderer Renderer) *Timeline {
	return &Timeline{renderer: renderer}
}

// Consume renders ev and inserts it by date. Events sharing a date keep their arrival order.
func (t *Timeline) Consume(ev domain.TimelineEvent) {
	content := t.renderer.TranslatedEventContent(ev)
	line := Line{
		Event:     ev,
		HTML:      content,
		Text:      PlainText(content),
		IsMessage: event.EventIsMessage(ev),
	}

	i := sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i].Event.Date.Before(ev.Date)
	})
	t.lines = append(t.lines, Line{})
	copy(t.lines[i+1:], t.lines[i:])
	t.lines[i] = line
}

func (t *Timeline) Lines() []Line {
	return append([]Line(nil), t.lines...)
}

// Filter returns the lines whose plain text matches query.
func (t *Timeline) Filter(query string) []Line {
	return filter.Items(query, t.lines, func(l Line) string { return l.Text })
}
