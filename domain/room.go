package domain

import "github.com/samber/lo"

type RoomID string

// Room groups the members and the timeline of one room.
type Room struct {
	ID       RoomID
	Name     string
	members  map[string]Member
	timeline []TimelineEvent
}

func NewRoom(id string, name string) *Room {
	return &Room{
		ID:      RoomID(id),
		Name:    name,
		members: make(map[string]Member),
	}
}

func (r *Room) SetMember(member Member) {
	r.members[member.ID] = member
}

func (r *Room) RemoveMember(userID string) {
	delete(r.members, userID)
}

func (r *Room) Member(userID string) (Member, bool) {
	m, ok := r.members[userID]
	return m, ok
}

// Members returns the members in display order.
func (r *Room) Members() []Member {
	members := lo.Values(r.members)
	SortMembers(members)
	return members
}

func (r *Room) Post(ev TimelineEvent) {
	r.timeline = append(r.timeline, ev)
}

// Timeline returns a copy of the posted events in posting order.
func (r *Room) Timeline() []TimelineEvent {
	return append([]TimelineEvent(nil), r.timeline...)
}
