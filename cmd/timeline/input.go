package main

import (
	"chatview/domain"
	"chatview/domain/event"
	"chatview/repositories"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Kinds of the -events records. A record without kind is a message whose content is shown as is.
const (
	kindMessage           = "message"
	kindMember            = "member"
	kindRoomName          = "room_name"
	kindRoomTopic         = "room_topic"
	kindRoomAvatar        = "room_avatar"
	kindRoomAlias         = "room_alias"
	kindRoomCreate        = "room_create"
	kindGuestAccess       = "guest_access"
	kindJoinRules         = "join_rules"
	kindHistoryVisibility = "history_visibility"
	kindPowerLevels       = "power_levels"
	kindEncryption        = "encryption"
	kindUndecryptable     = "undecryptable"
	kindUnknownMessage    = "unknown_message"
)

// Event type used when a record does not name one.
var eventTypes = map[string]string{
	kindMessage:           "RoomMessageText",
	kindMember:            "RoomMemberEvent",
	kindRoomName:          "RoomNameEvent",
	kindRoomTopic:         "RoomTopicEvent",
	kindRoomAvatar:        "RoomAvatarEvent",
	kindRoomAlias:         "RoomCanonicalAliasEvent",
	kindRoomCreate:        "RoomCreateEvent",
	kindGuestAccess:       "RoomGuestAccessEvent",
	kindJoinRules:         "RoomJoinRulesEvent",
	kindHistoryVisibility: "RoomHistoryVisibilityEvent",
	kindPowerLevels:       "PowerLevelsEvent",
	kindEncryption:        "RoomEncryptionEvent",
	kindUndecryptable:     "MegolmEvent",
	kindUnknownMessage:    "RoomMessageUnknown",
}

// eventRecord is the JSON shape of one event in the -events file.
type eventRecord struct {
	EventID   string      `json:"event_id"`
	Kind      string      `json:"kind"`
	Type      string      `json:"type"`
	Sender    string      `json:"sender"`
	Target    string      `json:"target"`
	StateKey  string      `json:"state_key"`
	Content   string      `json:"content"`
	Translate bool        `json:"translate"`
	Args      []string    `json:"args"`
	State     stateRecord `json:"state"`
	Date      time.Time   `json:"date"`
}

// stateRecord carries the fields of state events the content templates are built from.
type stateRecord struct {
	Name              string         `json:"name"`
	Topic             string         `json:"topic"`
	URL               string         `json:"url"`
	Alias             string         `json:"alias"`
	Federate          bool           `json:"federate"`
	GuestAccess       bool           `json:"guest_access"`
	JoinRule          string         `json:"join_rule"`
	HistoryVisibility string         `json:"history_visibility"`
	MsgType           string         `json:"msgtype"`
	Users             map[string]int `json:"users"`
	memberContent
	PrevContent *memberContent `json:"prev_content"`
}

type memberContent struct {
	Membership  string `json:"membership"`
	DisplayName string `json:"displayname"`
	AvatarURL   string `json:"avatar_url"`
	Reason      string `json:"reason"`
}

type userRecord struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// eventLoader turns records into timeline events posted to room, applying
// member and power level changes to the room along the way.
type eventLoader struct {
	room *domain.Room
	log  *slog.Logger
}

func (l eventLoader) loadFile(path string) (int, error) {
	var records []eventRecord
	if err := readJSON(path, &records); err != nil {
		return 0, err
	}
	posted := 0
	for _, r := range records {
		ev, ok := l.build(r)
		if !ok {
			continue
		}
		l.room.Post(ev)
		posted++
	}
	return posted, nil
}

// build returns false for events with nothing to display.
func (l eventLoader) build(r eventRecord) (domain.TimelineEvent, bool) {
	kind := r.Kind
	if kind == "" {
		kind = kindMessage
	}
	eventType := r.Type
	if eventType == "" {
		eventType = eventTypes[kind]
	}
	newEvent := func(content string) domain.TimelineEvent {
		return domain.NewTimelineEvent(r.EventID, eventType, r.Sender, content, r.Date)
	}

	s := r.State
	switch kind {
	case kindMessage:
		ev := newEvent(r.Content).Targeting(r.Target)
		if r.Translate || len(r.Args) > 0 {
			ev = ev.Translated(r.Args...)
		}
		return ev, true
	case kindMember:
		return l.member(r, newEvent)
	case kindRoomName:
		l.room.Name = s.Name
		return newEvent(event.DescribeRoomName(s.Name)).Translated(), true
	case kindRoomTopic:
		return newEvent(event.DescribeRoomTopic(s.Topic)).Translated(), true
	case kindRoomAvatar:
		return newEvent(event.DescribeRoomAvatar(s.URL)).Translated(), true
	case kindRoomAlias:
		return newEvent(event.DescribeRoomAlias(s.Alias)).Translated(), true
	case kindRoomCreate:
		return newEvent(event.DescribeRoomCreate(s.Federate)).Translated(), true
	case kindGuestAccess:
		return newEvent(event.DescribeGuestAccess(s.GuestAccess)).Translated(), true
	case kindJoinRules:
		return newEvent(event.DescribeJoinRules(s.JoinRule)).Translated(), true
	case kindHistoryVisibility:
		content, known := event.DescribeHistoryVisibility(s.HistoryVisibility)
		if !known {
			l.log.Warn("Unknown history visibility", "event_id", r.EventID, "visibility", s.HistoryVisibility)
		}
		return newEvent(content).Translated(), true
	case kindPowerLevels:
		for userID, level := range s.Users {
			if m, ok := l.room.Member(userID); ok {
				m.PowerLevel = level
				l.room.SetMember(m)
			}
		}
		return newEvent(event.DescribePowerLevels()).Translated(), true
	case kindEncryption:
		return newEvent(event.DescribeEncryption()).Translated(), true
	case kindUndecryptable:
		return newEvent(event.DescribeUndecryptable()).Translated(), true
	case kindUnknownMessage:
		return newEvent(event.DescribeUnknownMessage(s.MsgType)).Translated(), true
	default:
		l.log.Debug("Unsupported event kind", "event_id", r.EventID, "kind", kind)
		return newEvent(event.DescribeUnknown(eventType)).Translated(), true
	}
}

func (l eventLoader) member(r eventRecord, newEvent func(string) domain.TimelineEvent) (domain.TimelineEvent, bool) {
	s := r.State
	change := event.Membership{
		Sender:      r.Sender,
		StateKey:    r.StateKey,
		HasPrevious: s.PrevContent != nil,
		Membership:  s.Membership,
		Reason:      s.Reason,
		DisplayName: s.DisplayName,
		AvatarURL:   s.AvatarURL,
	}
	if prev := s.PrevContent; prev != nil {
		change.PrevMembership = prev.Membership
		change.PrevName = prev.DisplayName
		change.PrevAvatarURL = prev.AvatarURL
	}

	switch s.Membership {
	case event.Join, event.Invite:
		m, _ := l.room.Member(r.StateKey)
		m.User = domain.User{ID: r.StateKey, DisplayName: s.DisplayName, AvatarURL: s.AvatarURL}
		m.Invited = s.Membership == event.Invite
		l.room.SetMember(m)
	case event.Leave, event.Ban:
		l.room.RemoveMember(r.StateKey)
	}

	specifier, content, ok := event.DescribeMembership(change)
	if !ok {
		l.log.Debug("Member event without visible change", "event_id", r.EventID, "state_key", r.StateKey)
		return domain.TimelineEvent{}, false
	}
	l.log.Debug("Member event", "event_id", r.EventID, "specifier", specifier)
	return newEvent(content).Translated().Targeting(r.StateKey), true
}

func importUsers(users repositories.IUserRepository, path string) (int, error) {
	var records []userRecord
	if err := readJSON(path, &records); err != nil {
		return 0, err
	}
	for _, r := range records {
		err := users.SaveUser(domain.User{ID: r.ID, DisplayName: r.DisplayName, AvatarURL: r.AvatarURL})
		if err != nil {
			return 0, fmt.Errorf("saving user %s failed: %w", r.ID, err)
		}
	}
	return len(records), nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
