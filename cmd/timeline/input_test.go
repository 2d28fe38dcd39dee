package main

import (
	"bytes"
	"chatview/domain"
	"chatview/domain/event"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestEventLoader_Build_StateEvents(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name        string
		record      eventRecord
		wantType    string
		wantContent string
	}{
		{
			name:        "room name",
			record:      eventRecord{Kind: kindRoomName, State: stateRecord{Name: "Tea & Garden"}},
			wantType:    "RoomNameEvent",
			wantContent: event.DescribeRoomName("Tea & Garden"),
		},
		{
			name:        "topic removed",
			record:      eventRecord{Kind: kindRoomTopic},
			wantType:    "RoomTopicEvent",
			wantContent: "%S removed the room's topic",
		},
		{
			name:        "join rules",
			record:      eventRecord{Kind: kindJoinRules, State: stateRecord{JoinRule: "public"}},
			wantType:    "RoomJoinRulesEvent",
			wantContent: "%S made the room public",
		},
		{
			name:        "explicit type kept",
			record:      eventRecord{Kind: kindEncryption, Type: "CustomEncryption"},
			wantType:    "CustomEncryption",
			wantContent: event.DescribeEncryption(),
		},
		{
			name:        "unknown kind",
			record:      eventRecord{Kind: "sticker", Type: "StickerEvent"},
			wantType:    "StickerEvent",
			wantContent: event.DescribeUnknown("StickerEvent"),
		},
		{
			name:        "unknown message type",
			record:      eventRecord{Kind: kindUnknownMessage, State: stateRecord{MsgType: "m.location"}},
			wantType:    "RoomMessageUnknown",
			wantContent: event.DescribeUnknownMessage("m.location"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			loader := eventLoader{room: domain.NewRoom("!r:x.org", ""), log: logs.GetLoggerFromLevel(slog.LevelDebug)}
			tt.record.Sender = "@alice:x.org"
			tt.record.Date = at

			ev, ok := loader.build(tt.record)
			req.True(ok)
			req.Equal(tt.wantType, ev.EventType)
			req.Equal(tt.wantContent, ev.Content)
			req.Equal(domain.TranslatePlain, ev.Translatable.Mode)
			req.Equal("@alice:x.org", ev.SenderID)
			req.Equal(at, ev.Date)
		})
	}
}

func TestEventLoader_Build_Message(t *testing.T) {
	req := require.New(t)
	loader := eventLoader{room: domain.NewRoom("!r:x.org", ""), log: logs.GetLoggerFromLevel(slog.LevelDebug)}

	ev, ok := loader.build(eventRecord{Sender: "@alice:x.org", Content: "<b>hi</b>"})
	req.True(ok)
	req.Equal("RoomMessageText", ev.EventType)
	req.Equal("<b>hi</b>", ev.Content)
	req.Equal(domain.TranslateNone, ev.Translatable.Mode)

	ev, ok = loader.build(eventRecord{Sender: "@alice:x.org", Content: "%1 new messages", Args: []string{"3"}})
	req.True(ok)
	req.Equal(domain.TranslateArgs, ev.Translatable.Mode)
	req.Equal([]string{"3"}, ev.Translatable.Args)
}

func TestEventLoader_Build_UnknownHistoryVisibilityWarns(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	loader := eventLoader{room: domain.NewRoom("!r:x.org", ""), log: slog.New(slog.NewTextHandler(&buf, nil))}

	ev, ok := loader.build(eventRecord{EventID: "$h", Kind: kindHistoryVisibility, State: stateRecord{HistoryVisibility: "nobody"}})
	req.True(ok)
	req.Equal("%S made future room history visible to ???", ev.Content)
	req.Contains(buf.String(), "level=WARN")
	req.Contains(buf.String(), "visibility=nobody")

	buf.Reset()
	ev, ok = loader.build(eventRecord{Kind: kindHistoryVisibility, State: stateRecord{HistoryVisibility: "shared"}})
	req.True(ok)
	req.Equal("%S made future room history visible to all room members", ev.Content)
	req.Empty(buf.String())
}

func TestEventLoader_Build_MembersUpdateRoom(t *testing.T) {
	req := require.New(t)
	room := domain.NewRoom("!r:x.org", "")
	loader := eventLoader{room: room, log: logs.GetLoggerFromLevel(slog.LevelDebug)}

	member := func(sender, stateKey string, content memberContent, prev *memberContent) eventRecord {
		return eventRecord{Kind: kindMember, Sender: sender, StateKey: stateKey,
			State: stateRecord{memberContent: content, PrevContent: prev}}
	}

	ev, ok := loader.build(member("@alice:x.org", "@alice:x.org", memberContent{Membership: event.Join, DisplayName: "Alice"}, nil))
	req.True(ok)
	req.Equal("%S joined the room", ev.Content)
	req.Equal("@alice:x.org", ev.TargetUserID)

	ev, ok = loader.build(member("@alice:x.org", "@bob:x.org", memberContent{Membership: event.Invite}, nil))
	req.True(ok)
	req.Equal("%S invited %T to the room", ev.Content)
	req.Equal("@bob:x.org", ev.TargetUserID)
	bob, found := room.Member("@bob:x.org")
	req.True(found)
	req.True(bob.Invited)

	_, ok = loader.build(eventRecord{Kind: kindPowerLevels, State: stateRecord{Users: map[string]int{"@alice:x.org": 100, "@nobody:x.org": 50}}})
	req.True(ok)
	alice, _ := room.Member("@alice:x.org")
	req.Equal(100, alice.PowerLevel)
	_, found = room.Member("@nobody:x.org")
	req.False(found)

	// Same membership and profile: nothing to show
	same := memberContent{Membership: event.Join, DisplayName: "Alice"}
	_, ok = loader.build(member("@alice:x.org", "@alice:x.org", same, &same))
	req.False(ok)
	alice, _ = room.Member("@alice:x.org")
	req.Equal(100, alice.PowerLevel)

	ev, ok = loader.build(member("@alice:x.org", "@bob:x.org", memberContent{Membership: event.Leave}, &memberContent{Membership: event.Invite}))
	req.True(ok)
	req.Equal("%S withdrew %T's invitation", ev.Content)
	_, found = room.Member("@bob:x.org")
	req.False(found)

	req.Equal([]string{"@alice:x.org"}, memberIDs(room))
}

func memberIDs(room *domain.Room) []string {
	var ids []string
	for _, m := range room.Members() {
		ids = append(ids, m.ID)
	}
	return ids
}
