package event

import (
	"chatview/markup"
	"fmt"
	"net/url"
	"strings"
)

// Membership change of a member event, as found in its content and prev_content.
type Membership struct {
	Sender         string
	StateKey       string
	HasPrevious    bool
	Membership     string
	PrevMembership string
	Reason         string
	DisplayName    string
	PrevName       string
	AvatarURL      string
	PrevAvatarURL  string
}

const (
	Join   = "join"
	Invite = "invite"
	Leave  = "leave"
	Ban    = "ban"
)

// DescribeMembership returns the template for a member event.
// ok is false when the event changes nothing worth showing.
func DescribeMembership(m Membership) (TypeSpecifier, string, bool) {
	if !m.HasPrevious || m.Membership != m.PrevMembership {
		if spec, content, ok := describeMembershipChange(m); ok {
			return spec, content, true
		}
	}

	var changed []string
	if m.HasPrevious && m.AvatarURL != m.PrevAvatarURL {
		changed = append(changed, "profile picture")
	}
	if m.HasPrevious && m.DisplayName != m.PrevName {
		changed = append(changed, fmt.Sprintf(`display name from "%s" to "%s"`,
			markup.EscapeHTML(orStateKey(m.PrevName, m.StateKey)),
			markup.EscapeHTML(orStateKey(m.DisplayName, m.StateKey)),
		))
	}
	if len(changed) == 0 {
		return Unset, "", false
	}
	return ProfileChange, "%S changed their " + strings.Join(changed, " and "), true
}

func describeMembershipChange(m Membership) (TypeSpecifier, string, bool) {
	reason := ""
	if m.Reason != "" {
		reason = ". Reason: " + markup.EscapeHTML(m.Reason)
	}
	wasInvited := m.HasPrevious && m.PrevMembership == Invite
	wasBanned := m.HasPrevious && m.PrevMembership == Ban

	switch m.Membership {
	case Join:
		if wasInvited {
			return MembershipChange, "%S accepted their invitation", true
		}
		return MembershipChange, "%S joined the room", true
	case Invite:
		return MembershipChange, "%S invited %T to the room", true
	case Leave:
		if m.StateKey == m.Sender {
			if wasInvited {
				return MembershipChange, "%S declined their invitation" + reason, true
			}
			return MembershipChange, "%S left the room" + reason, true
		}
		switch {
		case wasInvited:
			return MembershipChange, "%S withdrew %T's invitation" + reason, true
		case wasBanned:
			return MembershipChange, "%S unbanned %T from the room" + reason, true
		default:
			return MembershipChange, "%S kicked out %T from the room" + reason, true
		}
	case Ban:
		return MembershipChange, "%S banned %T from the room" + reason, true
	}
	return Unset, "", false
}

func orStateKey(name, stateKey string) string {
	if name == "" {
		return stateKey
	}
	return name
}

func DescribeRoomName(name string) string {
	if name == "" {
		return "%S removed the room's name"
	}
	return fmt.Sprintf(`%%S changed the room's name to "%s"`, markup.EscapeHTML(name))
}

func DescribeRoomTopic(topic string) string {
	if topic == "" {
		return "%S removed the room's topic"
	}
	return fmt.Sprintf(`%%S changed the room's topic to "%s"`, markup.EscapeHTML(topic))
}

func DescribeRoomAvatar(avatarURL string) string {
	if avatarURL == "" {
		return "%S removed the room's picture"
	}
	return "%S changed the room's picture"
}

// DescribeRoomAlias links the new main address through matrix.to.
func DescribeRoomAlias(alias string) string {
	if alias == "" {
		return "%S removed the room's main address"
	}
	escaped := markup.EscapeHTML(alias)
	link := fmt.Sprintf("<a href='https://matrix.to/#/%s'>%s</a>", url.PathEscape(alias), escaped)
	return "%S set the room's main address to " + link
}

func DescribeRoomCreate(federate bool) string {
	if federate {
		return "%S allowed users on other matrix servers to join this room"
	}
	return "%S blocked users on other matrix servers from joining this room"
}

func DescribeGuestAccess(allowed bool) string {
	if allowed {
		return "%S allowed guests to join the room"
	}
	return "%S forbad guests to join the room"
}

func DescribeJoinRules(joinRule string) string {
	if joinRule == "public" {
		return "%S made the room public"
	}
	return "%S made the room invite-only"
}

// DescribeHistoryVisibility returns false along the template for an unknown visibility.
func DescribeHistoryVisibility(visibility string) (string, bool) {
	to, known := "???", true
	switch visibility {
	case "shared":
		to = "all room members"
	case "world_readable":
		to = "any member or outsider"
	case "joined":
		to = "all room members, since the time they joined"
	case "invited":
		to = "all room members, since the time they were invited"
	default:
		known = false
	}
	return "%S made future room history visible to " + to, known
}

func DescribePowerLevels() string {
	return "%S changed the room's permissions"
}

func DescribeEncryption() string {
	return "%S turned on encryption for this room"
}

func DescribeUndecryptable() string {
	return "%S sent an undecryptable message"
}

func DescribeUnknown(eventType string) string {
	return fmt.Sprintf("%%S sent an unsupported <b>%s</b> event", markup.EscapeHTML(eventType))
}

func DescribeUnknownMessage(msgType string) string {
	return fmt.Sprintf("%%S sent an unsupported <b>%s</b> message", markup.EscapeHTML(msgType))
}
