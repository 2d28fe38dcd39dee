// Package projection turns timeline events into the text the views display.
// It reads users and translations but never mutates them.
package projection

import (
	"chatview/domain"
	"chatview/i18n"
	"chatview/markup"
	"chatview/repositories"
	"html"
	"log/slog"
	"regexp"
	"strings"
)

const (
	senderPlaceholder = "%S"
	targetPlaceholder = "%T"
)

var tag = regexp.MustCompile(`<[^>]*>`)

type Renderer struct {
	users      repositories.IUserRepository
	translator i18n.Translator
	namer      markup.Namer
	log        *slog.Logger
}

func NewRenderer(
	users repositories.IUserRepository,
	translator i18n.Translator,
	namer markup.Namer,
	log *slog.Logger,
) Renderer {
	return Renderer{users: users, translator: translator, namer: namer, log: log}
}

// TranslatedEventContent returns the rich text content of ev.
// Placeholders are replaced by coloured names before the translation lookup,
// positional arguments are filled last.
func (r Renderer) TranslatedEventContent(ev domain.TimelineEvent) string {
	if ev.Translatable.Mode == domain.TranslateNone {
		return ev.Content
	}

	text := ev.Content
	if strings.Contains(text, senderPlaceholder) {
		text = strings.ReplaceAll(text, senderPlaceholder, r.coloredName(ev.SenderID))
	}
	if ev.TargetUserID != "" && strings.Contains(text, targetPlaceholder) {
		text = strings.ReplaceAll(text, targetPlaceholder, r.coloredName(ev.TargetUserID))
	}

	text = r.translator.Translate(text)
	if ev.Translatable.Mode == domain.TranslatePlain {
		return text
	}
	return i18n.Args(text, ev.Translatable.Args...)
}

// PlainText strips the markup of rich text content.
func PlainText(content string) string {
	return html.UnescapeString(tag.ReplaceAllString(content, ""))
}

// DisplayName resolves the display name of userID, empty when unknown.
func (r Renderer) DisplayName(userID string) string {
	user, err := r.users.FindUser(userID)
	if err != nil {
		r.log.Debug("Display name unavailable, falling back to user ID", "user_id", userID, "error", err)
		return ""
	}
	return user.DisplayName
}

func (r Renderer) coloredName(userID string) string {
	return r.namer.ColoredNameHTML(r.DisplayName(userID), userID, "")
}
