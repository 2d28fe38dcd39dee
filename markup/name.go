package markup

import (
	"chatview/theme"
	"strings"

	"github.com/samber/lo"
)

// Namer renders user names with their theme colour.
type Namer struct {
	Theme theme.Theme
}

func NewNamer(t theme.Theme) Namer {
	return Namer{Theme: t}
}

// ColoredNameHTML wraps the escaped display text in a font tag coloured after the user name.
// Without a name the colour comes from the user ID minus its leading @,
// and the text falls back to the name, then the user ID.
func (n Namer) ColoredNameHTML(name, userID, displayText string) string {
	text := lo.CoalesceOrEmpty(displayText, name, userID)
	return "<font color='" + n.NameColor(name, userID).Hex() + "'>" + EscapeHTML(text) + "</font>"
}

// ColoredNameANSI is the terminal counterpart of ColoredNameHTML.
func (n Namer) ColoredNameANSI(name, userID string) string {
	return n.NameColor(name, userID).Sprint(lo.CoalesceOrEmpty(name, userID))
}

func (n Namer) NameColor(name, userID string) theme.HSLA {
	return n.Theme.NameColor(lo.CoalesceOrEmpty(name, strings.TrimPrefix(userID, "@")))
}

func (n Namer) AvatarColor(name, userID string) theme.HSLA {
	return n.Theme.AvatarColor(lo.CoalesceOrEmpty(name, strings.TrimPrefix(userID, "@")))
}
