package projection

import (
	"chatview/domain"
	"chatview/errors"
	"chatview/i18n"
	"chatview/markup"
	"chatview/mocks"
	"chatview/theme"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	alice = "@alice:example.org"
	bob   = "@bob:example.org"
)

var namer = markup.NewNamer(theme.Default())

func identity(s string) string { return s }

func TestRenderer_TranslatedEventContent_NotTranslatable(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	translator := mocks.NewMockTranslator(ctrl)
	renderer := NewRenderer(users, translator, namer, slog.Default())

	// No lookup, no translation
	ev := domain.NewTimelineEvent("$1", "RoomMessageText", alice, "hello %S <b>world</b>", time.Now())
	require.Equal(t, "hello %S <b>world</b>", renderer.TranslatedEventContent(ev))
}

func TestRenderer_TranslatedEventContent_SenderAndTarget(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	translator := mocks.NewMockTranslator(ctrl)
	renderer := NewRenderer(users, translator, namer, logs.GetLoggerFromLevel(slog.LevelDebug))

	users.EXPECT().FindUser(alice).Return(domain.User{ID: alice, DisplayName: "Alice"}, nil)
	users.EXPECT().FindUser(bob).Return(domain.User{}, errors.ErrUserNotFound)
	translator.EXPECT().Translate(gomock.Any()).DoAndReturn(identity)

	ev := domain.NewTimelineEvent("$1", "RoomMemberEvent", alice, "%S invited %T to the room", time.Now()).
		Translated().
		Targeting(bob)

	expected := namer.ColoredNameHTML("Alice", alice, "") +
		" invited " +
		namer.ColoredNameHTML("", bob, "") +
		" to the room"
	req.Equal(expected, renderer.TranslatedEventContent(ev))
}

func TestRenderer_TranslatedEventContent_NoTargetKeepsPlaceholder(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	translator := mocks.NewMockTranslator(ctrl)
	renderer := NewRenderer(users, translator, namer, slog.Default())

	users.EXPECT().FindUser(alice).Return(domain.User{ID: alice, DisplayName: "<Alice>"}, nil)
	translator.EXPECT().Translate(gomock.Any()).DoAndReturn(identity)

	ev := domain.NewTimelineEvent("$1", "RoomMemberEvent", alice, "%S and %S kicked %T", time.Now()).Translated()

	name := namer.ColoredNameHTML("<Alice>", alice, "")
	req.Contains(name, "&lt;Alice&gt;")
	req.Equal(name+" and "+name+" kicked %T", renderer.TranslatedEventContent(ev))
}

func TestRenderer_TranslatedEventContent_TranslationThenArgs(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	translator := mocks.NewMockTranslator(ctrl)
	renderer := NewRenderer(users, translator, namer, slog.Default())

	translator.EXPECT().Translate("%1 sent %2 files").Return("%2 fichiers envoyés par %1")

	ev := domain.NewTimelineEvent("$1", "RoomMessageFile", alice, "%1 sent %2 files", time.Now()).
		Translated("Alice", "3")
	req.Equal("3 fichiers envoyés par Alice", renderer.TranslatedEventContent(ev))
}

func TestRenderer_TranslatedEventContent_WithCatalog(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	renderer := NewRenderer(users, i18n.Identity{}, namer, slog.Default())

	users.EXPECT().FindUser(bob).Return(domain.User{ID: bob, DisplayName: "Bob"}, nil)

	ev := domain.NewTimelineEvent("$1", "RoomNameEvent", bob, `%S changed the room's name to "%1"`, time.Now()).
		Translated("Garden")
	req.Equal(namer.ColoredNameHTML("Bob", bob, "")+` changed the room's name to "Garden"`, renderer.TranslatedEventContent(ev))
}

func TestPlainText(t *testing.T) {
	req := require.New(t)
	req.Equal("Alice & Bob joined", PlainText("<font color='#aabbcc'>Alice &amp; Bob</font> joined"))
	req.Equal("no markup", PlainText("no markup"))
}
