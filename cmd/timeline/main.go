package main

import (
	"chatview/domain"
	"chatview/i18n"
	"chatview/internal"
	"chatview/markup"
	"chatview/projection"
	"chatview/repositories"
	"chatview/theme"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "timeline terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the configuration, the user directory and the renderer, then prints the requested view.
func run(args []string, out io.Writer) (int, error) {
	flags := flag.NewFlagSet("timeline", flag.ContinueOnError)
	eventsPath := flags.String("events", "", "JSON file of timeline events to render")
	usersPath := flags.String("import-users", "", "JSON file of users to store in the directory")
	query := flags.String("filter", "", "only print events matching every word")
	ansi := flags.Bool("ansi", false, "print plain text with terminal colours instead of HTML")
	members := flags.Bool("members", false, "print the room members with their colours")
	roomID := flags.String("room", "!timeline:localhost", "ID of the room the events belong to")
	if err := flags.Parse(args); err != nil {
		return exitConfig, err
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	th, err := theme.Load(config.ThemeFilepath)
	if err != nil {
		return exitConfig, err
	}

	var translator i18n.Translator = i18n.Identity{}
	if config.CatalogDir != "" {
		bundle, err := i18n.LoadDir(config.CatalogDir)
		if err != nil {
			return exitConfig, fmt.Errorf("catalog error: %w", err)
		}
		catalogTranslator := bundle.Translator(config.Locale)
		log.Info("Translations loaded", "requested", config.Locale, "locale", catalogTranslator.Locale)
		translator = catalogTranslator
	}

	// 2. User directory (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()
	users := repositories.NewUserRepository(db, log)

	if *usersPath != "" {
		n, err := importUsers(users, *usersPath)
		if err != nil {
			return exitRuntime, err
		}
		log.Info("Users imported", "count", n)
	}

	namer := markup.NewNamer(th)
	room := domain.NewRoom(*roomID, "")

	// 3. Room state
	if *eventsPath != "" {
		posted, err := eventLoader{room: room, log: log}.loadFile(*eventsPath)
		if err != nil {
			return exitRuntime, err
		}
		log.Info("Events loaded", "room", room.ID, "posted", posted)
	}

	// 4. Views
	if *members {
		if err = printMembers(out, room, users, namer); err != nil {
			return exitRuntime, err
		}
	}

	if *eventsPath != "" {
		renderer := projection.NewRenderer(users, translator, namer, log)
		timeline := projection.NewTimeline(renderer)
		for _, ev := range room.Timeline() {
			timeline.Consume(ev)
		}
		lines := timeline.Filter(*query)
		log.Debug("Timeline rendered", "room_name", room.Name, "matching", len(lines))
		printLines(out, lines, renderer, namer, *ansi)
	}

	return exitOK, nil
}

func printLines(out io.Writer, lines []projection.Line, renderer projection.Renderer, namer markup.Namer, ansi bool) {
	for _, line := range lines {
		at := line.Event.Date.Format("15:04:05")
		switch {
		case !ansi:
			fmt.Fprintf(out, "%s %s\n", at, line.HTML)
		case line.IsMessage:
			sender := namer.ColoredNameANSI(renderer.DisplayName(line.Event.SenderID), line.Event.SenderID)
			fmt.Fprintf(out, "%s %s: %s\n", at, sender, line.Text)
		default:
			fmt.Fprintf(out, "%s * %s\n", at, line.Text)
		}
	}
}

// printMembers lists the room members. Directory users join the room when no member event mentioned them.
func printMembers(out io.Writer, room *domain.Room, users repositories.IUserRepository, namer markup.Namer) error {
	all, err := users.ListUsers()
	if err != nil {
		return fmt.Errorf("listing users failed: %w", err)
	}
	for _, u := range all {
		m, ok := room.Member(u.ID)
		if ok && m.DisplayName != "" {
			continue
		}
		m.User = u
		room.SetMember(m)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"User ID", "Name", "Power level", "Name colour", "Avatar colour"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range room.Members() {
		name := namer.ColoredNameANSI(m.DisplayName, m.ID)
		if m.Invited {
			name += " (invited)"
		}
		table.Append([]string{
			m.ID,
			name,
			strconv.Itoa(m.PowerLevel),
			namer.NameColor(m.DisplayName, m.ID).Hex(),
			namer.AvatarColor(m.DisplayName, m.ID).Hex(),
		})
	}
	table.Render()
	return nil
}
