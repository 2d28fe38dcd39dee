package main

import (
	"chatview/internal"
	"chatview/thumbnail"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "thumbnail terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run renders the thumbnail the client would request for an image displayed at -width x -height.
func run(args []string, out io.Writer) (int, error) {
	flags := flag.NewFlagSet("thumbnail", flag.ContinueOnError)
	input := flags.String("in", "", "source image")
	output := flags.String("out", "thumbnail.png", "destination PNG file")
	width := flags.Int("width", 0, "displayed width")
	height := flags.Int("height", 0, "displayed height")
	mxc := flags.String("mxc", "", "mxc:// URI to print the thumbnail request URL for")
	if err := flags.Parse(args); err != nil {
		return exitConfig, err
	}

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	params := thumbnail.ParametersFor(*width, *height)
	log.Info("Thumbnail size selected",
		"requested_width", *width, "requested_height", *height,
		"width", params.Width, "height", params.Height, "mode", params.FillMode.String())

	if *mxc != "" {
		u, err := thumbnail.URL(config.HomeserverURL, *mxc, params)
		if err != nil {
			return exitConfig, err
		}
		fmt.Fprintln(out, u)
	}

	if *input == "" {
		return exitOK, nil
	}
	data, err := os.ReadFile(*input)
	if err != nil {
		return exitRuntime, fmt.Errorf("read %s: %w", *input, err)
	}
	thumb, err := thumbnail.NewRenderer(log).Render(data, params)
	if err != nil {
		return exitRuntime, err
	}
	if err = os.WriteFile(*output, thumb.Data, 0o644); err != nil {
		return exitRuntime, fmt.Errorf("write %s: %w", *output, err)
	}
	fmt.Fprintf(out, "%s %dx%d\n", *output, thumb.Width, thumb.Height)
	return exitOK, nil
}
