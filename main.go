package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	app "github.com/rocketscienceinc/bowling-kata/internal"
	"github.com/rocketscienceinc/bowling-kata/internal/config"
)

type CLI struct {
	Config string `short:"c" help:"Path to the YAML config file." default:"./config.yml" type:"path"`
	Input  string `short:"i" help:"File with one pin count per line, - reads stdin." default:"-"`
}

// main - is the entry point of the application. It parses flags, loads the configuration and scores one game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("bowling"),
		kong.Description("Scores a ten-pin bowling game from a list of rolls"),
		kong.UsageOnError(),
	)

	conf := config.MustLoad(cli.Config)
	logger := initLogger(conf)

	in, closeInput := openInput(cli.Input)
	defer closeInput()

	if err := app.RunApp(logger, conf, in, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger. Logs go to stderr so stdout only carries the score.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func openInput(path string) (io.Reader, func()) {
	if path == "-" {
		return os.Stdin, func() {}
	}

	file, err := os.Open(path)
	if err != nil {
		panic(fmt.Errorf("failed to open input: %w", err))
	}

	return file, func() { _ = file.Close() }
}
