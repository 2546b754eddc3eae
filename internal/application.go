package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/bowling-kata/internal/apperror"
	"github.com/rocketscienceinc/bowling-kata/internal/config"
	"github.com/rocketscienceinc/bowling-kata/internal/entity"
	"github.com/rocketscienceinc/bowling-kata/internal/game"
	"github.com/rocketscienceinc/bowling-kata/internal/pkg"
	"github.com/rocketscienceinc/bowling-kata/internal/repository"
	"github.com/rocketscienceinc/bowling-kata/internal/repository/storage"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrInvalidInput = errors.New("input line is not a pin count")
)

type scoreReportRepo interface {
	CreateOrUpdate(ctx context.Context, report *entity.ScoreReport) error
	GetByID(ctx context.Context, id string) (*entity.ScoreReport, error)
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var reports scoreReportRepo
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		reports = repository.NewScoreReportRepository(redisStorage.Connection, conf.Redis.KeyPrefix)
	}

	return Play(ctx, logger, conf, in, out, reports)
}

// Play - feeds one pin count per input line into a new game and writes the final score to out.
// Reading stops at the end of input, when the game is over or when ctx is canceled.
// reports may be nil, in which case no score report is stored.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, reports scoreReportRepo) error {
	log := logger.With("component", "play")

	bowling := game.NewGame()

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines, readErr := readLines(readCtx, in)
	lineNumber := 0

read:
	for !bowling.IsFinished() {
		if ctx.Err() != nil {
			log.Info("Input canceled, scoring what was rolled")
			break
		}

		var text string
		var ok bool

		select {
		case <-ctx.Done():
			log.Info("Input canceled, scoring what was rolled")
			break read
		case text, ok = <-lines:
		}

		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			break
		}

		lineNumber++

		line := strings.TrimSpace(text)
		if line == "" {
			continue
		}

		pins, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("%w: line %d: %q", ErrInvalidInput, lineNumber, line)
		}

		frame := bowling.Frame()
		err = bowling.Roll(pins)

		switch {
		case err == nil:
			log.Debug("Roll recorded", "frame", frame, "pins", pins)
		case errors.Is(err, apperror.ErrInvalidRoll) && conf.SkipInvalid:
			log.Warn("Skipping invalid roll", "line", lineNumber, "error", err)
		default:
			return fmt.Errorf("failed to roll on line %d: %w", lineNumber, err)
		}
	}

	score := bowling.Score()
	log.Info("Game scored", "score", score, "finished", bowling.IsFinished(), "rolls", len(bowling.Rolls()))

	if _, err := fmt.Fprintf(out, "score: %d\n", score); err != nil {
		return fmt.Errorf("failed to write score: %w", err)
	}

	if reports == nil {
		return nil
	}

	reportID, err := pkg.GenerateReportID()
	if err != nil {
		return fmt.Errorf("error generating report ID: %w", err)
	}

	// a canceled run still stores what was scored
	saveCtx := context.WithoutCancel(ctx)

	report := entity.NewScoreReport(reportID, bowling.Rolls(), score, bowling.IsFinished())
	if err = reports.CreateOrUpdate(saveCtx, report); err != nil {
		return fmt.Errorf("failed to save score report: %w", err)
	}

	log.Info("Score report saved", "id", reportID)

	if log.Enabled(saveCtx, slog.LevelDebug) {
		stored, err := reports.GetByID(saveCtx, reportID)
		if err != nil {
			log.Warn("Could not read back score report", "id", reportID, "error", err)
			return nil
		}

		log.Debug("Stored score report", "id", stored.ID, "score", stored.Score, "rolls", stored.Rolls, "finished", stored.Finished)
	}

	return nil
}

// readLines - scans in on its own goroutine so a blocked read never holds up cancellation.
// lines is closed at the end of input or once ctx is done; readErr then carries the scanner error, if any.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)

		defer func() {
			readErr <- scanner.Err()
			close(lines)
		}()

		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines, readErr
}
