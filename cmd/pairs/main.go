package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/randomtoy/pairs-go/internal/adapters/sessions"
	"github.com/randomtoy/pairs-go/internal/adapters/terminal"
	"github.com/randomtoy/pairs-go/internal/app"
	"github.com/randomtoy/pairs-go/internal/config"
	"github.com/randomtoy/pairs-go/internal/domain"
)

func main() {
	slots := flag.Int("slots", 12, "number of cards on the board (even, at most 52)")
	cols := flag.Int("cols", 4, "cards per row")
	seed := flag.Uint64("seed", 0, "deal seed; 0 picks a random deal")
	pause := flag.Duration("pause", 1500*time.Millisecond, "how long a revealed pair stays up")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	flag.Parse()

	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var rng domain.RNG = domain.SystemRNG{}
	if *seed != 0 {
		rng = domain.NewSeededRNG(*seed)
	}

	svc := app.NewGameService(
		sessions.NewMemoryStore(),
		terminal.NewDriver(os.Stdout),
		rng,
		app.Defaults{SlotCount: *slots, Deferred: true},
		logger,
	)

	if err := play(context.Background(), svc, terminal.NewRenderer(os.Stdout, *cols), *pause); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play(ctx context.Context, svc *app.GameService, r *terminal.Renderer, pause time.Duration) error {
	g, err := svc.NewGame(ctx, app.NewGameRequest{})
	if err != nil {
		return err
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		r.Board(g)
		if g.GameOver {
			fmt.Print("\nplay again? [y/N] ")
			if !in.Scan() || !strings.HasPrefix(strings.ToLower(in.Text()), "y") {
				return nil
			}
			if g, err = svc.Restart(ctx, g.ID); err != nil {
				return err
			}
			continue
		}

		fmt.Print("\ncard (q to quit)> ")
		if !in.Scan() {
			return in.Err()
		}
		text := strings.TrimSpace(in.Text())
		if text == "q" {
			return nil
		}
		slot, err := strconv.Atoi(text)
		if err != nil {
			fmt.Println("enter a card number")
			continue
		}

		resp, err := svc.Tap(ctx, app.TapRequest{GameID: g.ID, Slot: slot})
		if errors.Is(err, domain.ErrInvalidSlotIndex) {
			fmt.Printf("no card %d on the board\n", slot)
			continue
		}
		if err != nil {
			return err
		}
		g = resp.Game

		if g.Pending {
			r.Board(g)
			time.Sleep(pause)
			if resp, err = svc.Resolve(ctx, g.ID); err != nil {
				return err
			}
			g = resp.Game
		}
	}
}
