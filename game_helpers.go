package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/conway/model"
	"github.com/sheikhrachel/conway/seed"
	"github.com/sheikhrachel/conway/utils"
)

// run parses args, seeds a new game and drives it until ctx is cancelled,
// the user quits or the generation limit is reached
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	config, err := utils.ParseArgs("life", args, out)
	if err != nil {
		return err
	}

	game, err := model.NewGameOfLife(config.Size)
	if err != nil {
		return err
	}
	if err = seedGrid(game.Grid(), config, in, out); err != nil {
		return err
	}

	var stats *utils.Stats
	switch config.Renderer {
	case utils.RendererScreen:
		stats, err = playOnScreen(ctx, game, config)
	default:
		fmt.Fprintf(out, "Starting simulation in %s...\n", config.FrameRate)
		if !wait(ctx, config.FrameRate) {
			return nil
		}
		renderer := &model.TerminalRenderer{Out: out, NoClear: config.NoClear}
		stats, err = play(ctx, game, renderer, nil, config)
	}
	if err != nil {
		return err
	}

	displayFinalStats(out, game, stats)
	return nil
}

// seedGrid fills the initial grid according to the configured mode
func seedGrid(grid *model.Grid, config utils.Config, in io.Reader, out io.Writer) error {
	opts := seed.Options{Strict: config.Strict}

	switch config.Mode {
	case utils.ModeRandom:
		if config.Seed != 0 {
			grid.RandomizeWith(rand.New(rand.NewPCG(uint64(config.Seed), 0)))
		} else {
			grid.Randomize()
		}
		return nil
	case utils.ModePattern:
		p, err := model.PatternByName(config.Pattern)
		if err != nil {
			return err
		}
		return grid.PlaceCentered(p)
	case utils.ModeFile:
		if config.SeedFile == "-" {
			return seed.Read(in, grid, opts)
		}
		f, err := os.Open(config.SeedFile)
		if err != nil {
			return errors.Wrapf(err, "[seedGrid] failed to open seed file: %+v", config.SeedFile)
		}
		defer f.Close()
		return seed.Read(f, grid, opts)
	default:
		return seed.Prompt(in, out, grid, opts)
	}
}

func playOnScreen(ctx context.Context, game *model.GameOfLife, config utils.Config) (*utils.Stats, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[playOnScreen] failed to create screen")
	}
	renderer, err := model.NewScreenRenderer(screen)
	if err != nil {
		return nil, err
	}
	defer renderer.Close()

	return play(ctx, game, renderer, renderer.Watch, config)
}

// play runs the game loop next to an optional input watcher. Either one
// finishing stops the other; a quit request from the watcher is not an error.
func play(
	ctx context.Context,
	game *model.GameOfLife,
	renderer model.Renderer,
	watch func(context.Context) error,
	config utils.Config,
) (*utils.Stats, error) {
	stats := utils.NewStats()
	eg, egCtx := errgroup.WithContext(ctx)
	loopCtx, cancel := context.WithCancel(egCtx)
	defer cancel()

	eg.Go(func() error {
		defer cancel()
		return gameLoop(loopCtx, game, renderer, config, stats)
	})
	if watch != nil {
		eg.Go(func() error {
			return watch(loopCtx)
		})
	}

	if err := eg.Wait(); err != nil && !errors.Is(err, model.ErrQuit) {
		return stats, err
	}
	return stats, nil
}

// gameLoop renders the current generation, waits one frame and steps, until
// ctx is done or the generation limit has been displayed
func gameLoop(
	ctx context.Context,
	game *model.GameOfLife,
	renderer model.Renderer,
	config utils.Config,
	stats *utils.Stats,
) error {
	var lastFrameTime time.Time

	for ctx.Err() == nil {
		frameStart := time.Now()
		var frameDuration time.Duration
		if !lastFrameTime.IsZero() {
			frameDuration = frameStart.Sub(lastFrameTime)
		}
		lastFrameTime = frameStart

		header := updateGameState(game, config, stats, frameDuration)
		if err := renderer.Clear(); err != nil {
			return err
		}
		if err := renderer.Display(game.Grid(), header); err != nil {
			return err
		}

		if config.MaxGenerations > 0 && game.Generation() >= config.MaxGenerations {
			return nil
		}
		if !wait(ctx, config.FrameRate) {
			return nil
		}
		game.Step()
	}
	return nil
}

// updateGameState feeds the current generation into stats and returns the frame header
func updateGameState(game *model.GameOfLife, config utils.Config, stats *utils.Stats, frameDuration time.Duration) string {
	grid := game.Grid()
	livingCells := grid.CountLiving()
	last := game.LastStep()
	stats.Update(game.Generation(), livingCells, last.Births, last.Deaths, frameDuration)
	stagnant := stats.Observe(grid.Hash())

	if !config.ShowStats {
		return fmt.Sprintf("Generation: %d", game.Generation())
	}

	density := float64(livingCells) / float64(game.Size()*game.Size()) * 100
	var b strings.Builder
	fmt.Fprintf(&b, "Generation: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		game.Generation(), livingCells, density, utils.Status(livingCells, stagnant))
	fmt.Fprintf(&b, "Births: %d | Deaths: %d | Performance: %.1f gen/sec | Avg Pop: %.1f",
		last.Births, last.Deaths, stats.GenerationsPerSecond, stats.AveragePopulation)
	return b.String()
}

// wait blocks for d or until ctx is done, reporting whether the full delay elapsed
func wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return ctx.Err() == nil
	}
}

// displayFinalStats prints the shutdown summary
func displayFinalStats(out io.Writer, game *model.GameOfLife, stats *utils.Stats) {
	fmt.Fprintln(out, "\nShutting down...")
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		game.Generation(), stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f avg population, %d births, %d deaths\n",
		stats.AveragePopulation, stats.TotalBirths, stats.TotalDeaths)
}
