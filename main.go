// The nim binary plays misère Nim against a configurable computer
// strategy on the terminal, or runs the strategy benchmark suite.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nim/experiments"
	"nim/game"
	"nim/searcher"
)

func main() {
	var config Config
	if err := config.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := run(config); err != nil {
		log.Fatal().Err(err).Msg("nim failed")
	}
}

func run(config Config) error {
	rows, err := config.ParseRows()
	if err != nil {
		return err
	}

	if config.Benchmark {
		return experiments.Run(rows, experiments.DefaultConfigs(), config.OutDir)
	}

	strategy, err := buildStrategy(config)
	if err != nil {
		return err
	}
	return playInteractive(rows, strategy)
}

func buildStrategy(config Config) (searcher.Strategy, error) {
	kind, err := searcher.ParseKind(config.Strategy)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithIterations(config.Iterations)}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}
	if config.DepthLimit > 0 {
		options = append(options, searcher.WithDepthLimit(config.DepthLimit))
	}
	return searcher.New(kind, options...)
}

// playInteractive runs the human (Player1) against the computer strategy
// (Player2). Bad input is re-prompted, never applied.
func playInteractive(rows []int, strategy searcher.Strategy) error {
	state, err := game.NewGame(rows...)
	if err != nil {
		return err
	}

	fmt.Println("Misère Nim: whoever takes the last match loses.")
	fmt.Println("Enter moves as \"row take\", e.g. \"2 3\".")

	scanner := bufio.NewScanner(os.Stdin)
	for !state.IsTerminal() {
		fmt.Printf("\n%s\n", state)

		if state.CurrentPlayer == game.Player1 {
			next, quit := humanMove(scanner, state)
			if quit {
				return nil
			}
			state = next
			continue
		}

		move, err := strategy.ChooseMove(state)
		if err != nil {
			return err
		}
		fmt.Printf("Computer: %s\n", move)
		if state, err = state.Apply(move); err != nil {
			return err
		}
	}

	winner, _ := state.Winner()
	if winner == game.Player1 {
		fmt.Println("\nYou win!")
	} else {
		fmt.Println("\nComputer wins!")
	}
	return nil
}

// humanMove prompts until it gets a legal move or EOF/quit.
func humanMove(scanner *bufio.Scanner, state *game.GameState) (*game.GameState, bool) {
	for {
		fmt.Print("Your move: ")
		if !scanner.Scan() {
			return nil, true
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "q" || input == "quit" {
			return nil, true
		}

		var move game.Move
		if _, err := fmt.Sscanf(input, "%d %d", &move.Row, &move.Take); err != nil {
			fmt.Println("Could not read that; enter \"row take\".")
			continue
		}

		next, err := state.Apply(move)
		if errors.Is(err, game.ErrIllegalMove) {
			fmt.Printf("Illegal move: %v\n", err)
			continue
		}
		if err != nil {
			fmt.Printf("Move rejected: %v\n", err)
			continue
		}
		return next, false
	}
}
