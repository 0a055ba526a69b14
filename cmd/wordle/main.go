// cmd/wordle/main.go
//
// Entry point for the Wordle solver CLI: loads .env, configures
// zerolog, and wires a cobra command tree with three run modes
// (play, bench, serve).

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/ainyt-go/internal/bench"
	"github.com/robalobadob/ainyt-go/internal/benchserver"
	"github.com/robalobadob/ainyt-go/internal/config"
	"github.com/robalobadob/ainyt-go/internal/wordle"
	"github.com/robalobadob/ainyt-go/internal/wordleweb"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordle: fatal error")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordle",
		Short: "Play, benchmark, and serve results for the entropy Wordle solver",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return fmt.Errorf("wordle: load config: %w", err)
			}
			if lvl, err := zerolog.ParseLevel(config.Str("LOG_LEVEL", "info")); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return nil
		},
	}
	root.AddCommand(newPlayCmd(), newBenchCmd(), newServeCmd())
	return root
}

// ---------------------------------------------------------------- play

func newPlayCmd() *cobra.Command {
	var (
		oracleName string
		openerStr  string
		turnCap    int
		answerStr  string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single game against an oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := wordle.LoadDefaultDictionary()
			if err != nil {
				return fmt.Errorf("wordle: load dictionary: %w", err)
			}

			var opts []wordle.Option
			if openerStr != "" {
				opener, err := wordle.ParseWord(openerStr)
				if err != nil {
					return fmt.Errorf("wordle: --opener: %w", err)
				}
				opts = append(opts, wordle.WithOpener(opener))
			}

			solver, err := wordle.NewSolver(dict, opts...)
			if err != nil {
				return fmt.Errorf("wordle: new solver: %w", err)
			}

			oracle, closeOracle, err := buildOracle(oracleName, answerStr)
			if err != nil {
				return err
			}
			if closeOracle != nil {
				defer closeOracle()
			}

			result, err := wordle.Play(solver, oracle, turnCap)
			if err != nil {
				return fmt.Errorf("wordle: play: %w", err)
			}

			if result.Solved {
				fmt.Fprintf(cmd.OutOrStdout(), "solved in %d guesses\n", result.Turns)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "did not solve within %d guesses\n", turnCap)
			}
			for _, obs := range result.History {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s\n", obs.Guess, obs.Pattern)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&oracleName, "oracle", "manual", "oracle to play against: manual, offline, web")
	cmd.Flags().StringVar(&openerStr, "opener", config.Str("WORDLE_OPENER", ""), "override the solver's opening guess (default: tares)")
	cmd.Flags().IntVar(&turnCap, "turn-cap", wordle.DefaultTurnCap, "maximum guesses before giving up")
	cmd.Flags().StringVar(&answerStr, "answer", "", "known answer, required for --oracle=offline")
	return cmd
}

func buildOracle(name, answerStr string) (wordle.Oracle, func(), error) {
	switch name {
	case "manual":
		return wordle.ManualOracle(os.Stdin, os.Stdout), nil, nil
	case "offline":
		if answerStr == "" {
			return nil, nil, fmt.Errorf("wordle: --oracle=offline requires --answer")
		}
		answer, err := wordle.ParseWord(answerStr)
		if err != nil {
			return nil, nil, fmt.Errorf("wordle: --answer: %w", err)
		}
		return wordle.KnownAnswerOracle(answer), nil, nil
	case "web":
		browser, err := wordleweb.Open(config.Str("CHROME_CONTROL_URL", ""))
		if err != nil {
			return nil, nil, fmt.Errorf("wordle: open browser: %w", err)
		}
		return browser.Oracle(), func() { _ = browser.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("wordle: unknown oracle %q (want manual, offline, or web)", name)
	}
}

// ---------------------------------------------------------------- bench

func newBenchCmd() *cobra.Command {
	var (
		games  int
		opener string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the entropy solver against the known answers and record a benchmark run",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := wordle.LoadDefaultDictionary()
			if err != nil {
				return fmt.Errorf("wordle: load dictionary: %w", err)
			}
			answers, err := wordle.LoadDefaultAnswers()
			if err != nil {
				return fmt.Errorf("wordle: load answers: %w", err)
			}

			openerWord := dictOpenerOrDefault(dict, opener)

			record, err := bench.Run(dict, openerWord, answers, games, time.Now())
			if err != nil {
				return fmt.Errorf("wordle: bench run: %w", err)
			}

			store, err := bench.Open(dbPath)
			if err != nil {
				return fmt.Errorf("wordle: open benchmark store: %w", err)
			}
			defer store.Close()

			if err := store.SaveRun(context.Background(), record.Run, record.Games); err != nil {
				return fmt.Errorf("wordle: save benchmark run: %w", err)
			}

			log.Info().
				Str("run_id", record.Run.ID).
				Int("games", len(record.Games)).
				Int("solved", record.Solved()).
				Msg("benchmark run complete")
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: solved %d/%d\n", record.Run.ID, record.Solved(), len(record.Games))
			return nil
		},
	}

	cmd.Flags().IntVar(&games, "games", 0, "number of answers to play (0 means all)")
	cmd.Flags().StringVar(&opener, "opener", config.Str("WORDLE_OPENER", ""), "override the solver's opening guess (default: tares)")
	cmd.Flags().StringVar(&dbPath, "db", config.Str("DATABASE_URL", "./data/bench.db"), "SQLite database path for benchmark history")
	return cmd
}

func dictOpenerOrDefault(dict *wordle.Dictionary, openerStr string) wordle.Word {
	if openerStr == "" {
		w, _ := wordle.ParseWord("tares")
		return w
	}
	w, err := wordle.ParseWord(openerStr)
	if err == nil && !dict.IsGuessable(w) {
		err = fmt.Errorf("%q is not in the dictionary", openerStr)
	}
	if err != nil {
		log.Warn().Err(err).Str("opener", openerStr).Msg("invalid --opener, falling back to tares")
		w, _ = wordle.ParseWord("tares")
	}
	return w
}

// ---------------------------------------------------------------- serve

func newServeCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the benchmark history dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := bench.Open(dbPath)
			if err != nil {
				return fmt.Errorf("wordle: open benchmark store: %w", err)
			}
			defer store.Close()

			srv, err := benchserver.New(store, store.DB())
			if err != nil {
				return fmt.Errorf("wordle: new dashboard server: %w", err)
			}

			addr := ":" + config.Str("PORT", "8090")
			log.Info().Str("addr", addr).Msg("benchmark dashboard listening")
			return srv.Start(addr)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", config.Str("DATABASE_URL", "./data/bench.db"), "SQLite database path for benchmark history")
	return cmd
}
