// Package experiments runs batches of search-vs-search games and
// collects search cost metrics.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"
)

type Option func(s *selfPlay)

// WithoutPruning runs both searchers as plain minimax.
func WithoutPruning() Option {
	return func(s *selfPlay) {
		s.pruning = false
	}
}

// WithResultsDir writes game and move records as CSV under the given
// directory.
func WithResultsDir(dir string) Option {
	return func(s *selfPlay) {
		s.resultsDir = dir
	}
}

type selfPlay struct {
	pruning    bool
	resultsDir string
}

// Result holds everything a self-play batch produced.
type Result struct {
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Summary     metrics.Summary
	ResultsDir  string // empty unless records were written out
}

// SelfPlay plays the search player against itself from an empty board
// for the given number of games, alternating the starting mark per
// game. Optimal play on both sides always ends in a tie; the point is
// the metrics.
func SelfPlay(games int, options ...Option) (Result, error) {
	if games <= 0 {
		return Result{}, fmt.Errorf("need a positive number of games, got %d", games)
	}
	config := &selfPlay{pruning: true}
	for _, option := range options {
		option(config)
	}

	log.Info().Msgf("starting self-play, %d games, pruning=%t...", games, config.pruning)

	result := Result{}
	starting := game.Cross
	for i := 0; i < games; i++ {
		gameRecord, moveRecords, err := runGame(starting, config.pruning)
		if err != nil {
			return Result{}, fmt.Errorf("self-play game %d: %w", i+1, err)
		}
		result.GameRecords = append(result.GameRecords, gameRecord)
		result.MoveRecords = append(result.MoveRecords, moveRecords...)

		log.Info().Msgf("completed game %d of %d: winner=%q moves=%d",
			i+1, games, gameRecord.Winner, gameRecord.Moves)

		starting = starting.Other()
	}
	result.Summary = metrics.Summarize(result.MoveRecords)

	if config.resultsDir != "" {
		dir, err := writeRecords(config.resultsDir, result)
		if err != nil {
			return Result{}, err
		}
		result.ResultsDir = dir
		log.Info().Msgf("stored records under %s", dir)
	}

	log.Info().Msgf("completed self-play: %d searches, %.0f nodes/search on average",
		result.Summary.Searches, result.Summary.MeanNodes)
	return result, nil
}

// runGame plays one search-vs-search game and returns its records.
func runGame(starting game.Mark, pruning bool) (metrics.GameRecord, []metrics.MoveRecord, error) {
	player1 := player.NewSearch(game.Cross, newSearcher(pruning))
	player2 := player.NewSearch(game.Naught, newSearcher(pruning))

	e, err := engine.New(player1, player2, nil)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	startTime := time.Now()
	final, err := e.Run(starting)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	endTime := time.Now()

	record := metrics.GameRecord{
		ID:           e.ID(),
		StartingMark: starting,
		Winner:       final.Winner(),
		Moves:        len(e.MoveRecords()),
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     endTime.Sub(startTime),
	}
	return record, e.MoveRecords(), nil
}

func newSearcher(pruning bool) *searcher.Minimax {
	options := []searcher.Option{searcher.WithCollector(metrics.NewCollector())}
	if !pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return searcher.New(options...)
}

func writeRecords(dir string, result Result) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", err
	}
	err = writer.WriteGameRecords(result.GameRecords)
	if err != nil {
		return "", err
	}
	err = writer.WriteMoveRecords(result.MoveRecords)
	if err != nil {
		return "", err
	}
	return writer.Dir(), nil
}
