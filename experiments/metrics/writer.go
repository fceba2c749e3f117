package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tictactoe/game"
)

// GameRecord summarizes one finished game.
type GameRecord struct {
	ID           uuid.UUID
	StartingMark game.Mark
	Winner       game.Mark // NoMark for a tie
	Moves        int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

// MoveRecord ties one applied move to the search that produced it. The
// embedded SearchMetric is zero for players that do not search.
type MoveRecord struct {
	Game uuid.UUID
	Step int
	Mark game.Mark
	Cell int
	SearchMetric
}

// Writer stores experiment results under a timestamped directory.
type Writer struct {
	dir string
}

func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	return &Writer{dir: dir}, nil
}

// Dir returns the directory records are written into.
func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.dir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "starting_mark", "winner", "moves", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID.String(),
			record.StartingMark.String(),
			record.Winner.String(),
			strconv.Itoa(record.Moves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.dir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "mark", "cell", "pruning", "nodes", "cutoffs", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Game.String(),
			strconv.Itoa(record.Step),
			record.Mark.String(),
			strconv.Itoa(record.Cell),
			strconv.FormatBool(record.Pruning),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
