package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the search cost across a batch of move records.
type Summary struct {
	Searches       int
	TotalNodes     int
	MeanNodes      float64
	StdDevNodes    float64
	MeanDuration   time.Duration
	StdDevDuration time.Duration
}

// Summarize reduces move records to per-search statistics. Records
// without search data (human or random moves) are skipped.
func Summarize(records []MoveRecord) Summary {
	var nodes, seconds []float64
	total := 0
	for _, record := range records {
		if record.Nodes == 0 {
			continue
		}
		nodes = append(nodes, float64(record.Nodes))
		seconds = append(seconds, record.Duration.Seconds())
		total += record.Nodes
	}
	if len(nodes) == 0 {
		return Summary{}
	}

	meanNodes, stdNodes := stat.MeanStdDev(nodes, nil)
	meanSeconds, stdSeconds := stat.MeanStdDev(seconds, nil)

	return Summary{
		Searches:       len(nodes),
		TotalNodes:     total,
		MeanNodes:      meanNodes,
		StdDevNodes:    stdNodes,
		MeanDuration:   time.Duration(meanSeconds * float64(time.Second)),
		StdDevDuration: time.Duration(stdSeconds * float64(time.Second)),
	}
}
