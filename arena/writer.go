package arena

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"othello/game"
)

// Writer persists arena results as CSV files under a timestamped run
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteTournament writes one row per agent with its aggregated series
// results.
func (w *Writer) WriteTournament(result TournamentResult) error {
	path := filepath.Join(w.baseDir, "tournament.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tournament file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"agent", "wins", "draws", "games", "total_time", "moves", "avg_time", "nodes"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write tournament header: %w", err)
	}

	// Map order is randomized, sort names so reruns diff cleanly.
	names := make([]string, 0, len(result.Wins))
	for name := range result.Wins {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		timing := result.Timing[name]
		row := []string{
			name,
			strconv.Itoa(result.Wins[name]),
			strconv.Itoa(result.Draws),
			strconv.Itoa(result.Games),
			strconv.FormatFloat(timing["total_time"], 'f', -1, 64),
			strconv.FormatFloat(timing["moves"], 'f', -1, 64),
			strconv.FormatFloat(timing["avg_time"], 'f', -1, 64),
			strconv.FormatInt(result.Nodes[name], 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write tournament row: %w", err)
		}
	}

	return nil
}

// WriteMatches writes one row per game with its outcome and final score.
func (w *Writer) WriteMatches(results []MatchResult) error {
	path := filepath.Join(w.baseDir, "matches.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matches file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "winner", "moves", "black_score", "white_score"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write matches header: %w", err)
	}

	for i, result := range results {
		blackScore, whiteScore := 0, 0
		if final, ok := result.FinalState.(game.GameState); ok {
			blackScore, whiteScore = final.Score()
		}
		row := []string{
			strconv.Itoa(i),
			result.Winner.String(),
			strconv.Itoa(result.Moves),
			strconv.Itoa(blackScore),
			strconv.Itoa(whiteScore),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match row: %w", err)
		}
	}

	return nil
}
