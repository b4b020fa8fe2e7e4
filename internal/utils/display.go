// Package utils provides output helpers for pbp-indicators
package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/myusername/pbp-indicators/pkg/models"
)

// DisplayGameStats prints the totals and windowed aggregates of both teams in a game
func DisplayGameStats(w io.Writer, result *models.GameResult) {
	fmt.Fprintf(w, "\n=========== %s vs %s ===========\n", result.HomeTeam, result.AwayTeam)
	if result.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", result.Source)
	}

	fmt.Fprintf(w, "%-16s | %10s | %10s\n", "Indicator", "Home", "Away")
	fmt.Fprintf(w, "%-16s | %10s | %10s\n", strings.Repeat("-", 16), strings.Repeat("-", 10), strings.Repeat("-", 10))

	for _, name := range models.IndicatorNames {
		home, _ := result.Home.Totals.Get(name)
		away, _ := result.Away.Totals.Get(name)
		fmt.Fprintf(w, "%-16s | %10d | %10d\n", name, home, away)
	}

	fmt.Fprintf(w, "%-16s | %10s | %10s\n", strings.Repeat("-", 16), strings.Repeat("-", 10), strings.Repeat("-", 10))
	for _, row := range windowRows(result.Home, result.Away) {
		fmt.Fprintf(w, "%-16s | %10d | %10d\n", row.label, row.home, row.away)
	}

	if result.Skipped > 0 || result.Unmatched > 0 {
		fmt.Fprintf(w, "Skipped: %d, unmatched team labels: %d\n", result.Skipped, result.Unmatched)
	}
	fmt.Fprintln(w, strings.Repeat("=", 42))
}

type windowRow struct {
	label      string
	home, away int
}

func windowRows(home, away *models.TeamStats) []windowRow {
	return []windowRow{
		{"points_last_3_fg", home.PointsLast3FG, away.PointsLast3FG},
		{"points_last_5_fg", home.PointsLast5FG, away.PointsLast5FG},
		{"points_last_10_fg", home.PointsLast10FG, away.PointsLast10FG},
		{"point_1m", home.Point1m, away.Point1m},
		{"point_3m", home.Point3m, away.Point3m},
		{"point_5m", home.Point5m, away.Point5m},
		{"point_10m", home.Point10m, away.Point10m},
	}
}

// WriteGameStatsJSON writes the results as indented JSON without per-event history
func WriteGameStatsJSON(w io.Writer, results []*models.GameResult) error {
	trimmed := make([]models.GameResult, len(results))
	for i, r := range results {
		trimmed[i] = *r
		trimmed[i].Home = withoutEvents(r.Home)
		trimmed[i].Away = withoutEvents(r.Away)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(trimmed); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

func withoutEvents(s *models.TeamStats) *models.TeamStats {
	if s == nil {
		return nil
	}
	c := *s
	c.Events = nil
	return &c
}

// SaveGameStatsToCSV saves one row per team per game to a CSV file
func SaveGameStatsToCSV(results []*models.GameResult, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	header := []string{"source", "side", "team", "opponent"}
	header = append(header, models.IndicatorNames...)
	for _, row := range windowRows(&models.TeamStats{}, &models.TeamStats{}) {
		header = append(header, row.label)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range results {
		rows := windowRows(r.Home, r.Away)
		for _, side := range []string{"home", "away"} {
			stats, opponent := r.Home, r.AwayTeam
			if side == "away" {
				stats, opponent = r.Away, r.HomeTeam
			}

			record := []string{r.Source, side, stats.Team, opponent}
			for _, name := range models.IndicatorNames {
				v, _ := stats.Totals.Get(name)
				record = append(record, strconv.Itoa(v))
			}
			for _, row := range rows {
				v := row.home
				if side == "away" {
					v = row.away
				}
				record = append(record, strconv.Itoa(v))
			}

			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write team data: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
