package utils

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/myusername/pbp-indicators/pkg/models"
)

func sampleResult() *models.GameResult {
	return &models.GameResult{
		Source:   "001_heat_knicks.csv",
		HomeTeam: "Heat",
		AwayTeam: "Knicks",
		Home: &models.TeamStats{
			Team:          "Heat",
			Events:        []models.Event{{Time: 60, Indicators: models.IndicatorRecord{ThreePoints: 3, FieldGoals: 3}}},
			Totals:        models.IndicatorRecord{ThreePoints: 3, FieldGoals: 3, ShotDistance: 24},
			PointsLast3FG: 3,
			Point1m:       3,
		},
		Away: &models.TeamStats{
			Team:   "Knicks",
			Totals: models.IndicatorRecord{DefReb: 1},
		},
		Skipped: 2,
	}
}

func TestDisplayGameStats(t *testing.T) {
	var buf bytes.Buffer
	DisplayGameStats(&buf, sampleResult())
	out := buf.String()

	for _, want := range []string{"Heat vs Knicks", "three_points", "points_last_3_fg", "point_10m", "Skipped: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGameStatsJSON(t *testing.T) {
	result := sampleResult()
	var buf bytes.Buffer
	if err := WriteGameStatsJSON(&buf, []*models.GameResult{result}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []models.GameResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Home.Totals.FieldGoals != 3 || len(decoded[0].Home.Events) != 0 {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(result.Home.Events) != 1 {
		t.Error("WriteGameStatsJSON must not modify its input")
	}
}

func TestSaveGameStatsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")
	if err := SaveGameStatsToCSV([]*models.GameResult{sampleResult()}, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}

	header := rows[0]
	if len(header) != 4+len(models.IndicatorNames)+7 {
		t.Errorf("header has %d columns", len(header))
	}
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %q not found", name)
		return -1
	}

	home, away := rows[1], rows[2]
	if home[col("team")] != "Heat" || home[col("opponent")] != "Knicks" || home[col("field_goals")] != "3" || home[col("point_1m")] != "3" {
		t.Errorf("home row = %v", home)
	}
	if away[col("side")] != "away" || away[col("d_reb")] != "1" || away[col("points_last_3_fg")] != "0" {
		t.Errorf("away row = %v", away)
	}
}
