package loader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/myusername/pbp-indicators/pkg/models"
)

func TestTeamsFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		wantHome string
		wantAway string
		wantErr  bool
	}{
		{"401585601_lakers_celtics.csv", "Lakers", "Celtics", false},
		{"/data/games/20251021_KNICKS_cavaliers_final.csv", "Knicks", "Cavaliers", false},
		{"game_heat_nets", "Heat", "Nets", false},
		{"lakers_celtics.csv", "", "", true},
		{"game.csv", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away, err := TeamsFromFilename(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrBadFilename) {
					t.Fatalf("error = %v, want ErrBadFilename", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if home != tt.wantHome || away != tt.wantAway {
				t.Errorf("got %q vs %q, want %q vs %q", home, away, tt.wantHome, tt.wantAway)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	input := "period, time ,team,description\n" +
		"1,11:40,Lakers,A makes 24-foot three point jumper\n" +
		"1,,,End of 1st Quarter\n" +
		"2,11:02,Celtics,\"B misses 12-foot jumper, blocked\"\n"

	got, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.RawEvent{
		{Time: "11:40", Team: "Lakers", Description: "A makes 24-foot three point jumper"},
		{Time: "", Team: "", Description: "End of 1st Quarter"},
		{Time: "11:02", Team: "Celtics", Description: "B misses 12-foot jumper, blocked"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadCSV() = %+v, want %+v", got, want)
	}
}

func TestReadCSVBareQuote(t *testing.T) {
	input := "time,team,description\n" +
		"10:30,Lakers,A makes 2-foot layup (\"and one\")\n" +
		"10:10,Celtics,B defensive rebound\n"

	got, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.RawEvent{
		{Time: "10:30", Team: "Lakers", Description: `A makes 2-foot layup ("and one")`},
		{Time: "10:10", Team: "Celtics", Description: "B defensive rebound"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadCSV() = %+v, want %+v", got, want)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing team column", "time,description\n1:00,A makes layup\n", ErrMissingColumn},
		{"empty file", "", ErrMissingColumn},
		{"short row", "time,team,description\n1:00,Lakers\n", ErrShortRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadGameAndListGames(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "001_heat_knicks.csv")
	content := "time,team,description\n10:00,Heat,A makes 2-foot layup\n"
	if err := os.WriteFile(csvPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	htmlPath := filepath.Join(dir, "002_nets_bulls.html")
	page := `<table><tr><th>Time</th><th>Team</th><th>Description</th></tr>
<tr><td>9:00</td><td>Nets</td><td>C defensive rebound</td></tr></table>`
	if err := os.WriteFile(htmlPath, []byte(page), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := ListGames(dir, nil)
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if !reflect.DeepEqual(paths, []string{csvPath, htmlPath}) {
		t.Fatalf("ListGames = %v", paths)
	}

	game, err := LoadGame(csvPath)
	if err != nil {
		t.Fatalf("LoadGame csv: %v", err)
	}
	if game.HomeTeam != "Heat" || game.AwayTeam != "Knicks" || len(game.Records) != 1 {
		t.Errorf("csv game = %+v", game)
	}

	game, err = LoadGame(htmlPath)
	if err != nil {
		t.Fatalf("LoadGame html: %v", err)
	}
	if game.HomeTeam != "Nets" || len(game.Records) != 1 || game.Records[0].Team != "Nets" {
		t.Errorf("html game = %+v", game)
	}

	pdfPath := filepath.Join(dir, "004_suns_jazz.pdf")
	if err := os.WriteFile(pdfPath, []byte("not a pdf document"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGame(pdfPath); err == nil || !strings.Contains(err.Error(), "error opening PDF") {
		t.Errorf("LoadGame pdf error = %v, want error opening PDF", err)
	}

	if _, err := LoadGame(filepath.Join(dir, "003_a_b.xlsx")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}
