// Package loader reads game files into play-by-play records
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/myusername/pbp-indicators/pkg/models"
	"github.com/myusername/pbp-indicators/pkg/parser"
)

var (
	// ErrMissingColumn marks a header without one of the required columns
	ErrMissingColumn = errors.New("missing column")
	// ErrBadFilename marks a game file name that does not carry both team names
	ErrBadFilename = errors.New("bad game filename")
	// ErrUnsupportedFormat marks a file extension no reader exists for
	ErrUnsupportedFormat = errors.New("unsupported game file format")
	// ErrShortRecord marks a CSV row without a field for every required column
	ErrShortRecord = errors.New("short record")
)

// DefaultExtensions are the game file types LoadGame understands
var DefaultExtensions = []string{".csv", ".html", ".htm", ".pdf"}

// Game is a loaded game file
type Game struct {
	Path     string
	HomeTeam string
	AwayTeam string
	Records  []models.RawEvent
}

// TeamsFromFilename derives the home and away team names from a game file name of the
// form "<id>_<home>_<away>[_...].<ext>"
func TeamsFromFilename(name string) (string, string, error) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(base, "_")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("%w: %q", ErrBadFilename, name)
	}

	// a Caser is stateful, so each call gets its own
	caser := cases.Title(language.Und)
	return caser.String(parts[1]), caser.String(parts[2]), nil
}

// ReadCSV reads a header-described CSV stream of play-by-play records.
// The header must name the time, description and team columns.
func ReadCSV(r io.Reader) ([]models.RawEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	// play descriptions carry stray quotes like `layup ("and one")`
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.TrimSpace(h)] = i
	}

	idx := make(map[string]int, 3)
	for _, name := range []string{parser.ColumnTime, parser.ColumnDescription, parser.ColumnTeam} {
		i, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		idx[name] = i
	}

	var records []models.RawEvent
	for n := 1; ; n++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", n, err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}

		for _, i := range idx {
			if i >= len(row) {
				return nil, fmt.Errorf("record %d: %w: %d fields, header has %d",
					n, ErrShortRecord, len(row), len(header))
			}
		}

		records = append(records, models.RawEvent{
			Time:        row[idx[parser.ColumnTime]],
			Team:        row[idx[parser.ColumnTeam]],
			Description: row[idx[parser.ColumnDescription]],
		})
	}

	return records, nil
}

// LoadGame reads a game file, choosing the reader by extension
func LoadGame(path string) (*Game, error) {
	home, away, err := TeamsFromFilename(path)
	if err != nil {
		return nil, err
	}

	var records []models.RawEvent
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open game file: %w", err)
		}
		defer f.Close()
		records, err = ReadCSV(f)
		if err != nil {
			return nil, err
		}
	case ".html", ".htm":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read game file: %w", err)
		}
		records, err = parser.ExtractPlaysFromHTML(string(content))
		if err != nil {
			return nil, err
		}
	case ".pdf":
		text, err := parser.ReadPDFText(path)
		if err != nil {
			return nil, err
		}
		records = parser.ExtractPlaysFromText(text)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return &Game{
		Path:     path,
		HomeTeam: home,
		AwayTeam: away,
		Records:  records,
	}, nil
}

// ListGames returns the game files in dir with one of the given extensions, sorted by name
func ListGames(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range exts {
			if ext == strings.ToLower(want) {
				paths = append(paths, filepath.Join(dir, e.Name()))
				break
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}
