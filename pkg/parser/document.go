package parser

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	"github.com/myusername/pbp-indicators/pkg/models"
)

// Column names a play-by-play table must carry
const (
	ColumnTime        = "time"
	ColumnDescription = "description"
	ColumnTeam        = "team"
)

// playLineRegex matches "<clock> <team> <description>" lines of exported play-by-play text
var playLineRegex = regexp.MustCompile(`^(\d{1,2}:\d{2}|\d+(?:\.\d+)?)\s+(\S+)\s+(.+)$`)

// ReadPDFText reads a PDF file and returns its text content
func ReadPDFText(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return "", fmt.Errorf("error opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	plainText, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("error extracting text from PDF: %w", err)
	}

	b, err := io.ReadAll(plainText)
	if err != nil {
		return "", fmt.Errorf("error reading plain text from PDF: %w", err)
	}

	return string(b), nil
}

// ExtractPlaysFromText parses one play per line from exported play-by-play text.
// Lines that do not start with a clock value are ignored.
func ExtractPlaysFromText(text string) []models.RawEvent {
	var plays []models.RawEvent

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match := playLineRegex.FindStringSubmatch(line)
		if len(match) < 4 {
			continue
		}

		plays = append(plays, models.RawEvent{
			Time:        match[1],
			Team:        match[2],
			Description: strings.TrimSpace(match[3]),
		})
	}

	slog.Debug("Extracted plays from text", "plays", len(plays))
	return plays
}

// ExtractPlaysFromHTML reads plays from the first table in the page whose header row
// names the time, description and team columns
func ExtractPlaysFromHTML(htmlContent string) ([]models.RawEvent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML content: %w", err)
	}

	var (
		plays []models.RawEvent
		found bool
	)

	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		columns := map[string]int{}
		table.Find("tr").First().Find("th, td").Each(func(j int, cell *goquery.Selection) {
			columns[strings.ToLower(strings.TrimSpace(cell.Text()))] = j
		})

		timeIdx, okTime := columns[ColumnTime]
		descIdx, okDesc := columns[ColumnDescription]
		teamIdx, okTeam := columns[ColumnTeam]
		if !okTime || !okDesc || !okTeam {
			slog.Debug("Table is not a play-by-play table", "table", i)
			return true
		}
		found = true

		table.Find("tr").Each(func(rowIdx int, row *goquery.Selection) {
			if rowIdx == 0 {
				return
			}

			var cells []string
			row.Find("td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) == 0 {
				return
			}

			plays = append(plays, models.RawEvent{
				Time:        cellAt(cells, timeIdx),
				Team:        cellAt(cells, teamIdx),
				Description: cellAt(cells, descIdx),
			})
		})
		return false
	})

	if !found {
		return nil, fmt.Errorf("no play-by-play table with %s, %s and %s columns", ColumnTime, ColumnDescription, ColumnTeam)
	}
	return plays, nil
}

func cellAt(cells []string, idx int) string {
	if idx < len(cells) {
		return cells[idx]
	}
	return ""
}
