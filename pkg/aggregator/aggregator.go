// Package aggregator folds a game's play-by-play records into per-team statistics
package aggregator

import (
	"errors"
	"fmt"

	"github.com/myusername/pbp-indicators/pkg/models"
	"github.com/myusername/pbp-indicators/pkg/parser"
)

var (
	// ErrMalformedRecord marks a record that cannot be turned into an event
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnmatchedTeam marks a record whose team label matches neither team in strict mode
	ErrUnmatchedTeam = errors.New("unmatched team label")
)

// RecordError reports the position of the record that failed a game
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Aggregator turns raw records into team statistics. It holds no per-game state
// and is safe for concurrent use.
type Aggregator struct {
	classifier  *parser.Classifier
	strictTeams bool
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithClassifier sets the description classifier
func WithClassifier(c *parser.Classifier) Option {
	return func(a *Aggregator) {
		if c != nil {
			a.classifier = c
		}
	}
}

// WithStrictTeams rejects records whose team label matches neither team instead of
// attributing them to the away team
func WithStrictTeams(strict bool) Option {
	return func(a *Aggregator) {
		a.strictTeams = strict
	}
}

// New creates an aggregator
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		classifier: parser.NewClassifier(parser.DefaultClassifierConfig()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAggregator = New()

// Aggregate runs the default aggregator over a game's records
func Aggregate(homeTeam, awayTeam string, records []models.RawEvent) (*models.GameResult, error) {
	return defaultAggregator.Aggregate(homeTeam, awayTeam, records)
}

// Aggregate classifies every record in order, attributes it to a team and computes
// the windowed aggregates once all records are consumed. Any malformed record fails
// the whole game.
func (a *Aggregator) Aggregate(homeTeam, awayTeam string, records []models.RawEvent) (*models.GameResult, error) {
	home := newTeamState(homeTeam)
	away := newTeamState(awayTeam)
	result := &models.GameResult{
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
	}

	for i, rec := range records {
		secs, err := parser.ParseClock(rec.Time)
		if errors.Is(err, parser.ErrEmptyTime) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, &RecordError{Index: i, Err: fmt.Errorf("%w: %w", ErrMalformedRecord, err)}
		}

		target := home
		if rec.Team != homeTeam {
			if rec.Team != awayTeam {
				if a.strictTeams {
					return nil, &RecordError{Index: i, Err: fmt.Errorf("%w: %q", ErrUnmatchedTeam, rec.Team)}
				}
				result.Unmatched++
			}
			target = away
		}

		target.apply(secs, a.classifier.Classify(rec.Description))
	}

	result.Home = home.finalize()
	result.Away = away.finalize()
	return result, nil
}

// teamState is the running state of one team while a game is being folded
type teamState struct {
	team   string
	events []models.Event
	totals models.IndicatorRecord
	recent *pointsRing
}

func newTeamState(team string) *teamState {
	return &teamState{
		team:   team,
		recent: newPointsRing(RecentFieldGoalCap),
	}
}

// apply records one classified event
func (s *teamState) apply(secs float64, c parser.Classification) {
	s.events = append(s.events, models.Event{Time: secs, Indicators: c.Indicators})
	s.totals.Add(c.Indicators)

	// labeled misses occupy a slot with zero points, even inside a combined play
	if c.Indicators.FieldGoals > 0 || c.Shot.LabeledMiss {
		s.recent.Push(c.Indicators.FieldGoals)
	}
}

// finalize computes the windowed aggregates
func (s *teamState) finalize() *models.TeamStats {
	return &models.TeamStats{
		Team:                  s.team,
		Events:                s.events,
		Totals:                s.totals,
		RecentFieldGoalPoints: s.recent.Values(),
		PointsLast3FG:         s.recent.SumLast(3),
		PointsLast5FG:         s.recent.SumLast(5),
		PointsLast10FG:        s.recent.SumLast(RecentFieldGoalCap),
		Point1m:               pointsInWindow(s.events, 1),
		Point3m:               pointsInWindow(s.events, 3),
		Point5m:               pointsInWindow(s.events, 5),
		Point10m:              pointsInWindow(s.events, 10),
	}
}

// pointsInWindow sums field goal points over events whose time is within the given
// number of minutes of the last event's time
func pointsInWindow(events []models.Event, minutes int) int {
	if len(events) == 0 {
		return 0
	}
	cutoff := events[len(events)-1].Time - float64(minutes*60)
	sum := 0
	for _, e := range events {
		if e.Time >= cutoff {
			sum += e.Indicators.FieldGoals
		}
	}
	return sum
}
