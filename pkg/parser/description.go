// Package parser provides functionality to turn play-by-play text into indicators
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/myusername/pbp-indicators/pkg/models"
)

// Default shot distances, in feet, used when a description carries no "<n>-foot" marker
const (
	DefaultThreePointDistance = 23
	DefaultTwoPointDistance   = 1
)

// Description keywords
const (
	keywordMakes      = "makes"
	keywordMisses     = "misses"
	keywordThreePoint = "three point"
	keywordTwoPoint   = "two point"
	keywordFreeThrow  = "free throw"
)

// DefaultEfficientKeywords name short-range finishing moves
var DefaultEfficientKeywords = []string{"layup", "hook", "dunk", "tip", "put back"}

var distanceRegex = regexp.MustCompile(`(\d+)-foot`)

// Classification is the result of classifying a single description
type Classification struct {
	Indicators models.IndicatorRecord
	Shot       models.Shot
}

// lineItemRule sets one indicator when its keyword appears anywhere in the description
type lineItemRule struct {
	keyword string
	apply   func(r *models.IndicatorRecord)
}

// lineItemRules are checked independently of each other and of the shot rules
var lineItemRules = []lineItemRule{
	{"defensive rebound", func(r *models.IndicatorRecord) { r.DefReb = 1 }},
	{"offensive rebound", func(r *models.IndicatorRecord) { r.OffReb = 1 }},
	{"assists", func(r *models.IndicatorRecord) { r.Assist = 1 }},
	{"steals", func(r *models.IndicatorRecord) { r.Steal = 1 }},
	{"block", func(r *models.IndicatorRecord) { r.Block = 1 }},
	{"foul", func(r *models.IndicatorRecord) { r.Foul = 1 }},
}

// shotRule maps a shot type keyword to a kind. Rules are tried in order, the first match wins
// and the empty keyword always matches.
type shotRule struct {
	keyword string
	kind    models.ShotKind
}

var shotRules = []shotRule{
	{keywordThreePoint, models.ShotThree},
	{keywordFreeThrow, models.ShotFreeThrow},
	{"", models.ShotTwo},
}

// ClassifierConfig tunes the classifier
type ClassifierConfig struct {
	ThreePointDistance int
	TwoPointDistance   int
	EfficientKeywords  []string
	// EfficientThrees lets a made three carry efficient_shot when a finishing keyword matches.
	// Play-by-play data has historically been scored this way.
	EfficientThrees bool
}

// DefaultClassifierConfig returns the standard settings
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ThreePointDistance: DefaultThreePointDistance,
		TwoPointDistance:   DefaultTwoPointDistance,
		EfficientKeywords:  DefaultEfficientKeywords,
		EfficientThrees:    true,
	}
}

// Classifier converts event descriptions into indicator records
type Classifier struct {
	cfg ClassifierConfig
}

// NewClassifier creates a classifier. Zero distances fall back to the defaults.
func NewClassifier(cfg ClassifierConfig) *Classifier {
	if cfg.ThreePointDistance <= 0 {
		cfg.ThreePointDistance = DefaultThreePointDistance
	}
	if cfg.TwoPointDistance <= 0 {
		cfg.TwoPointDistance = DefaultTwoPointDistance
	}
	if cfg.EfficientKeywords == nil {
		cfg.EfficientKeywords = DefaultEfficientKeywords
	}
	keywords := make([]string, 0, len(cfg.EfficientKeywords))
	for _, k := range cfg.EfficientKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	cfg.EfficientKeywords = keywords
	return &Classifier{cfg: cfg}
}

var defaultClassifier = NewClassifier(DefaultClassifierConfig())

// ClassifyDescription classifies a description with the default settings
func ClassifyDescription(desc string) Classification {
	return defaultClassifier.Classify(desc)
}

// Classify derives the indicator record for one event description.
// Matching is case-insensitive and substring based, never tokenized.
func (c *Classifier) Classify(desc string) Classification {
	var result Classification
	text := strings.ToLower(desc)

	switch {
	case strings.Contains(text, keywordMakes):
		result.Shot.Result = models.ResultMade
	case strings.Contains(text, keywordMisses):
		result.Shot.Result = models.ResultMissed
	}

	if result.Shot.Result != models.ResultNone {
		for _, rule := range shotRules {
			if strings.Contains(text, rule.keyword) {
				result.Shot.Kind = rule.kind
				break
			}
		}
		c.applyShot(&result, text)
	}
	result.Shot.LabeledMiss = strings.Contains(text, keywordMisses) &&
		(strings.Contains(text, keywordThreePoint) || strings.Contains(text, keywordTwoPoint))

	for _, rule := range lineItemRules {
		if strings.Contains(text, rule.keyword) {
			rule.apply(&result.Indicators)
		}
	}

	return result
}

// applyShot fills the scoring fields for a classified shot
func (c *Classifier) applyShot(result *Classification, text string) {
	r := &result.Indicators
	made := result.Shot.Result == models.ResultMade

	switch result.Shot.Kind {
	case models.ShotFreeThrow:
		if made {
			r.FreeThrows = 1
		}
		return
	case models.ShotThree:
		r.ShotDistance = extractDistance(text, c.cfg.ThreePointDistance)
		if made {
			r.ThreePoints = 3
			r.FieldGoals = 3
			if c.cfg.EfficientThrees && c.isEfficient(text) {
				r.EfficientShot = 1
			}
		}
	case models.ShotTwo:
		r.ShotDistance = extractDistance(text, c.cfg.TwoPointDistance)
		if made {
			r.Twos = 2
			r.FieldGoals = 2
			if c.isEfficient(text) {
				r.EfficientShot = 1
			}
		}
	}
}

// isEfficient reports whether the text names a short-range finishing move
func (c *Classifier) isEfficient(text string) bool {
	for _, k := range c.cfg.EfficientKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// extractDistance returns the first "<n>-foot" value in text, or fallback
func extractDistance(text string, fallback int) int {
	matches := distanceRegex.FindStringSubmatch(text)
	if len(matches) > 1 {
		if d, err := strconv.Atoi(matches[1]); err == nil {
			return d
		}
	}
	return fallback
}
