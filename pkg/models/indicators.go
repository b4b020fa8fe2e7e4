// Package models contains data structures for play-by-play indicator statistics
package models

// Indicator names, in the order they are reported
const (
	IndicatorThreePoints   = "three_points"
	IndicatorFreeThrows    = "free_throws"
	IndicatorTwos          = "twos"
	IndicatorDefReb        = "d_reb"
	IndicatorOffReb        = "o_reb"
	IndicatorAssist        = "assist"
	IndicatorSteal         = "steal"
	IndicatorBlock         = "block"
	IndicatorFoul          = "foul"
	IndicatorShotDistance  = "shot_distance"
	IndicatorFieldGoals    = "field_goals"
	IndicatorEfficientShot = "efficient_shot"
)

// IndicatorNames lists every indicator key
var IndicatorNames = []string{
	IndicatorThreePoints,
	IndicatorFreeThrows,
	IndicatorTwos,
	IndicatorDefReb,
	IndicatorOffReb,
	IndicatorAssist,
	IndicatorSteal,
	IndicatorBlock,
	IndicatorFoul,
	IndicatorShotDistance,
	IndicatorFieldGoals,
	IndicatorEfficientShot,
}

// IndicatorRecord holds the indicators derived from one event description.
// It doubles as the running totals of a team, where each field is a sum.
type IndicatorRecord struct {
	ThreePoints   int `json:"three_points"`
	FreeThrows    int `json:"free_throws"`
	Twos          int `json:"twos"`
	DefReb        int `json:"d_reb"`
	OffReb        int `json:"o_reb"`
	Assist        int `json:"assist"`
	Steal         int `json:"steal"`
	Block         int `json:"block"`
	Foul          int `json:"foul"`
	ShotDistance  int `json:"shot_distance"`
	FieldGoals    int `json:"field_goals"`
	EfficientShot int `json:"efficient_shot"`
}

// Add sums other into r field by field
func (r *IndicatorRecord) Add(other IndicatorRecord) {
	r.ThreePoints += other.ThreePoints
	r.FreeThrows += other.FreeThrows
	r.Twos += other.Twos
	r.DefReb += other.DefReb
	r.OffReb += other.OffReb
	r.Assist += other.Assist
	r.Steal += other.Steal
	r.Block += other.Block
	r.Foul += other.Foul
	r.ShotDistance += other.ShotDistance
	r.FieldGoals += other.FieldGoals
	r.EfficientShot += other.EfficientShot
}

// Get returns the value of the named indicator, or false for an unknown name
func (r IndicatorRecord) Get(name string) (int, bool) {
	switch name {
	case IndicatorThreePoints:
		return r.ThreePoints, true
	case IndicatorFreeThrows:
		return r.FreeThrows, true
	case IndicatorTwos:
		return r.Twos, true
	case IndicatorDefReb:
		return r.DefReb, true
	case IndicatorOffReb:
		return r.OffReb, true
	case IndicatorAssist:
		return r.Assist, true
	case IndicatorSteal:
		return r.Steal, true
	case IndicatorBlock:
		return r.Block, true
	case IndicatorFoul:
		return r.Foul, true
	case IndicatorShotDistance:
		return r.ShotDistance, true
	case IndicatorFieldGoals:
		return r.FieldGoals, true
	case IndicatorEfficientShot:
		return r.EfficientShot, true
	}
	return 0, false
}

// AsMap converts the record to a mapping keyed by indicator name
func (r IndicatorRecord) AsMap() map[string]int {
	m := make(map[string]int, len(IndicatorNames))
	for _, name := range IndicatorNames {
		m[name], _ = r.Get(name)
	}
	return m
}

// ShotKind identifies the type of shot named in a description
type ShotKind int

const (
	ShotNone ShotKind = iota
	ShotFreeThrow
	ShotTwo
	ShotThree
)

func (k ShotKind) String() string {
	switch k {
	case ShotFreeThrow:
		return "free_throw"
	case ShotTwo:
		return "two"
	case ShotThree:
		return "three"
	default:
		return "none"
	}
}

// ShotResult is the outcome of a shot attempt
type ShotResult int

const (
	ResultNone ShotResult = iota
	ResultMade
	ResultMissed
)

// Shot describes the shot attempt, if any, behind an event
type Shot struct {
	Kind   ShotKind
	Result ShotResult
	// LabeledMiss is set when the description says "misses" and names "three point" or
	// "two point", whatever Result resolved to
	LabeledMiss bool
}
