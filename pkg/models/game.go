package models

// RawEvent is one play-by-play record as read from a game file
type RawEvent struct {
	Time        string
	Team        string
	Description string
}

// Event is a classified play attributed to a team
type Event struct {
	// Time is the game clock in seconds
	Time       float64         `json:"time"`
	Indicators IndicatorRecord `json:"indicators"`
}

// TeamStats holds the aggregated statistics for one team in one game
type TeamStats struct {
	Team   string          `json:"team"`
	Events []Event         `json:"events,omitempty"`
	Totals IndicatorRecord `json:"totals"`

	// RecentFieldGoalPoints holds the last field goal attempts, oldest first
	RecentFieldGoalPoints []int `json:"recent_fg_points"`

	PointsLast3FG  int `json:"points_last_3_fg"`
	PointsLast5FG  int `json:"points_last_5_fg"`
	PointsLast10FG int `json:"points_last_10_fg"`

	Point1m  int `json:"point_1m"`
	Point3m  int `json:"point_3m"`
	Point5m  int `json:"point_5m"`
	Point10m int `json:"point_10m"`
}

// TotalsMap returns the totals keyed by indicator name
func (s *TeamStats) TotalsMap() map[string]int {
	return s.Totals.AsMap()
}

// GameResult holds both teams' statistics for a game
type GameResult struct {
	Source   string     `json:"source,omitempty"`
	HomeTeam string     `json:"home_team"`
	AwayTeam string     `json:"away_team"`
	Home     *TeamStats `json:"home"`
	Away     *TeamStats `json:"away"`

	// Skipped counts records with a blank time field
	Skipped int `json:"skipped"`
	// Unmatched counts records whose team label matched neither team
	Unmatched int `json:"unmatched"`
}
