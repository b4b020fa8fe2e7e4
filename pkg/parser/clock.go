package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyTime marks a record without a clock value, such as a period marker
	ErrEmptyTime = errors.New("empty time")
	// ErrMalformedTime marks a clock value that is neither "m:ss" nor a number
	ErrMalformedTime = errors.New("malformed time")
)

// ParseClock converts a game clock string to seconds.
// "2:30" is minutes and seconds, anything without a colon is read as seconds.
func ParseClock(clock string) (float64, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return 0, ErrEmptyTime
	}

	if strings.Contains(clock, ":") {
		parts := strings.Split(clock, ":")
		if len(parts) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
		}
		mins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
		}
		secs, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
		}
		return float64(mins*60 + secs), nil
	}

	secs, err := strconv.ParseFloat(clock, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
	}
	return secs, nil
}
