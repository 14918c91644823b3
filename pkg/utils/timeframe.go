package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeframeDays parses a timeframe of the form "<N>d" (e.g. "7d", "30d")
// into a positive number of days.
func ParseTimeframeDays(timeframe string) (int, error) {
	value, ok := strings.CutSuffix(timeframe, "d")
	if !ok {
		return 0, fmt.Errorf("invalid timeframe %q: expected format \"<N>d\"", timeframe)
	}

	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid timeframe %q: expected format \"<N>d\"", timeframe)
	}
	if days <= 0 {
		return 0, fmt.Errorf("invalid timeframe %q: days must be positive", timeframe)
	}

	return days, nil
}
