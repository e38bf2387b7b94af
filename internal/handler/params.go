package handler

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minDailyCount = 1
	maxDailyCount = 5
)

// parseStrictCount parses the /setcount argument. Missing, non-numeric or
// out-of-range arguments are errors surfaced to the user as a usage
// message.
func parseStrictCount(args string) (int, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, fmt.Errorf("missing count argument")
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %w", fields[0], err)
	}
	if n < minDailyCount || n > maxDailyCount {
		return 0, fmt.Errorf("count %d out of range [%d,%d]", n, minDailyCount, maxDailyCount)
	}
	return n, nil
}

// clampCount parses the /more argument leniently: missing or unparseable
// input falls back to 1, numeric input is clamped into [1,5].
func clampCount(args string) int {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 1
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 1
	}
	if n < minDailyCount {
		return minDailyCount
	}
	if n > maxDailyCount {
		return maxDailyCount
	}
	return n
}
