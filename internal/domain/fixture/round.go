package fixture

import (
	"strconv"
	"strings"
)

const regularSeasonPrefix = "Regular Season - "

// ParseRegularRound extracts N from "Regular Season - N".
func ParseRegularRound(raw string) (int, bool) {
	value := strings.TrimSpace(raw)
	if !strings.HasPrefix(value, regularSeasonPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(value, regularSeasonPrefix)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// RoundLabel renders a regular-season round as "N/max". Cup rounds and other
// provider labels are kept verbatim.
func RoundLabel(raw string, maxRound int) string {
	n, ok := ParseRegularRound(raw)
	if !ok {
		return strings.TrimSpace(raw)
	}
	if maxRound < n {
		maxRound = n
	}
	return strconv.Itoa(n) + "/" + strconv.Itoa(maxRound)
}

// RoundPrefix is the label prefix matched by a round filter.
func RoundPrefix(round int) string {
	return strconv.Itoa(round) + "/"
}

func MaxRegularRound(items []Fixture) int {
	maxRound := 0
	for _, item := range items {
		if n, ok := ParseRegularRound(item.Round); ok && n > maxRound {
			maxRound = n
		}
	}
	return maxRound
}

// LabelRounds fills RoundLabel on every fixture using the larger of the batch
// maximum and knownMax, which callers read from storage for the same season.
func LabelRounds(items []Fixture, knownMax int) {
	maxRound := MaxRegularRound(items)
	if knownMax > maxRound {
		maxRound = knownMax
	}
	for i := range items {
		items[i].RoundLabel = RoundLabel(items[i].Round, maxRound)
	}
}
