package fixture

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// SeasonScope names the complete fixture list of one league season.
func SeasonScope(leagueID int64, season int) string {
	return "season:" + strconv.FormatInt(leagueID, 10) + ":" + strconv.Itoa(season)
}

// DayScope names the fixtures of one UTC day across leagueIDs. The scope is
// independent of the order and duplicates of leagueIDs.
func DayScope(day time.Time, leagueIDs []int64) string {
	ids := slices.Clone(leagueIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "day:" + day.UTC().Format(time.DateOnly) + ":" + strings.Join(parts, ",")
}
