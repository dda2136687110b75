package fixture

import (
	"testing"
	"time"
)

func TestSeasonScope(t *testing.T) {
	if got := SeasonScope(39, 2023); got != "season:39:2023" {
		t.Fatalf("unexpected season scope %q", got)
	}
	if SeasonScope(39, 2023) == SeasonScope(39, 2022) {
		t.Fatalf("seasons must not share a scope")
	}
}

func TestDayScope(t *testing.T) {
	day := time.Date(2023, 9, 16, 0, 0, 0, 0, time.UTC)
	got := DayScope(day, []int64{140, 39, 140})
	if got != "day:2023-09-16:39,140" {
		t.Fatalf("unexpected day scope %q", got)
	}
	if DayScope(day, []int64{39}) == got {
		t.Fatalf("a different league set must not share a scope")
	}
}
