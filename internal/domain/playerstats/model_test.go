package playerstats

import "testing"

func TestDedupe_KeepsLastPerNaturalKey(t *testing.T) {
	items := []Stat{
		{PlayerID: 1, TeamID: 10, LeagueID: 39, Season: 2023, Appearances: 1},
		{PlayerID: 1, TeamID: 11, LeagueID: 39, Season: 2023, Appearances: 2},
		{PlayerID: 1, TeamID: 10, LeagueID: 39, Season: 2023, Appearances: 3},
	}

	got := Dedupe(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(got))
	}
	if got[0].TeamID != 10 || got[0].Appearances != 3 {
		t.Fatalf("expected last write to win for team 10, got %+v", got[0])
	}
	if got[1].TeamID != 11 {
		t.Fatalf("expected team 11 second, got %+v", got[1])
	}
}

func TestStatValidate(t *testing.T) {
	if err := (Stat{PlayerID: 1, TeamID: 2, LeagueID: 3, Season: 2024}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Stat{PlayerID: 1, TeamID: 2, LeagueID: 3}).Validate(); err == nil {
		t.Fatalf("expected missing season to fail")
	}
}
