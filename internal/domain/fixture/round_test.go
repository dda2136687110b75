package fixture

import "testing"

func TestRoundLabel_RegularSeason(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := RoundLabel("Regular Season - 5", 38); got != "5/38" {
			t.Fatalf("expected 5/38, got %q", got)
		}
	}
}

func TestRoundLabel_KeepsOtherRounds(t *testing.T) {
	if got := RoundLabel("Quarter-finals", 38); got != "Quarter-finals" {
		t.Fatalf("expected verbatim cup round, got %q", got)
	}
	if got := RoundLabel("Regular Season - x", 38); got != "Regular Season - x" {
		t.Fatalf("expected verbatim malformed round, got %q", got)
	}
}

func TestRoundLabel_MaxNeverBelowRound(t *testing.T) {
	if got := RoundLabel("Regular Season - 7", 0); got != "7/7" {
		t.Fatalf("expected 7/7, got %q", got)
	}
}

func TestLabelRounds_UsesLargerOfBatchAndStored(t *testing.T) {
	items := []Fixture{
		{ID: 1, Round: "Regular Season - 1"},
		{ID: 2, Round: "Regular Season - 2"},
		{ID: 3, Round: "Final"},
	}

	LabelRounds(items, 38)
	if items[0].RoundLabel != "1/38" || items[1].RoundLabel != "2/38" || items[2].RoundLabel != "Final" {
		t.Fatalf("unexpected labels: %q %q %q", items[0].RoundLabel, items[1].RoundLabel, items[2].RoundLabel)
	}

	LabelRounds(items, 0)
	if items[1].RoundLabel != "2/2" {
		t.Fatalf("expected batch max when nothing stored, got %q", items[1].RoundLabel)
	}
}

func TestRoundPrefix(t *testing.T) {
	if got := RoundPrefix(5); got != "5/" {
		t.Fatalf("expected 5/, got %q", got)
	}
}
