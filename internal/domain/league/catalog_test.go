package league

import "testing"

func TestParseRef(t *testing.T) {
	tests := []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{raw: "PremierLeague", wantID: 39, wantOK: true},
		{raw: "laliga", wantID: 140, wantOK: true},
		{raw: "PersianGulfProLeague", wantID: 290, wantOK: true},
		{raw: "HazfiCup", wantID: 495, wantOK: true},
		{raw: "203", wantID: 203, wantOK: true},
		{raw: "0", wantOK: false},
		{raw: "-4", wantOK: false},
		{raw: "NotALeague", wantOK: false},
		{raw: "  ", wantOK: false},
	}

	for _, tc := range tests {
		gotID, gotOK := ParseRef(tc.raw)
		if gotOK != tc.wantOK || gotID != tc.wantID {
			t.Fatalf("ParseRef(%q) = %d,%t want %d,%t", tc.raw, gotID, gotOK, tc.wantID, tc.wantOK)
		}
	}
}

func TestCatalogIsSortedAndSymbolLookupWorks(t *testing.T) {
	entries := Catalog()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].ID >= entries[i].ID {
			t.Fatalf("catalog not sorted at %d: %d >= %d", i, entries[i-1].ID, entries[i].ID)
		}
	}
	if got := SymbolFor(39); got != "PremierLeague" {
		t.Fatalf("unexpected symbol for 39: %q", got)
	}
}

func TestCurrentSeason(t *testing.T) {
	seasons := []Season{{Year: 2022}, {Year: 2024}, {Year: 2023, Current: true}}
	got, ok := CurrentSeason(seasons)
	if !ok || got.Year != 2023 {
		t.Fatalf("expected flagged season 2023, got %d ok=%t", got.Year, ok)
	}

	got, ok = CurrentSeason([]Season{{Year: 2020}, {Year: 2021}})
	if !ok || got.Year != 2021 {
		t.Fatalf("expected latest season fallback 2021, got %d", got.Year)
	}

	if _, ok := CurrentSeason(nil); ok {
		t.Fatalf("expected no season for empty input")
	}
}
