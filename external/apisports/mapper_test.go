package apisports

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestText_AcceptsMixedJSONTypes(t *testing.T) {
	var payload struct {
		A text `json:"a"`
		B text `json:"b"`
		C text `json:"c"`
		D text `json:"d"`
	}
	if err := sonic.UnmarshalString(`{"a":12,"b":"45%","c":null,"d":"1.87"}`, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.A.Int() != 12 || payload.B.Int() != 45 || payload.C.Int() != 0 || payload.D.Int() != 1 {
		t.Fatalf("unexpected ints: %d %d %d %d", payload.A.Int(), payload.B.Int(), payload.C.Int(), payload.D.Int())
	}
	if string(payload.D) != "1.87" {
		t.Fatalf("expected raw text kept, got %q", payload.D)
	}
}

func TestMapTeamStats_MapsKnownTypes(t *testing.T) {
	var items []statisticsItem
	raw := `[{"team":{"id":40,"name":"Liverpool"},"statistics":[
		{"type":"Shots on Goal","value":6},
		{"type":"Ball Possession","value":"61%"},
		{"type":"Passes %","value":"88%"},
		{"type":"expected_goals","value":"2.31"},
		{"type":"Goalkeeper Saves","value":null},
		{"type":"Something New","value":3}]}]`
	if err := sonic.UnmarshalString(raw, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}

	stats, err := mapTeamStats(1035037, items)
	if err != nil {
		t.Fatalf("map stats: %v", err)
	}
	got := stats[0]
	if got.FixtureID != 1035037 || got.TeamID != 40 {
		t.Fatalf("unexpected keys: %+v", got)
	}
	if got.ShotsOnGoal != 6 || got.BallPossession != 61 || got.PassesPercent != 88 || got.ExpectedGoals != "2.31" || got.GoalkeeperSaves != 0 {
		t.Fatalf("unexpected stat columns: %+v", got)
	}
}

func TestMapLineups_SplitsStartersAndBench(t *testing.T) {
	var items []lineupItem
	raw := `[{"team":{"id":50,"name":"Manchester City","colors":{"player":{"primary":"5badff"}}},
		"coach":{"id":4,"name":"Guardiola"},"formation":"4-3-3",
		"startXI":[{"player":{"id":617,"name":"Ederson","number":31,"pos":"G","grid":"1:1"}}],
		"substitutes":[{"player":{"id":50828,"name":"Z. Steffen","number":13,"pos":"G","grid":null}}]}]`
	if err := sonic.UnmarshalString(raw, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}

	lineups, err := mapLineups(9, items)
	if err != nil {
		t.Fatalf("map lineups: %v", err)
	}
	start, bench := lineups[0].Split()
	if len(start) != 1 || len(bench) != 1 {
		t.Fatalf("unexpected split: start=%d bench=%d", len(start), len(bench))
	}
	if start[0].Pos != "Goalkeeper" || !start[0].Starting || bench[0].Starting {
		t.Fatalf("unexpected lineup players: %+v %+v", start[0], bench[0])
	}
	if len(lineups[0].Colors) == 0 {
		t.Fatalf("expected colors kept as raw json")
	}
}

func TestMapStandings_FlattensGroups(t *testing.T) {
	var items []standingsItem
	raw := `[{"league":{"id":2,"season":2024,"standings":[
		[{"rank":1,"team":{"id":529,"name":"Barcelona"},"points":18,"goalsDiff":12,"group":"Group A","all":{"played":6,"win":6,"goals":{"for":15,"against":3}}}],
		[{"rank":1,"team":{"id":541,"name":"Real Madrid"},"points":16,"group":"Group B","update":"2024-12-11T00:00:00+00:00"}]]}}]`
	if err := sonic.UnmarshalString(raw, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rows, err := mapStandings(items)
	if err != nil {
		t.Fatalf("map standings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].GoalsFor != 15 || rows[0].Win != 6 || rows[1].Group != "Group B" || rows[1].LastUpdate == nil {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
