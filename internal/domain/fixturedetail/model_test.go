package fixturedetail

import "testing"

func TestLineupSplit(t *testing.T) {
	lineup := Lineup{Players: []LineupPlayer{
		{PlayerID: 1, Starting: true},
		{PlayerID: 2, Starting: false},
		{PlayerID: 3, Starting: true},
	}}

	start, subs := lineup.Split()
	if len(start) != 2 || start[0].PlayerID != 1 || start[1].PlayerID != 3 {
		t.Fatalf("unexpected start xi: %+v", start)
	}
	if len(subs) != 1 || subs[0].PlayerID != 2 {
		t.Fatalf("unexpected substitutes: %+v", subs)
	}
}
