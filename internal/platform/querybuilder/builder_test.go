package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "round_label").
		From("fixtures").
		Where(
			Eq("league_id", int64(39)),
			Eq("season", 2024),
			HasPrefix("round_label", "5/"),
		).
		OrderBy("kickoff_at", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, round_label FROM fixtures WHERE league_id = $1 AND season = $2 AND round_label LIKE $3 ORDER BY kickoff_at, id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "5/%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrAndIn(t *testing.T) {
	query, args, err := Select("*").
		From("fixtures").
		Where(
			Or(
				And(Eq("home_team_id", 1), Eq("away_team_id", 2)),
				And(Eq("home_team_id", 2), Eq("away_team_id", 1)),
			),
			In("status_short", []string{"FT"}),
			IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM fixtures WHERE ((home_team_id = $1 AND away_team_id = $2) OR (home_team_id = $3 AND away_team_id = $4)) AND status_short IN ($5) AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestHasPrefix_EscapesWildcards(t *testing.T) {
	_, args, err := Select("id").From("t").Where(HasPrefix("c", "10%_")).ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	if args[0] != `10\%\_%` {
		t.Fatalf("unexpected escaped pattern: %v", args[0])
	}
}

func TestInsertBuilder_OnConflict(t *testing.T) {
	query, args, err := InsertInto("player_stats").
		Columns("player_id", "team_id", "league_id", "season", "goals").
		Values(int64(1), int64(2), int64(39), 2024, 10).
		OnConflict("player_id", "team_id", "league_id", "season").
		DoUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO player_stats (player_id, team_id, league_id, season, goals) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (player_id, team_id, league_id, season) DO UPDATE SET goals = EXCLUDED.goals"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpsertModels(t *testing.T) {
	type row struct {
		ID     int64  `db:"id"`
		Name   string `db:"name"`
		Ignore string `db:"-"`
		hidden string
	}

	query, args, err := UpsertModels("teams", []row{{ID: 1, Name: "Esteghlal"}, {ID: 2, Name: "Persepolis"}}, "id")
	if err != nil {
		t.Fatalf("build upsert: %v", err)
	}
	wantQuery := "INSERT INTO teams (id, name) VALUES ($1, $2), ($3, $4) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != "Persepolis" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("fixture_events").ToSQL(); err == nil {
		t.Fatalf("expected error for unbounded delete")
	}
	query, _, err := DeleteFrom("fixture_events").Where(Eq("fixture_id", int64(9))).ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}
	if query != "DELETE FROM fixture_events WHERE fixture_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestColumns_FlattensEmbeddedStructs(t *testing.T) {
	type figures struct {
		Goals   int `db:"goals"`
		Assists int `db:"assists"`
	}
	type row struct {
		PlayerID int64 `db:"player_id"`
		figures
	}

	got := Columns(row{})
	if len(got) != 3 || got[0] != "player_id" || got[1] != "goals" || got[2] != "assists" {
		t.Fatalf("expected embedded columns flattened, got %v", got)
	}
}
