package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "bout").
		From("ufc_fights").
		Where(Eq("event_id", int64(7)), IsNull("fighter_a_id")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, bout FROM ufc_fights WHERE event_id = $1 AND fighter_a_id IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderIn(t *testing.T) {
	query, args, err := Select("id").
		From("ufc_fighters").
		Where(In("stance", []any{"--", "---", ""})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM ufc_fighters WHERE stance IN ($1, $2, $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("ufc_events").
		Set("date_proper", "2024-05-11").
		Where(Eq("id", int64(3)), IsNull("date_proper")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE ufc_events SET date_proper = $1 WHERE id = $2 AND date_proper IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2024-05-11" || args[1] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderSuffixArgs(t *testing.T) {
	query, args, err := Update("ufc_fight_results fr").
		SetExpr("event_id", "e.id").
		SuffixArgs("FROM ufc_events e WHERE btrim(fr.event_name) = btrim(e.name) AND fr.event_id IS NULL AND fr.outcome IN (?, ?)", "NC/NC", "D/D").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE ufc_fight_results fr SET event_id = e.id FROM ufc_events e WHERE btrim(fr.event_name) = btrim(e.name) AND fr.event_id IS NULL AND fr.outcome IN ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "NC/NC" || args[1] != "D/D" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderSetExpr(t *testing.T) {
	query, args, err := Update("ufc_fight_stats").
		SetExpr("sig_str_landed", "COALESCE(sig_str_landed, ?)", 9).
		SetExpr("sig_str_attempted", "COALESCE(sig_str_attempted, ?)", 22).
		Where(Eq("id", int64(41))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE ufc_fight_stats SET sig_str_landed = COALESCE(sig_str_landed, $1), sig_str_attempted = COALESCE(sig_str_attempted, $2) WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 9 || args[1] != 22 || args[2] != int64(41) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
