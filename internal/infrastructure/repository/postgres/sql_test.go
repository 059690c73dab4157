package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullPtrHelpers(t *testing.T) {
	if got := nullStringPtr(sql.NullString{}); got != nil {
		t.Fatalf("expected nil for invalid string, got %v", *got)
	}
	if got := nullStringPtr(sql.NullString{String: "KO/TKO", Valid: true}); got == nil || *got != "KO/TKO" {
		t.Fatalf("unexpected string pointer: %v", got)
	}

	if got := nullIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for invalid int, got %v", *got)
	}
	if got := nullIntPtr(sql.NullInt64{Int64: 154, Valid: true}); got == nil || *got != 154 {
		t.Fatalf("unexpected int pointer: %v", got)
	}

	when := time.Date(2024, time.May, 11, 0, 0, 0, 0, time.UTC)
	if got := nullTimePtr(sql.NullTime{Time: when, Valid: true}); got == nil || !got.Equal(when) {
		t.Fatalf("unexpected time pointer: %v", got)
	}
}
