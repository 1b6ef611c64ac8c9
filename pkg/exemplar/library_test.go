package exemplar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, records []Record) *Library {
	t.Helper()
	data, err := json.Marshal(map[string][]Record{"exemplars": records})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "exemplar_library.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return NewLibrary(path)
}

var testRecords = []Record{
	{ID: "adv-edu", Pageant: "Miss Universe", QuestionType: "advocacy", Year: 2015, WinnerName: "A", ThemeTags: []string{"education", "youth"}, StructuralNotes: "cause first"},
	{ID: "adv-env", Pageant: "Miss Universe", QuestionType: "advocacy", Year: 2019, WinnerName: "B", ThemeTags: []string{"environment"}, StructuralNotes: "stakes first"},
	{ID: "personal", Pageant: "Miss Universe", QuestionType: "personal", Year: 2018, WinnerName: "C", ThemeTags: []string{"resilience"}, StructuralNotes: "scene first"},
	{ID: "mw-lead", Pageant: "Miss World", QuestionType: "leadership", Year: 2017, WinnerName: "D", ThemeTags: []string{"leadership"}, StructuralNotes: "reframe first"},
}

func TestFindMatchTagOverlapWins(t *testing.T) {
	lib := writeCatalog(t, testRecords)

	m := lib.FindMatch("advocacy", []string{"Education", "YOUTH"}, "Miss Universe")
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Record.ID != "adv-edu" {
		t.Errorf("matched %s, want adv-edu (2 tag overlaps beat 0)", m.Record.ID)
	}
	if m.Rank != "type_and_theme" {
		t.Errorf("rank = %s, want type_and_theme", m.Rank)
	}
}

func TestFindMatchTiesKeepCatalogOrder(t *testing.T) {
	lib := writeCatalog(t, testRecords)

	// No tag overlaps anywhere: stable sort keeps the first advocacy record
	m := lib.FindMatch("advocacy", []string{"poverty"}, "Miss Universe")
	if m == nil || m.Record.ID != "adv-edu" {
		t.Fatalf("expected adv-edu on tie, got %+v", m)
	}
}

func TestFindMatchTypeOnly(t *testing.T) {
	lib := writeCatalog(t, testRecords)

	m := lib.FindMatch("personal", nil, "Miss Universe")
	if m == nil || m.Record.ID != "personal" {
		t.Fatalf("expected personal record, got %+v", m)
	}
	if m.Rank != "type" {
		t.Errorf("rank = %s, want type", m.Rank)
	}
}

func TestFindMatchFallsBackToMostRecent(t *testing.T) {
	lib := writeCatalog(t, testRecords)

	m := lib.FindMatch("fun_creative", nil, "Miss Universe")
	if m == nil {
		t.Fatal("expected a fallback match")
	}
	if m.Record.ID != "adv-env" {
		t.Errorf("matched %s, want adv-env (most recent, 2019)", m.Record.ID)
	}
	if m.Rank != "recent" {
		t.Errorf("rank = %s, want recent", m.Rank)
	}
}

func TestFindMatchPageantFilter(t *testing.T) {
	lib := writeCatalog(t, testRecords)

	m := lib.FindMatch("leadership", nil, "Miss World")
	if m == nil || m.Record.ID != "mw-lead" {
		t.Fatalf("expected mw-lead, got %+v", m)
	}

	// Unknown pageant falls back to the full set instead of an empty pool
	m = lib.FindMatch("personal", nil, "Miss Earth")
	if m == nil || m.Record.ID != "personal" {
		t.Fatalf("expected personal via full-set fallback, got %+v", m)
	}
}

func TestFindMatchMissingCatalog(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "nope.json"))
	if m := lib.FindMatch("advocacy", nil, "Miss Universe"); m != nil {
		t.Errorf("expected nil for missing catalog, got %+v", m)
	}
}

func TestFindMatchCorruptCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	lib := NewLibrary(path)
	if m := lib.FindMatch("advocacy", nil, "Miss Universe"); m != nil {
		t.Errorf("expected nil for corrupt catalog, got %+v", m)
	}
}

func TestFormatReferenceNeverIncludesAnswerText(t *testing.T) {
	rec := &Record{
		ID:              "x",
		Pageant:         "Miss Universe",
		QuestionType:    "advocacy",
		Year:            2015,
		WinnerName:      "A. Winner",
		StructuralNotes: "cause first, one action, forward close",
		AnswerText:      "THE-FULL-WINNING-ANSWER",
	}

	text := FormatReference(rec)

	if strings.Contains(text, "THE-FULL-WINNING-ANSWER") {
		t.Fatal("answer text leaked into the prompt reference")
	}
	if !strings.Contains(text, "A. Winner, Miss Universe 2015") {
		t.Errorf("source line missing:\n%s", text)
	}
	if !strings.Contains(text, "cause first, one action, forward close") {
		t.Errorf("structural notes missing:\n%s", text)
	}
	if !strings.Contains(text, "do NOT copy wording") {
		t.Errorf("copy warning missing:\n%s", text)
	}
}

func TestFormatReferenceNil(t *testing.T) {
	if got := FormatReference(nil); got != "" {
		t.Errorf("FormatReference(nil) = %q, want empty", got)
	}
}
