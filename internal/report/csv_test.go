package report

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestCSV(t *testing.T) {
	out := CSV(marchTransactions())
	lines := strings.Split(out, "\n")

	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != `"Date","Type","Category","Amount","Note"` {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != `"2024-03-01","income","","5000",""` {
		t.Errorf("unexpected income row: %s", lines[1])
	}
	if lines[2] != `"2024-03-02","expense","Rent","1200",""` {
		t.Errorf("unexpected rent row: %s", lines[2])
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("export must not end with a trailing newline")
	}
}

func TestCSV_QuoteEscaping(t *testing.T) {
	txs := []Transaction{{
		Kind:     KindExpense,
		Amount:   42,
		Category: "Books",
		Date:     TextDate("2024-03-10"),
		Note:     `He said "hi", then left`,
	}}

	out := CSV(txs)
	want := `"He said ""hi"", then left"`
	if !strings.Contains(out, want) {
		t.Errorf("expected escaped note %s in output:\n%s", want, out)
	}
}

// Every export must parse back with a standard CSV reader, field for field.
func TestCSV_RoundTrip(t *testing.T) {
	note := "line one\nline two, with \"quotes\""
	txs := append(marchTransactions(), Transaction{
		ID:       "t4",
		Kind:     KindExpense,
		Amount:   "19.99",
		Category: `Dining, "fancy"`,
		Date:     TextDate("2024-03-20"),
		Note:     note,
	})

	records, err := csv.NewReader(strings.NewReader(CSV(txs))).ReadAll()
	if err != nil {
		t.Fatalf("standard reader rejected export: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	last := records[4]
	if last[2] != `Dining, "fancy"` {
		t.Errorf("category did not round-trip: %q", last[2])
	}
	if last[3] != "19.99" {
		t.Errorf("amount did not round-trip: %q", last[3])
	}
	if last[4] != note {
		t.Errorf("note did not round-trip: %q", last[4])
	}
}

func TestCSV_InvalidDateKeepsRow(t *testing.T) {
	txs := []Transaction{{Kind: KindExpense, Amount: 10, Category: "Misc", Date: TextDate("???")}}

	records, err := csv.NewReader(strings.NewReader(CSV(txs))).ReadAll()
	if err != nil {
		t.Fatalf("reader error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("row with invalid date must survive, got %d records", len(records))
	}
	if records[1][0] != "" {
		t.Errorf("expected empty Date field, got %q", records[1][0])
	}
}

func TestCSV_Empty(t *testing.T) {
	out := CSV(nil)
	if out != `"Date","Type","Category","Amount","Note"` {
		t.Errorf("empty export must be the header alone, got %q", out)
	}
}
