package importer

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"section;subject;verb;object",
		"ruoka;koira;syö;luun",
		"",
		"ruoka;kissa;syö;kalan",
		"broken-row",
		"ruoka;;syö;kalan",
		"juomat;mies;juo;kahvia",
	}, "\n")

	rows, skipped, malformed, err := Parse(strings.NewReader(input), ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}
	if malformed != 2 {
		t.Errorf("malformed: got %d, want 2 (short row, empty cell)", malformed)
	}
	if skipped != 0 {
		t.Errorf("skipped: got %d, want 0 (blank lines are dropped by the reader)", skipped)
	}

	want := Row{Section: "ruoka", Subject: "koira", Verb: "syö", Object: "luun"}
	if rows[0] != want {
		t.Errorf("first row: got %+v, want %+v", rows[0], want)
	}
	if rows[2].Section != "juomat" {
		t.Errorf("last row section: got %q", rows[2].Section)
	}
}

func TestParse_ExtraColumnsRejected(t *testing.T) {
	input := "section;subject;verb;object\n" +
		"ruoka;koira;syö;luun;extra\n" +
		"ruoka;kissa;syö;kalan\n"

	rows, _, malformed, err := Parse(strings.NewReader(input), ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
	if malformed != 1 {
		t.Errorf("malformed: got %d, want 1 (five-column row rejected)", malformed)
	}
}

func TestParse_DelimiterOnlyLineSkipped(t *testing.T) {
	input := "section;subject;verb;object\n" +
		";;;\n" +
		"ruoka;koira;syö;luun\n"

	rows, skipped, malformed, err := Parse(strings.NewReader(input), ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || skipped != 1 || malformed != 0 {
		t.Errorf("got rows=%d skipped=%d malformed=%d, want 1/1/0",
			len(rows), skipped, malformed)
	}
}

func TestParse_TrimsCells(t *testing.T) {
	input := "section;subject;verb;object\n ruoka ; koira ; syö ; luun \n"

	rows, _, _, err := Parse(strings.NewReader(input), ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
	if rows[0].Subject != "koira" || rows[0].Object != "luun" {
		t.Errorf("cells not trimmed: %+v", rows[0])
	}
}

func TestParse_CommaDelimiter(t *testing.T) {
	input := "section,subject,verb,object\nruoka,koira,syö,luun\n"

	rows, _, _, err := Parse(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
}

func TestParse_EmptyFile(t *testing.T) {
	rows, skipped, malformed, err := Parse(strings.NewReader(""), ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 || skipped != 0 || malformed != 0 {
		t.Errorf("got %d rows, %d skipped, %d malformed, want 0/0/0",
			len(rows), skipped, malformed)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	rows, _, _, err := Parse(strings.NewReader("section;subject;verb;object\n"), ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows: got %d, want 0", len(rows))
	}
}
