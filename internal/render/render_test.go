package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/elibenporat/mlbbio/internal/domain/people"
)

func strPtr(s string) *string { return &s }

func samplePlayer() people.Player {
	w := uint16(235)
	return people.Player{
		ID:                   545361,
		FullName:             "Mike Trout",
		Height:               strPtr(`6' 2"`),
		Weight:               &w,
		BirthDate:            strPtr("1991-08-07"),
		MLBDebutDate:         strPtr("2011-07-08"),
		BirthCity:            strPtr("Vineland"),
		BirthStateProvince:   strPtr("NJ"),
		BirthCountry:         strPtr("USA"),
		BatSideCode:          people.SideCodeRight,
		BatSideDescription:   people.SideRight,
		PitchHandCode:        people.SideCodeRight,
		PitchHandDescription: people.SideRight,
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		raw      string
		expected Format
		wantErr  bool
	}{
		{"", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" debug ", FormatDebug, false},
		{"table", FormatTable, false},
		{"yaml", "", true},
	}

	for _, tc := range cases {
		got, err := ParseFormat(tc.raw, FormatTable)
		if (err != nil) != tc.wantErr {
			t.Fatalf("unexpected error state for %q: %v", tc.raw, err)
		}
		if got != tc.expected {
			t.Fatalf("expected %s for %q, got %s", tc.expected, tc.raw, got)
		}
	}
}

func TestTableRendersPlayerRow(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 8, 6, 0, 0, 0, 0, time.UTC)

	Table(&buf, []people.Player{samplePlayer(), {ID: 1, FullName: "Nobody"}}, now)

	out := buf.String()
	for _, want := range []string{"Mike Trout", "545361", "Vineland, NJ, USA", "2011-07-08", "USA", "Nobody", "Other", "Total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q, got:\n%s", want, out)
		}
	}
	if !strings.Contains(out, " 32 ") {
		t.Fatalf("expected age 32 the day before the birthday, got:\n%s", out)
	}
}

func TestJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, samplePlayer()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\n  \"fullName\": \"Mike Trout\"") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("unexpected json output %s", out)
	}
	if !strings.Contains(out, `"batSideCode": "R"`) {
		t.Fatalf("expected flattened side fields, got %s", out)
	}
}

func TestDebugDumpsDereferencedValues(t *testing.T) {
	var buf bytes.Buffer
	if err := Debug(&buf, samplePlayer()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "people.Player") || !strings.Contains(out, `"Vineland"`) {
		t.Fatalf("expected typed dump with values, got %s", out)
	}
	if strings.Contains(out, "0xc") {
		t.Fatalf("expected pointer addresses to be hidden, got %s", out)
	}
}

func TestLabeledWritesLabelAndText(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	if err := Labeled(&buf, "Mike Trout's Bio", `{"people":[]}`); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := buf.String(); got != "Mike Trout's Bio: {\"people\":[]}\n" {
		t.Fatalf("unexpected labeled output %q", got)
	}
}
