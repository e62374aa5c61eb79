package people

import (
	"encoding/json"
	"testing"
)

func TestSideUnmarshalAcceptsKnownVariants(t *testing.T) {
	cases := map[string]Side{
		`{"code":"R","description":"Right"}`:  {Code: SideCodeRight, Description: SideRight},
		`{"code":"L","description":"Left"}`:   {Code: SideCodeLeft, Description: SideLeft},
		`{"code":"S","description":"Switch"}`: {Code: SideCodeSwitch, Description: SideSwitch},
		`{"code":"S","description":"Either"}`: {Code: SideCodeSwitch, Description: SideEither},
	}
	for input, want := range cases {
		var got Side
		if err := json.Unmarshal([]byte(input), &got); err != nil {
			t.Fatalf("unexpected error for %s: %v", input, err)
		}
		if got != want {
			t.Fatalf("expected %+v for %s, got %+v", want, input, got)
		}
	}
}

func TestSideUnmarshalRejectsUnknownVariants(t *testing.T) {
	inputs := []string{
		`{"code":"X","description":"Right"}`,
		`{"code":"R","description":"Ambidextrous"}`,
		`{"code":"r","description":"Right"}`,
		`{"code":1,"description":"Right"}`,
	}
	for _, input := range inputs {
		var got Side
		if err := json.Unmarshal([]byte(input), &got); err == nil {
			t.Fatalf("expected error for %s, got %+v", input, got)
		}
	}
}

func TestCountryOf(t *testing.T) {
	cases := map[string]Country{
		"USA":                CountryUSA,
		"usa":                CountryUSA,
		"United States":      CountryUSA,
		"Canada":             CountryCanada,
		" canada ":           CountryCanada,
		"Dominican Republic": CountryOther,
		"":                   CountryOther,
	}
	for input, want := range cases {
		if got := CountryOf(input); got != want {
			t.Fatalf("country %q expected %s, got %s", input, want, got)
		}
	}
}
