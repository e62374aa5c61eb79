package render

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/elibenporat/mlbbio/internal/domain/people"
)

// Table renders players one per row. Ages are computed at now.
func Table(w io.Writer, players []people.Player, now time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Name", "Bats", "Throws", "Height", "Weight", "Age", "Born", "Country", "Debut"})

	for _, p := range players {
		t.AppendRow(table.Row{
			p.ID,
			p.FullName,
			string(p.BatSideCode),
			string(p.PitchHandCode),
			deref(p.Height),
			weight(p.Weight),
			age(p, now),
			birthplace(p),
			string(p.CountryGroup()),
			deref(p.MLBDebutDate),
		})
	}

	t.AppendFooter(table.Row{"", "Total", len(players)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func weight(w *uint16) string {
	if w == nil {
		return ""
	}
	return strconv.Itoa(int(*w))
}

func age(p people.Player, now time.Time) string {
	years, ok := p.Age(now)
	if !ok {
		return ""
	}
	return strconv.Itoa(years)
}

func birthplace(p people.Player) string {
	parts := make([]string, 0, 3)
	for _, s := range []*string{p.BirthCity, p.BirthStateProvince, p.BirthCountry} {
		if s != nil && *s != "" {
			parts = append(parts, *s)
		}
	}
	return strings.Join(parts, ", ")
}
