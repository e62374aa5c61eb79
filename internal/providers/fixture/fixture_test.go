package fixture

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/providers"
	"github.com/elibenporat/mlbbio/internal/providers/statsapi"
)

var _ providers.DataProvider = (*Provider)(nil)

func TestFetchPeopleReturnsRequestedOrder(t *testing.T) {
	p := New()

	got, err := p.FetchPeople(context.Background(), []uint32{596019, 545361})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 || got[0].FullName != "Francisco Lindor" || got[1].FullName != "Mike Trout" {
		t.Fatalf("unexpected people %+v", got)
	}
}

func TestSampleCoversCountryAndSideVariety(t *testing.T) {
	groups := map[people.Country]bool{}
	sides := map[people.SideCode]bool{}
	for _, player := range people.NewPlayers(Sample()) {
		groups[player.CountryGroup()] = true
		sides[player.BatSideCode] = true
	}
	if len(groups) != 3 {
		t.Fatalf("expected USA, Canada and Other, got %v", groups)
	}
	if len(sides) != 3 {
		t.Fatalf("expected R, L and S batters, got %v", sides)
	}
	if len(IDs()) != len(Sample()) {
		t.Fatalf("expected IDs to match sample")
	}
}

func TestUnknownIDIsNotFound(t *testing.T) {
	p := New()

	if _, err := p.FetchPerson(context.Background(), 1); !errors.Is(err, providers.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
	if _, err := p.FetchPeople(context.Background(), []uint32{545361, 1}); !errors.Is(err, providers.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
	if _, err := p.FetchBio(context.Background(), 1); !errors.Is(err, providers.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
	if _, err := p.FetchPeople(context.Background(), nil); !errors.Is(err, providers.ErrNoIDs) {
		t.Fatalf("expected ErrNoIDs, got %v", err)
	}
}

func TestFetchBioDecodesUnderStrictSchema(t *testing.T) {
	p := New()

	for _, id := range IDs() {
		if id == ProspectID {
			continue
		}
		bio, err := p.FetchBio(context.Background(), id)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		env, err := statsapi.Decode([]byte(bio), people.SchemaStrict)
		if err != nil {
			t.Fatalf("expected fixture bio %d to decode, got %v", id, err)
		}
		if len(env.People) != 1 || env.People[0].ID != id {
			t.Fatalf("unexpected envelope %+v", env)
		}
	}
}

func TestFetchEnforcesConfiguredSchema(t *testing.T) {
	strict := New()
	if strict.Schema() != people.SchemaStrict {
		t.Fatalf("expected strict by default, got %s", strict.Schema())
	}
	_, err := strict.FetchPerson(context.Background(), ProspectID)
	var decodeErr *statsapi.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected decode error for prospect under strict, got %v", err)
	}
	if !strings.Contains(err.Error(), "people[0].mlbDebutDate") {
		t.Fatalf("expected missing debut date, got %v", err)
	}
	if _, err := strict.FetchPeople(context.Background(), []uint32{545361, ProspectID}); err == nil || !strings.Contains(err.Error(), "people[1].mlbDebutDate") {
		t.Fatalf("expected second record to fail strict, got %v", err)
	}

	loose := New(WithSchema(people.SchemaLoose))
	got, err := loose.FetchPerson(context.Background(), ProspectID)
	if err != nil {
		t.Fatalf("expected loose schema to accept prospect, got %v", err)
	}
	if got.MLBDebutDate != nil || got.FullName != "Sam Prospect" || got.BatSide.Code != people.SideCodeLeft {
		t.Fatalf("unexpected prospect %+v", got)
	}

	bio, err := strict.FetchBio(context.Background(), ProspectID)
	if err != nil {
		t.Fatalf("expected raw bio regardless of schema, got %v", err)
	}
	if _, err := statsapi.Decode([]byte(bio), people.SchemaLoose); err != nil {
		t.Fatalf("expected bio to decode under loose, got %v", err)
	}
}
