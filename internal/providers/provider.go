package providers

import (
	"context"

	"github.com/elibenporat/mlbbio/internal/domain/people"
)

// PeopleProvider fetches decoded people records.
// FetchPeople returns records in the order the upstream reports them.
type PeopleProvider interface {
	FetchPeople(ctx context.Context, ids []uint32) ([]people.Person, error)
	FetchPerson(ctx context.Context, id uint32) (people.Person, error)
}

// BioProvider fetches a person's biography as raw response text.
type BioProvider interface {
	FetchBio(ctx context.Context, id uint32) (string, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PeopleProvider
	BioProvider
}
