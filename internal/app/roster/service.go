package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/logging"
	"github.com/elibenporat/mlbbio/internal/providers"
)

// Service turns lists of player IDs into flattened players.
type Service struct {
	provider providers.PeopleProvider
	logger   *slog.Logger
}

// NewService constructs a Service backed by provider.
func NewService(provider providers.PeopleProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Batch fetches each ID with its own request, strictly in order, and stops
// at the first failure. The returned error names the failing ID.
func (s *Service) Batch(ctx context.Context, ids []uint32) ([]people.Player, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	if len(ids) == 0 {
		return nil, providers.ErrNoIDs
	}

	out := make([]people.Player, 0, len(ids))
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		person, err := s.provider.FetchPerson(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("batch item %d (player %d): %w", i, id, err)
		}
		out = append(out, people.NewPlayer(person))
		logging.Debug(s.logger, "batch item fetched",
			logging.PlayerID(id),
			slog.Int(logging.FieldCount, i+1),
		)
	}

	logging.Info(s.logger, "batch complete", slog.Int(logging.FieldCount, len(out)))
	return out, nil
}

// LookupResult pairs the decoded envelope with its flattened players.
type LookupResult struct {
	Envelope people.Envelope
	Players  []people.Player
}

// Lookup fetches all ids in a single envelope request.
func (s *Service) Lookup(ctx context.Context, ids []uint32) (LookupResult, error) {
	if s.provider == nil {
		return LookupResult{}, providers.ErrProviderUnavailable
	}
	items, err := s.provider.FetchPeople(ctx, ids)
	if err != nil {
		return LookupResult{}, err
	}
	logging.Debug(s.logger, "lookup complete",
		slog.Int("requested", len(ids)),
		slog.Int(logging.FieldCount, len(items)),
	)
	return LookupResult{
		Envelope: people.Envelope{People: items},
		Players:  people.NewPlayers(items),
	}, nil
}
