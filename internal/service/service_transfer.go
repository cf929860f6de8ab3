package service

import (
	"context"
	"fmt"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/models"
)

// transferService produces and consumes full-registry snapshots for the
// export and import endpoints. Data moves as plain JSON; no format
// transformation happens here.
type transferService struct {
	participants ParticipantService
	programs     ProgramService
	staff        StaffService
	logger       *logger.Logger
}

func NewTransferService(participants ParticipantService, programs ProgramService, staff StaffService, logger *logger.Logger) TransferService {
	return &transferService{
		participants: participants,
		programs:     programs,
		staff:        staff,
		logger:       logger,
	}
}

// Export dumps every registry-backed resource into a Snapshot.
func (s *transferService) Export(ctx context.Context) models.Snapshot {
	return models.Snapshot{
		Participants: s.participants.List(ctx),
		Programs:     s.programs.List(ctx),
		Staff:        s.staff.List(ctx),
	}
}

// Import merges the snapshot into the registries, upserting by record ID.
// The first invalid record aborts the import with a wrapped
// ErrInvalidDataProvided; records merged before the failure remain.
func (s *transferService) Import(ctx context.Context, snapshot models.Snapshot) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	var result models.ImportResult

	for _, p := range snapshot.Participants {
		if _, err := s.participants.Upsert(ctx, p); err != nil {
			return result, fmt.Errorf("importing participant %q: %w", p.ID, err)
		}
		result.Participants++
	}

	for _, p := range snapshot.Programs {
		if _, err := s.programs.Upsert(ctx, p); err != nil {
			return result, fmt.Errorf("importing program %q: %w", p.ID, err)
		}
		result.Programs++
	}

	for _, m := range snapshot.Staff {
		if _, err := s.staff.Upsert(ctx, m); err != nil {
			return result, fmt.Errorf("importing staff member %q: %w", m.ID, err)
		}
		result.Staff++
	}

	log.Info().
		Int("participants", result.Participants).
		Int("programs", result.Programs).
		Int("staff", result.Staff).
		Msg("snapshot imported")

	return result, nil
}
