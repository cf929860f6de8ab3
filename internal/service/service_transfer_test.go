package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/models"
)

func newTransferFixture() (TransferService, ParticipantService, ProgramService, StaffService) {
	participants := NewParticipantService(logger.Nop())
	programs := NewProgramService(logger.Nop())
	staff := NewStaffService(logger.Nop())
	return NewTransferService(participants, programs, staff, logger.Nop()), participants, programs, staff
}

func TestExport_EmptyRegistries(t *testing.T) {
	transfer, _, _, _ := newTransferFixture()

	snapshot := transfer.Export(context.Background())

	assert.Empty(t, snapshot.Participants)
	assert.Empty(t, snapshot.Programs)
	assert.Empty(t, snapshot.Staff)
}

func TestExportImport_RoundTrip(t *testing.T) {
	transfer, participants, programs, _ := newTransferFixture()
	ctx := context.Background()

	_, err := participants.Create(ctx, models.Participant{FirstName: "Jordan", LastName: "Lee"})
	require.NoError(t, err)
	_, err = programs.Create(ctx, models.Program{Name: "Mentorship"})
	require.NoError(t, err)

	snapshot := transfer.Export(ctx)
	require.Len(t, snapshot.Participants, 1)
	require.Len(t, snapshot.Programs, 1)

	// importing into a fresh instance reproduces the records with their IDs
	fresh, freshParticipants, _, _ := newTransferFixture()
	result, err := fresh.Import(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Participants)
	assert.Equal(t, 1, result.Programs)
	assert.Equal(t, 0, result.Staff)

	restored, err := freshParticipants.Get(ctx, snapshot.Participants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan", restored.FirstName)
}

func TestImport_Idempotent(t *testing.T) {
	transfer, participants, _, _ := newTransferFixture()
	ctx := context.Background()

	_, err := participants.Create(ctx, models.Participant{FirstName: "Jordan", LastName: "Lee"})
	require.NoError(t, err)

	snapshot := transfer.Export(ctx)

	// re-importing the same snapshot must not duplicate records
	_, err = transfer.Import(ctx, snapshot)
	require.NoError(t, err)
	_, err = transfer.Import(ctx, snapshot)
	require.NoError(t, err)

	assert.Len(t, participants.List(ctx), 1)
}

func TestImport_InvalidRecordAborts(t *testing.T) {
	transfer, _, _, _ := newTransferFixture()

	_, err := transfer.Import(context.Background(), models.Snapshot{
		Participants: []models.Participant{{FirstName: "NoLastName"}},
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
