package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/models"
)

func TestParticipantService_CRUD(t *testing.T) {
	svc := NewParticipantService(logger.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Participant{FirstName: "Jordan", LastName: "Lee"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	created.Email = "jordan@heartsmiles.org"
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "jordan@heartsmiles.org", updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParticipantService_Validation(t *testing.T) {
	svc := NewParticipantService(logger.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Participant{FirstName: "OnlyFirst"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Update(ctx, models.Participant{ID: "missing", FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}

func TestParticipantService_ListSorted(t *testing.T) {
	svc := NewParticipantService(logger.Nop())
	ctx := context.Background()

	for _, name := range []string{"Ada", "Grace", "Katherine"} {
		_, err := svc.Create(ctx, models.Participant{FirstName: name, LastName: "X"})
		require.NoError(t, err)
	}

	list := svc.List(ctx)
	require.Len(t, list, 3)
	// v7 UUIDs are time-ordered, so list order follows creation order
	assert.Equal(t, "Ada", list[0].FirstName)
	assert.Equal(t, "Katherine", list[2].FirstName)
}

func TestProgramService_CRUD(t *testing.T) {
	svc := NewProgramService(logger.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Program{Name: "Summer Coding", Active: true})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	_, err = svc.Create(ctx, models.Program{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestStaffService_Upsert(t *testing.T) {
	svc := NewStaffService(logger.Nop())
	ctx := context.Background()

	// upsert with explicit ID creates the record under that ID
	m, err := svc.Upsert(ctx, models.StaffMember{ID: "staff-1", FirstName: "Dana", LastName: "Kim"})
	require.NoError(t, err)
	assert.Equal(t, "staff-1", m.ID)

	// second upsert with the same ID replaces, preserving CreatedAt
	again, err := svc.Upsert(ctx, models.StaffMember{ID: "staff-1", FirstName: "Dana", LastName: "Kim", Title: "Lead"})
	require.NoError(t, err)
	assert.Equal(t, m.CreatedAt, again.CreatedAt)
	assert.Equal(t, "Lead", again.Title)

	list := svc.List(ctx)
	assert.Len(t, list, 1)
}
