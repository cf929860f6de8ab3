package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

// registry is the shared in-memory record store behind the participant,
// program, and staff services. Access is serialized with a read-write mutex;
// List returns records sorted by ID so output is stable across calls.
type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

func (r *registry[T]) list() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[id])
	}
	return out
}

func (r *registry[T]) get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	return item, ok
}

func (r *registry[T]) put(id string, item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id] = item
}

func (r *registry[T]) delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	return true
}

// ── participants ──────────────────────────────────────────────────────────────

type participantService struct {
	records *registry[models.Participant]
	logger  *logger.Logger
}

func NewParticipantService(logger *logger.Logger) ParticipantService {
	return &participantService{records: newRegistry[models.Participant](), logger: logger}
}

func (s *participantService) List(ctx context.Context) []models.Participant {
	return s.records.list()
}

func (s *participantService) Get(ctx context.Context, id string) (models.Participant, error) {
	p, ok := s.records.get(id)
	if !ok {
		return models.Participant{}, ErrNotFound
	}
	return p, nil
}

func (s *participantService) Create(ctx context.Context, p models.Participant) (models.Participant, error) {
	if p.FirstName == "" || p.LastName == "" {
		return models.Participant{}, ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	p.ID = utils.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.records.put(p.ID, p)

	logger.FromContext(ctx).Debug().Str("id", p.ID).Msg("participant created")
	return p, nil
}

func (s *participantService) Update(ctx context.Context, p models.Participant) (models.Participant, error) {
	existing, ok := s.records.get(p.ID)
	if !ok {
		return models.Participant{}, ErrNotFound
	}
	if p.FirstName == "" || p.LastName == "" {
		return models.Participant{}, ErrInvalidDataProvided
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	s.records.put(p.ID, p)
	return p, nil
}

// Upsert stores p under its own ID, assigning one if empty. CreatedAt is
// preserved for existing records. Used by snapshot import.
func (s *participantService) Upsert(ctx context.Context, p models.Participant) (models.Participant, error) {
	if p.FirstName == "" || p.LastName == "" {
		return models.Participant{}, ErrInvalidDataProvided
	}

	if p.ID == "" {
		p.ID = utils.NewID()
	}
	if existing, ok := s.records.get(p.ID); ok {
		p.CreatedAt = existing.CreatedAt
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = time.Now().UTC()
	s.records.put(p.ID, p)
	return p, nil
}

func (s *participantService) Delete(ctx context.Context, id string) error {
	if !s.records.delete(id) {
		return ErrNotFound
	}
	return nil
}

// ── programs ──────────────────────────────────────────────────────────────────

type programService struct {
	records *registry[models.Program]
	logger  *logger.Logger
}

func NewProgramService(logger *logger.Logger) ProgramService {
	return &programService{records: newRegistry[models.Program](), logger: logger}
}

func (s *programService) List(ctx context.Context) []models.Program {
	return s.records.list()
}

func (s *programService) Get(ctx context.Context, id string) (models.Program, error) {
	p, ok := s.records.get(id)
	if !ok {
		return models.Program{}, ErrNotFound
	}
	return p, nil
}

func (s *programService) Create(ctx context.Context, p models.Program) (models.Program, error) {
	if p.Name == "" {
		return models.Program{}, ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	p.ID = utils.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.records.put(p.ID, p)

	logger.FromContext(ctx).Debug().Str("id", p.ID).Msg("program created")
	return p, nil
}

func (s *programService) Update(ctx context.Context, p models.Program) (models.Program, error) {
	existing, ok := s.records.get(p.ID)
	if !ok {
		return models.Program{}, ErrNotFound
	}
	if p.Name == "" {
		return models.Program{}, ErrInvalidDataProvided
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	s.records.put(p.ID, p)
	return p, nil
}

// Upsert stores p under its own ID, assigning one if empty. CreatedAt is
// preserved for existing records. Used by snapshot import.
func (s *programService) Upsert(ctx context.Context, p models.Program) (models.Program, error) {
	if p.Name == "" {
		return models.Program{}, ErrInvalidDataProvided
	}

	if p.ID == "" {
		p.ID = utils.NewID()
	}
	if existing, ok := s.records.get(p.ID); ok {
		p.CreatedAt = existing.CreatedAt
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = time.Now().UTC()
	s.records.put(p.ID, p)
	return p, nil
}

func (s *programService) Delete(ctx context.Context, id string) error {
	if !s.records.delete(id) {
		return ErrNotFound
	}
	return nil
}

// ── staff ─────────────────────────────────────────────────────────────────────

type staffService struct {
	records *registry[models.StaffMember]
	logger  *logger.Logger
}

func NewStaffService(logger *logger.Logger) StaffService {
	return &staffService{records: newRegistry[models.StaffMember](), logger: logger}
}

func (s *staffService) List(ctx context.Context) []models.StaffMember {
	return s.records.list()
}

func (s *staffService) Get(ctx context.Context, id string) (models.StaffMember, error) {
	m, ok := s.records.get(id)
	if !ok {
		return models.StaffMember{}, ErrNotFound
	}
	return m, nil
}

func (s *staffService) Create(ctx context.Context, m models.StaffMember) (models.StaffMember, error) {
	if m.FirstName == "" || m.LastName == "" {
		return models.StaffMember{}, ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	m.ID = utils.NewID()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.records.put(m.ID, m)

	logger.FromContext(ctx).Debug().Str("id", m.ID).Msg("staff member created")
	return m, nil
}

func (s *staffService) Update(ctx context.Context, m models.StaffMember) (models.StaffMember, error) {
	existing, ok := s.records.get(m.ID)
	if !ok {
		return models.StaffMember{}, ErrNotFound
	}
	if m.FirstName == "" || m.LastName == "" {
		return models.StaffMember{}, ErrInvalidDataProvided
	}

	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	s.records.put(m.ID, m)
	return m, nil
}

// Upsert stores m under its own ID, assigning one if empty. CreatedAt is
// preserved for existing records. Used by snapshot import.
func (s *staffService) Upsert(ctx context.Context, m models.StaffMember) (models.StaffMember, error) {
	if m.FirstName == "" || m.LastName == "" {
		return models.StaffMember{}, ErrInvalidDataProvided
	}

	if m.ID == "" {
		m.ID = utils.NewID()
	}
	if existing, ok := s.records.get(m.ID); ok {
		m.CreatedAt = existing.CreatedAt
	} else if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	m.UpdatedAt = time.Now().UTC()
	s.records.put(m.ID, m)
	return m, nil
}

func (s *staffService) Delete(ctx context.Context, id string) error {
	if !s.records.delete(id) {
		return ErrNotFound
	}
	return nil
}
