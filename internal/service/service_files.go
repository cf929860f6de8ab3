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

// fileService keeps uploaded files in memory: metadata plus raw bytes keyed
// by file ID. The 10 MiB request body cap is enforced upstream by the body
// limit middleware, so data arriving here is already bounded.
type fileService struct {
	logger *logger.Logger

	mu    sync.RWMutex
	files map[string]storedFile
}

type storedFile struct {
	meta models.UploadedFile
	data []byte
}

func NewFileService(logger *logger.Logger) FileService {
	return &fileService{
		logger: logger,
		files:  make(map[string]storedFile),
	}
}

// Save records an uploaded file and returns its descriptor.
// Returns ErrInvalidDataProvided when the filename is empty or no bytes were
// received.
func (s *fileService) Save(ctx context.Context, filename, contentType string, data []byte) (models.UploadedFile, error) {
	log := logger.FromContext(ctx)

	if filename == "" || len(data) == 0 {
		return models.UploadedFile{}, ErrInvalidDataProvided
	}

	meta := models.UploadedFile{
		ID:          utils.NewID(),
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		UploadedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.files[meta.ID] = storedFile{meta: meta, data: data}
	s.mu.Unlock()

	log.Debug().Str("file_id", meta.ID).Int64("size", meta.Size).Msg("file stored")

	return meta, nil
}

// List returns descriptors for all stored files in upload order (IDs are
// time-ordered UUIDs, so sorting by ID preserves upload order).
func (s *fileService) List(ctx context.Context) []models.UploadedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UploadedFile, 0, len(s.files))
	for _, f := range s.files {
		out = append(out, f.meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a stored file's descriptor and contents.
func (s *fileService) Get(ctx context.Context, id string) (models.UploadedFile, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[id]
	if !ok {
		return models.UploadedFile{}, nil, ErrFileNotFound
	}
	return f.meta, f.data, nil
}
