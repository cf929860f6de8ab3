package service

import (
	"context"

	"github.com/heart-smiles/heart-smiles-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ParticipantService interface {
	List(ctx context.Context) []models.Participant
	Get(ctx context.Context, id string) (models.Participant, error)
	Create(ctx context.Context, p models.Participant) (models.Participant, error)
	Update(ctx context.Context, p models.Participant) (models.Participant, error)
	Upsert(ctx context.Context, p models.Participant) (models.Participant, error)
	Delete(ctx context.Context, id string) error
}

type ProgramService interface {
	List(ctx context.Context) []models.Program
	Get(ctx context.Context, id string) (models.Program, error)
	Create(ctx context.Context, p models.Program) (models.Program, error)
	Update(ctx context.Context, p models.Program) (models.Program, error)
	Upsert(ctx context.Context, p models.Program) (models.Program, error)
	Delete(ctx context.Context, id string) error
}

type StaffService interface {
	List(ctx context.Context) []models.StaffMember
	Get(ctx context.Context, id string) (models.StaffMember, error)
	Create(ctx context.Context, s models.StaffMember) (models.StaffMember, error)
	Update(ctx context.Context, s models.StaffMember) (models.StaffMember, error)
	Upsert(ctx context.Context, s models.StaffMember) (models.StaffMember, error)
	Delete(ctx context.Context, id string) error
}

type FileService interface {
	Save(ctx context.Context, filename, contentType string, data []byte) (models.UploadedFile, error)
	List(ctx context.Context) []models.UploadedFile
	Get(ctx context.Context, id string) (models.UploadedFile, []byte, error)
}

type TransferService interface {
	Export(ctx context.Context) models.Snapshot
	Import(ctx context.Context, snapshot models.Snapshot) (models.ImportResult, error)
}
