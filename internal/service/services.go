package service

import (
	"github.com/heart-smiles/heart-smiles-api/internal/config"
	"github.com/heart-smiles/heart-smiles-api/internal/logger"
)

type Services struct {
	AuthService        AuthService
	ParticipantService ParticipantService
	ProgramService     ProgramService
	StaffService       StaffService
	FileService        FileService
	TransferService    TransferService
}

func NewServices(cfg config.App, logger *logger.Logger) *Services {
	participants := NewParticipantService(logger)
	programs := NewProgramService(logger)
	staff := NewStaffService(logger)

	return &Services{
		AuthService:        NewAuthService(cfg, logger),
		ParticipantService: participants,
		ProgramService:     programs,
		StaffService:       staff,
		FileService:        NewFileService(logger),
		TransferService:    NewTransferService(participants, programs, staff, logger),
	}
}
