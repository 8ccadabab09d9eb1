package service

import (
	"context"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type equipmentService struct {
	repo     repository.EquipmentRepository
	validate *validator.Validate
}

func NewEquipmentService(repo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, accountID int32, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &domain.ValidationError{Field: "equipment", Reason: err.Error()}
	}
	if !req.PurchaseStatus.Valid() {
		return nil, &domain.ValidationError{Field: "purchase_status", Reason: "must be PAID or UNPAID"}
	}

	eq := &domain.Equipment{
		AccountID:       accountID,
		Name:            req.Name,
		Category:        req.Category,
		SerialNumber:    req.SerialNumber,
		AcquisitionDate: req.AcquisitionDate,
		PurchaseStatus:  req.PurchaseStatus,
	}
	if err := s.repo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, accountID int32, equipmentID string) (*domain.Equipment, error) {
	return s.repo.GetByID(ctx, accountID, equipmentID)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, accountID int32, equipmentID string, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	if req.Status != nil {
		// Only the maintenance toggle is an operator edit; RENTED transitions
		// belong to the rental core. The repository enforces the toggle
		// against the current row, not a snapshot.
		if *req.Status != domain.EquipmentStatusAvailable && *req.Status != domain.EquipmentStatusMaintenance {
			return nil, &domain.ValidationError{Field: "status", Reason: "operator edits may only switch between AVAILABLE and MAINTENANCE"}
		}
		if err := s.repo.SetStatus(ctx, accountID, equipmentID, *req.Status); err != nil {
			return nil, err
		}
	}

	eq, err := s.repo.GetByID(ctx, accountID, equipmentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		eq.Name = *req.Name
	}
	if req.Category != nil {
		eq.Category = *req.Category
	}
	if req.SerialNumber != nil {
		eq.SerialNumber = *req.SerialNumber
	}
	if req.AcquisitionDate != nil {
		eq.AcquisitionDate = *req.AcquisitionDate
	}
	if req.PurchaseStatus != nil {
		if !req.PurchaseStatus.Valid() {
			return nil, &domain.ValidationError{Field: "purchase_status", Reason: "must be PAID or UNPAID"}
		}
		eq.PurchaseStatus = *req.PurchaseStatus
	}
	if err := s.repo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, accountID int32, equipmentID string) error {
	return s.repo.Delete(ctx, accountID, equipmentID)
}

func (s *equipmentService) ListEquipment(ctx context.Context, accountID int32) ([]domain.Equipment, error) {
	return s.repo.ListByAccount(ctx, accountID)
}
