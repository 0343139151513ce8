// Package medcard manages doctor-authored medical history entries. Access
// is gated by the doctor role only; any doctor may work with any pet's card.
package medcard

import (
	"context"
	"errors"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
	"github.com/vetdesk/vetclinic-api/pkg/validation"
)

type MedcardServicer interface {
	Create(ctx context.Context, req *model.CreateMedicineCardRequest) (*model.MedicineCard, error)
	Get(ctx context.Context, id int64) (*model.MedicineCard, error)
	List(ctx context.Context) ([]*model.MedicineCard, error)
	ListByPet(ctx context.Context, petID int64) ([]*model.MedicineCard, error)
	Update(ctx context.Context, id int64, req *model.UpdateMedicineCardRequest) (*model.MedicineCard, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	cards repository.MedicineCardRepository
	pets  repository.PetRepository
}

func NewService(cards repository.MedicineCardRepository, pets repository.PetRepository) *Service {
	return &Service{cards: cards, pets: pets}
}

func (s *Service) Create(ctx context.Context, req *model.CreateMedicineCardRequest) (*model.MedicineCard, error) {
	if validation.IsBlank(req.Info) {
		return nil, apperror.Validation("Medicine info is required")
	}
	if validation.IsBlank(req.Description) {
		return nil, apperror.Validation("Medicine description is required")
	}
	if !validation.IsDate(req.DateVisit) {
		return nil, apperror.Validation("Incorrect visit date, expected YYYY-MM-DD")
	}
	if _, err := s.pets.GetByID(ctx, req.ClientPetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Pet with id %d not found", req.ClientPetID)
		}
		return nil, err
	}

	dateVisit, _ := model.ParseDate(req.DateVisit)
	card := &model.MedicineCard{
		Info:        req.Info,
		Description: req.Description,
		DateVisit:   dateVisit,
		ClientPetID: req.ClientPetID,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.MedicineCard, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Medicine card with id %d not found", id)
		}
		return nil, err
	}
	return card, nil
}

func (s *Service) List(ctx context.Context) ([]*model.MedicineCard, error) {
	return s.cards.List(ctx)
}

// ListByPet returns the pet's history; the pet must exist even when it has
// no entries yet.
func (s *Service) ListByPet(ctx context.Context, petID int64) ([]*model.MedicineCard, error) {
	if _, err := s.pets.GetByID(ctx, petID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Pet with id %d not found", petID)
		}
		return nil, err
	}
	return s.cards.ListByPet(ctx, petID)
}

// Update applies a partial update with a no-op short-circuit when nothing
// differs from the stored entry.
func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateMedicineCardRequest) (*model.MedicineCard, error) {
	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Info == nil && req.Description == nil && req.DateVisit == nil && req.ClientPetID == nil {
		return card, nil
	}

	if req.Info != nil {
		if validation.IsBlank(*req.Info) {
			return nil, apperror.Validation("Medicine info is required")
		}
		card.Info = *req.Info
	}
	if req.Description != nil {
		if validation.IsBlank(*req.Description) {
			return nil, apperror.Validation("Medicine description is required")
		}
		card.Description = *req.Description
	}
	if req.DateVisit != nil {
		if !validation.IsDate(*req.DateVisit) {
			return nil, apperror.Validation("Incorrect visit date, expected YYYY-MM-DD")
		}
		card.DateVisit, _ = model.ParseDate(*req.DateVisit)
	}
	if req.ClientPetID != nil {
		if _, err := s.pets.GetByID(ctx, *req.ClientPetID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperror.NotFound("Pet with id %d not found", *req.ClientPetID)
			}
			return nil, err
		}
		card.ClientPetID = *req.ClientPetID
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Medicine card with id %d not found", id)
		}
		return err
	}
	return nil
}
