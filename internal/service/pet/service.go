// Package pet manages client-owned animals. Every read and write is scoped
// to the authenticated owner.
package pet

import (
	"context"
	"errors"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type PetServicer interface {
	Create(ctx context.Context, ownerID int64, req *model.CreatePetRequest, imageName string) (*model.ClientPet, error)
	Get(ctx context.Context, ownerID, petID int64) (*model.ClientPet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*model.ClientPet, error)
	Update(ctx context.Context, ownerID, petID int64, req *model.UpdatePetRequest, imageName string) (*model.ClientPet, error)
	Delete(ctx context.Context, ownerID, petID int64) error
}

type Service struct {
	pets repository.PetRepository
}

func NewService(pets repository.PetRepository) *Service {
	return &Service{pets: pets}
}

// Create stores a pet for the owner. imageName is the stored file name
// produced by the upload handler.
func (s *Service) Create(ctx context.Context, ownerID int64, req *model.CreatePetRequest, imageName string) (*model.ClientPet, error) {
	if imageName == "" {
		return nil, apperror.Validation("Pet image is required")
	}

	pet := &model.ClientPet{
		Name:   req.Name,
		Breed:  req.Breed,
		Image:  imageName,
		Age:    req.Age,
		Sex:    req.Sex,
		Weight: req.Weight,
		UserID: ownerID,
	}
	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Get returns the pet if it exists and belongs to the owner. A pet owned by
// someone else is reported as an ownership failure, not as missing.
func (s *Service) Get(ctx context.Context, ownerID, petID int64) (*model.ClientPet, error) {
	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Pet with id %d not found", petID)
		}
		return nil, err
	}
	if pet.UserID != ownerID {
		return nil, apperror.Ownership("Pet with id %d does not belong to you", petID)
	}
	return pet, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]*model.ClientPet, error) {
	return s.pets.ListByOwner(ctx, ownerID)
}

// Update replaces the pet's attributes. An empty imageName keeps the stored
// image.
func (s *Service) Update(ctx context.Context, ownerID, petID int64, req *model.UpdatePetRequest, imageName string) (*model.ClientPet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if imageName == "" && pet.Name == req.Name && pet.Breed == req.Breed &&
		pet.Age == req.Age && pet.Sex == req.Sex && pet.Weight == req.Weight {
		return pet, nil
	}

	pet.Name = req.Name
	pet.Breed = req.Breed
	pet.Age = req.Age
	pet.Sex = req.Sex
	pet.Weight = req.Weight
	if imageName != "" {
		pet.Image = imageName
	}

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, petID int64) error {
	if _, err := s.Get(ctx, ownerID, petID); err != nil {
		return err
	}
	return s.pets.Delete(ctx, petID)
}
