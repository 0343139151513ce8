package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type petRepository struct {
	BaseRepository
}

func NewPetRepository(db *sqlx.DB) repository.PetRepository {
	return &petRepository{NewBaseRepository(db)}
}

func (r *petRepository) Create(ctx context.Context, pet *model.ClientPet) error {
	query := `
		INSERT INTO client_pets (name, breed, image, age, sex, weight, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		pet.Name, pet.Breed, pet.Image, pet.Age, pet.Sex, pet.Weight, pet.UserID,
	).Scan(&pet.ID)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", translateErr(err))
	}
	return nil
}

func (r *petRepository) GetByID(ctx context.Context, id int64) (*model.ClientPet, error) {
	var pet model.ClientPet
	query := `
		SELECT id, name, breed, image, age, sex, weight, user_id
		FROM client_pets
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &pet, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &pet, nil
}

func (r *petRepository) ListByOwner(ctx context.Context, userID int64) ([]*model.ClientPet, error) {
	var pets []*model.ClientPet
	query := `
		SELECT id, name, breed, image, age, sex, weight, user_id
		FROM client_pets
		WHERE user_id = $1
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &pets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

func (r *petRepository) Update(ctx context.Context, pet *model.ClientPet) error {
	query := `
		UPDATE client_pets
		SET name = $1, breed = $2, image = $3, age = $4, sex = $5, weight = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		pet.Name, pet.Breed, pet.Image, pet.Age, pet.Sex, pet.Weight, pet.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", translateErr(err))
	}
	return checkAffected(result)
}

func (r *petRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM client_pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", translateErr(err))
	}
	return checkAffected(result)
}
