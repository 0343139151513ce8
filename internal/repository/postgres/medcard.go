package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type medicineCardRepository struct {
	BaseRepository
}

func NewMedicineCardRepository(db *sqlx.DB) repository.MedicineCardRepository {
	return &medicineCardRepository{NewBaseRepository(db)}
}

func (r *medicineCardRepository) Create(ctx context.Context, card *model.MedicineCard) error {
	query := `
		INSERT INTO medicine_cards (info, description, date_visit, client_pet_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		card.Info, card.Description, card.DateVisit, card.ClientPetID,
	).Scan(&card.ID)
	if err != nil {
		return fmt.Errorf("failed to create medicine card: %w", translateErr(err))
	}
	return nil
}

func (r *medicineCardRepository) GetByID(ctx context.Context, id int64) (*model.MedicineCard, error) {
	var card model.MedicineCard
	query := `
		SELECT id, info, description, date_visit, client_pet_id
		FROM medicine_cards
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &card, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &card, nil
}

func (r *medicineCardRepository) List(ctx context.Context) ([]*model.MedicineCard, error) {
	var cards []*model.MedicineCard
	query := `
		SELECT id, info, description, date_visit, client_pet_id
		FROM medicine_cards
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &cards, query); err != nil {
		return nil, fmt.Errorf("failed to list medicine cards: %w", err)
	}
	return cards, nil
}

func (r *medicineCardRepository) ListByPet(ctx context.Context, petID int64) ([]*model.MedicineCard, error) {
	var cards []*model.MedicineCard
	query := `
		SELECT id, info, description, date_visit, client_pet_id
		FROM medicine_cards
		WHERE client_pet_id = $1
		ORDER BY date_visit
	`
	if err := r.db.SelectContext(ctx, &cards, query, petID); err != nil {
		return nil, fmt.Errorf("failed to list medicine cards: %w", err)
	}
	return cards, nil
}

func (r *medicineCardRepository) Update(ctx context.Context, card *model.MedicineCard) error {
	query := `
		UPDATE medicine_cards
		SET info = $1, description = $2, date_visit = $3, client_pet_id = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		card.Info, card.Description, card.DateVisit, card.ClientPetID, card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medicine card: %w", translateErr(err))
	}
	return checkAffected(result)
}

func (r *medicineCardRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM medicine_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete medicine card: %w", translateErr(err))
	}
	return checkAffected(result)
}
