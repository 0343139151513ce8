package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type requestRepository struct {
	BaseRepository
}

func NewRequestRepository(db *sqlx.DB) repository.RequestRepository {
	return &requestRepository{NewBaseRepository(db)}
}

func (r *requestRepository) CreateWithServices(ctx context.Context, request *model.ClientRequest, serviceIDs []int64) error {
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		requestQuery := `
			INSERT INTO client_requests (request_date, description, status_id, user_id, client_pet_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		if err := tx.QueryRowxContext(ctx, requestQuery,
			request.RequestDate, request.Description, request.StatusID,
			request.UserID, request.ClientPetID,
		).Scan(&request.ID); err != nil {
			return err
		}

		joinQuery := `INSERT INTO services_requests (client_request_id, service_id) VALUES ($1, $2)`
		for _, serviceID := range serviceIDs {
			if _, err := tx.ExecContext(ctx, joinQuery, request.ID, serviceID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create request: %w", translateErr(err))
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*model.ClientRequest, error) {
	var request model.ClientRequest
	query := `
		SELECT id, request_date, description, status_id, user_id, client_pet_id
		FROM client_requests
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &request, nil
}

func (r *requestRepository) GetDetail(ctx context.Context, id int64) (*model.RequestDetail, error) {
	request, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details, err := r.attachRelations(ctx, []*model.ClientRequest{request})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *requestRepository) ListDetailsByUser(ctx context.Context, userID int64) ([]*model.RequestDetail, error) {
	var requests []*model.ClientRequest
	query := `
		SELECT id, request_date, description, status_id, user_id, client_pet_id
		FROM client_requests
		WHERE user_id = $1
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &requests, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return r.attachRelations(ctx, requests)
}

func (r *requestRepository) ListDetails(ctx context.Context) ([]*model.RequestDetail, error) {
	var requests []*model.ClientRequest
	query := `
		SELECT id, request_date, description, status_id, user_id, client_pet_id
		FROM client_requests
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return r.attachRelations(ctx, requests)
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id, statusID int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE client_requests SET status_id = $1 WHERE id = $2`, statusID, id)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", translateErr(err))
	}
	return checkAffected(result)
}

type requestServiceRow struct {
	ClientRequestID int64 `db:"client_request_id"`
	model.Service
}

// attachRelations loads the linked services and the pet for each request in
// two batched queries instead of one round trip per request.
func (r *requestRepository) attachRelations(ctx context.Context, requests []*model.ClientRequest) ([]*model.RequestDetail, error) {
	details := make([]*model.RequestDetail, 0, len(requests))
	if len(requests) == 0 {
		return details, nil
	}

	requestIDs := make([]int64, 0, len(requests))
	petIDs := make([]int64, 0, len(requests))
	for _, request := range requests {
		requestIDs = append(requestIDs, request.ID)
		petIDs = append(petIDs, request.ClientPetID)
	}

	var serviceRows []requestServiceRow
	servicesQuery := `
		SELECT sr.client_request_id, s.id, s.name, s.price, s.description, s.category_id
		FROM services_requests sr
		JOIN services s ON s.id = sr.service_id
		WHERE sr.client_request_id = ANY($1)
		ORDER BY sr.id
	`
	if err := r.db.SelectContext(ctx, &serviceRows, servicesQuery, pq.Array(requestIDs)); err != nil {
		return nil, fmt.Errorf("failed to load request services: %w", err)
	}
	servicesByRequest := make(map[int64][]model.Service, len(requests))
	for _, row := range serviceRows {
		servicesByRequest[row.ClientRequestID] = append(servicesByRequest[row.ClientRequestID], row.Service)
	}

	var pets []*model.ClientPet
	petsQuery := `
		SELECT id, name, breed, image, age, sex, weight, user_id
		FROM client_pets
		WHERE id = ANY($1)
	`
	if err := r.db.SelectContext(ctx, &pets, petsQuery, pq.Array(petIDs)); err != nil {
		return nil, fmt.Errorf("failed to load request pets: %w", err)
	}
	petsByID := make(map[int64]*model.ClientPet, len(pets))
	for _, pet := range pets {
		petsByID[pet.ID] = pet
	}

	for _, request := range requests {
		services := servicesByRequest[request.ID]
		if services == nil {
			services = []model.Service{}
		}
		details = append(details, &model.RequestDetail{
			ClientRequest: *request,
			Services:      services,
			Pet:           petsByID[request.ClientPetID],
		})
	}
	return details, nil
}
