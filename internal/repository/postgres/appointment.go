package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
	requests *requestRepository
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		BaseRepository: NewBaseRepository(db),
		requests:       &requestRepository{NewBaseRepository(db)},
	}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (date_visit, time_visit, doctor_id, user_id, client_request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		appointment.DateVisit, appointment.TimeVisit, appointment.DoctorID,
		appointment.UserID, appointment.ClientRequestID,
	).Scan(&appointment.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", translateErr(err))
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	var appointment model.Appointment
	query := `
		SELECT id, date_visit, time_visit, doctor_id, user_id, client_request_id
		FROM appointments
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) GetDetail(ctx context.Context, id int64) (*model.AppointmentDetail, error) {
	appointment, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details, err := r.attachRelations(ctx, []*model.Appointment{appointment})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *appointmentRepository) ListDetailsByUser(ctx context.Context, userID int64) ([]*model.AppointmentDetail, error) {
	var appointments []*model.Appointment
	query := `
		SELECT id, date_visit, time_visit, doctor_id, user_id, client_request_id
		FROM appointments
		WHERE user_id = $1
		ORDER BY date_visit, time_visit
	`
	if err := r.db.SelectContext(ctx, &appointments, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return r.attachRelations(ctx, appointments)
}

func (r *appointmentRepository) ListDetailsByDoctor(ctx context.Context, doctorID int64) ([]*model.AppointmentDetail, error) {
	var appointments []*model.Appointment
	query := `
		SELECT id, date_visit, time_visit, doctor_id, user_id, client_request_id
		FROM appointments
		WHERE doctor_id = $1
		ORDER BY date_visit, time_visit
	`
	if err := r.db.SelectContext(ctx, &appointments, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return r.attachRelations(ctx, appointments)
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", translateErr(err))
	}
	return checkAffected(result)
}

// attachRelations resolves each appointment's doctor (with its user) and the
// originating request projection.
func (r *appointmentRepository) attachRelations(ctx context.Context, appointments []*model.Appointment) ([]*model.AppointmentDetail, error) {
	details := make([]*model.AppointmentDetail, 0, len(appointments))
	if len(appointments) == 0 {
		return details, nil
	}

	doctorIDs := make([]int64, 0, len(appointments))
	requestIDs := make([]int64, 0, len(appointments))
	for _, appointment := range appointments {
		doctorIDs = append(doctorIDs, appointment.DoctorID)
		requestIDs = append(requestIDs, appointment.ClientRequestID)
	}

	var doctorRows []doctorDetailRow
	doctorsQuery := `
		SELECT ` + detailColumns + `
		FROM users u
		JOIN doctors d ON d.user_id = u.id
		WHERE d.id = ANY($1)
	`
	if err := r.db.SelectContext(ctx, &doctorRows, doctorsQuery, pq.Array(doctorIDs)); err != nil {
		return nil, fmt.Errorf("failed to load appointment doctors: %w", err)
	}
	doctorsByID := make(map[int64]*model.DoctorDetail, len(doctorRows))
	for i := range doctorRows {
		doctorsByID[doctorRows[i].Profile.ID] = doctorRows[i].toDetail()
	}

	var requests []*model.ClientRequest
	requestsQuery := `
		SELECT id, request_date, description, status_id, user_id, client_pet_id
		FROM client_requests
		WHERE id = ANY($1)
	`
	if err := r.db.SelectContext(ctx, &requests, requestsQuery, pq.Array(requestIDs)); err != nil {
		return nil, fmt.Errorf("failed to load appointment requests: %w", err)
	}
	requestDetails, err := r.requests.attachRelations(ctx, requests)
	if err != nil {
		return nil, err
	}
	requestsByID := make(map[int64]*model.RequestDetail, len(requestDetails))
	for _, detail := range requestDetails {
		requestsByID[detail.ID] = detail
	}

	for _, appointment := range appointments {
		details = append(details, &model.AppointmentDetail{
			Appointment: *appointment,
			Doctor:      doctorsByID[appointment.DoctorID],
			Request:     requestsByID[appointment.ClientRequestID],
		})
	}
	return details, nil
}
