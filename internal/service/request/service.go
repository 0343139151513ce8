// Package request implements the request/appointment workflow: clients
// submit service requests, managers move them through statuses and convert
// them into doctor appointments.
package request

import (
	"context"
	"errors"
	"time"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
	"github.com/vetdesk/vetclinic-api/pkg/validation"
)

type RequestServicer interface {
	CreateRequest(ctx context.Context, clientID int64, req *model.CreateRequestRequest) (*model.RequestDetail, error)
	GetRequest(ctx context.Context, clientID, id int64) (*model.RequestDetail, error)
	ListRequests(ctx context.Context, clientID int64) ([]*model.RequestDetail, error)

	GetAnyRequest(ctx context.Context, id int64) (*model.RequestDetail, error)
	ListAllRequests(ctx context.Context) ([]*model.RequestDetail, error)
	UpdateStatus(ctx context.Context, id int64, req *model.UpdateRequestStatus) (*model.RequestDetail, error)

	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentDetail, error)
	GetAppointment(ctx context.Context, clientID, id int64) (*model.AppointmentDetail, error)
	ListAppointments(ctx context.Context, clientID int64) ([]*model.AppointmentDetail, error)
	DeleteAppointment(ctx context.Context, clientID, id int64) error
	ListDoctorSchedule(ctx context.Context, doctorUserID int64) ([]*model.AppointmentDetail, error)
}

type Service struct {
	requests     repository.RequestRepository
	appointments repository.AppointmentRepository
	pets         repository.PetRepository
	users        repository.UserRepository
	doctors      repository.DoctorRepository
	services     repository.ServiceRepository
	statuses     repository.StatusRepository
}

func NewService(
	requests repository.RequestRepository,
	appointments repository.AppointmentRepository,
	pets repository.PetRepository,
	users repository.UserRepository,
	doctors repository.DoctorRepository,
	services repository.ServiceRepository,
	statuses repository.StatusRepository,
) *Service {
	return &Service{
		requests:     requests,
		appointments: appointments,
		pets:         pets,
		users:        users,
		doctors:      doctors,
		services:     services,
		statuses:     statuses,
	}
}

// CreateRequest submits a service request for one of the caller's pets. The
// selection must resolve to at least one service; the request row and its
// join rows commit in one transaction.
func (s *Service) CreateRequest(ctx context.Context, clientID int64, req *model.CreateRequestRequest) (*model.RequestDetail, error) {
	pet, err := s.pets.GetByID(ctx, req.ClientPetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Pet with id %d not found", req.ClientPetID)
		}
		return nil, err
	}
	if pet.UserID != clientID {
		return nil, apperror.Ownership("Pet with id %d does not belong to you", req.ClientPetID)
	}

	if len(req.ServiceID) == 0 {
		return nil, apperror.Validation("At least one service is required")
	}
	for _, serviceID := range req.ServiceID {
		if _, err := s.services.GetByID(ctx, serviceID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperror.NotFound("Service with id %d not found", serviceID)
			}
			return nil, err
		}
	}

	requestDate := model.NewDate(time.Now())
	if req.RequestDate != nil {
		if !validation.IsDate(*req.RequestDate) {
			return nil, apperror.Validation("Incorrect request date, expected YYYY-MM-DD")
		}
		requestDate, _ = model.ParseDate(*req.RequestDate)
	}

	request := &model.ClientRequest{
		RequestDate: requestDate,
		Description: req.Description,
		StatusID:    model.InitialStatusID,
		UserID:      clientID,
		ClientPetID: req.ClientPetID,
	}
	if err := s.requests.CreateWithServices(ctx, request, req.ServiceID); err != nil {
		return nil, err
	}

	return s.requests.GetDetail(ctx, request.ID)
}

// GetRequest returns the caller's request with its services and pet. A
// request owned by another client is reported as missing, never leaked.
func (s *Service) GetRequest(ctx context.Context, clientID, id int64) (*model.RequestDetail, error) {
	detail, err := s.requests.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Request with id %d not found", id)
		}
		return nil, err
	}
	if detail.UserID != clientID {
		return nil, apperror.NotFound("Request with id %d not found", id)
	}
	return detail, nil
}

func (s *Service) ListRequests(ctx context.Context, clientID int64) ([]*model.RequestDetail, error) {
	return s.requests.ListDetailsByUser(ctx, clientID)
}

func (s *Service) GetAnyRequest(ctx context.Context, id int64) (*model.RequestDetail, error) {
	detail, err := s.requests.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Request with id %d not found", id)
		}
		return nil, err
	}
	return detail, nil
}

func (s *Service) ListAllRequests(ctx context.Context) ([]*model.RequestDetail, error) {
	return s.requests.ListDetails(ctx)
}

// UpdateStatus moves a request to another status. Any status may follow any
// other; an unchanged status is a no-op.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *model.UpdateRequestStatus) (*model.RequestDetail, error) {
	detail, err := s.GetAnyRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail.StatusID == req.StatusID {
		return detail, nil
	}

	if _, err := s.statuses.GetByID(ctx, req.StatusID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Status with id %d not found", req.StatusID)
		}
		return nil, err
	}

	if err := s.requests.UpdateStatus(ctx, id, req.StatusID); err != nil {
		return nil, err
	}
	detail.StatusID = req.StatusID
	return detail, nil
}

// CreateAppointment converts a triaged request into a scheduled doctor
// visit. The doctor's user must exist before its role is inspected, so a
// missing doctor never reaches the write.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentDetail, error) {
	if !validation.IsDate(req.DateVisit) {
		return nil, apperror.Validation("Incorrect visit date, expected YYYY-MM-DD")
	}
	if !validation.IsTime(req.TimeVisit) {
		return nil, apperror.Validation("Incorrect visit time, expected HH:MM or HH:MM:SS")
	}

	request, err := s.requests.GetByID(ctx, req.ClientRequestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Request with id %d not found", req.ClientRequestID)
		}
		return nil, err
	}
	if request.UserID != req.UserID {
		return nil, apperror.Ownership("Request with id %d does not belong to client %d", req.ClientRequestID, req.UserID)
	}

	doctorUser, err := s.users.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Doctor with id %d not found", req.DoctorID)
		}
		return nil, err
	}
	if doctorUser.Role != model.RoleDoctor {
		return nil, apperror.Validation("User with id %d is not a doctor", req.DoctorID)
	}

	profile, err := s.doctors.GetProfileByUserID(ctx, doctorUser.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Doctor profile for user %d not found", doctorUser.ID)
		}
		return nil, err
	}

	dateVisit, _ := model.ParseDate(req.DateVisit)
	appointment := &model.Appointment{
		DateVisit:       dateVisit,
		TimeVisit:       req.TimeVisit,
		DoctorID:        profile.ID,
		UserID:          req.UserID,
		ClientRequestID: req.ClientRequestID,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Request already has an appointment")
		}
		return nil, err
	}

	return s.appointments.GetDetail(ctx, appointment.ID)
}

// GetAppointment returns the caller's appointment with its doctor and
// originating request.
func (s *Service) GetAppointment(ctx context.Context, clientID, id int64) (*model.AppointmentDetail, error) {
	detail, err := s.appointments.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Appointment with id %d not found", id)
		}
		return nil, err
	}
	if detail.UserID != clientID {
		return nil, apperror.NotFound("Appointment with id %d not found", id)
	}
	return detail, nil
}

func (s *Service) ListAppointments(ctx context.Context, clientID int64) ([]*model.AppointmentDetail, error) {
	return s.appointments.ListDetailsByUser(ctx, clientID)
}

func (s *Service) DeleteAppointment(ctx context.Context, clientID, id int64) error {
	if _, err := s.GetAppointment(ctx, clientID, id); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}

// ListDoctorSchedule returns the appointments assigned to the calling
// doctor, resolved through its profile.
func (s *Service) ListDoctorSchedule(ctx context.Context, doctorUserID int64) ([]*model.AppointmentDetail, error) {
	profile, err := s.doctors.GetProfileByUserID(ctx, doctorUserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Doctor profile for user %d not found", doctorUserID)
		}
		return nil, err
	}
	return s.appointments.ListDetailsByDoctor(ctx, profile.ID)
}
