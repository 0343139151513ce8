// Package repository declares the per-entity persistence interfaces injected
// into the services. Implementations translate store-level failures into the
// two sentinel errors below; services attach entity names and error kinds.
package repository

import (
	"context"
	"errors"

	"github.com/vetdesk/vetclinic-api/internal/model"
)

var (
	// ErrNotFound is returned when a lookup resolves no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a unique-constraint violation. The store
	// is the final arbiter for concurrent writes against unique fields.
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type DoctorRepository interface {
	// CreateWithUser persists the backing user and the profile in a single
	// transaction.
	CreateWithUser(ctx context.Context, user *model.User, profile *model.Doctor) error
	GetProfileByUserID(ctx context.Context, userID int64) (*model.Doctor, error)
	GetDetail(ctx context.Context, userID int64) (*model.DoctorDetail, error)
	ListDetails(ctx context.Context) ([]*model.DoctorDetail, error)
	// UpdateWithUser applies user and profile changes in a single transaction.
	UpdateWithUser(ctx context.Context, user *model.User, profile *model.Doctor) error
	// DeleteWithUser removes the profile then the backing user in a single
	// transaction (manual cascade).
	DeleteWithUser(ctx context.Context, userID int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *model.ServiceCategory) error
	GetByID(ctx context.Context, id int64) (*model.ServiceCategory, error)
	GetByName(ctx context.Context, name string) (*model.ServiceCategory, error)
	List(ctx context.Context) ([]*model.ServiceCategory, error)
	Update(ctx context.Context, category *model.ServiceCategory) error
	Delete(ctx context.Context, id int64) error
}

type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	GetByID(ctx context.Context, id int64) (*model.Service, error)
	GetByName(ctx context.Context, name string) (*model.Service, error)
	List(ctx context.Context) ([]*model.Service, error)
	Update(ctx context.Context, service *model.Service) error
	Delete(ctx context.Context, id int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	GetByName(ctx context.Context, name string) (*model.Post, error)
	List(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id int64) error
}

type StatusRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Status, error)
	List(ctx context.Context) ([]*model.Status, error)
}

type PetRepository interface {
	Create(ctx context.Context, pet *model.ClientPet) error
	GetByID(ctx context.Context, id int64) (*model.ClientPet, error)
	ListByOwner(ctx context.Context, userID int64) ([]*model.ClientPet, error)
	Update(ctx context.Context, pet *model.ClientPet) error
	Delete(ctx context.Context, id int64) error
}

type RequestRepository interface {
	// CreateWithServices persists the request and one join row per service
	// id in a single transaction.
	CreateWithServices(ctx context.Context, request *model.ClientRequest, serviceIDs []int64) error
	GetByID(ctx context.Context, id int64) (*model.ClientRequest, error)
	GetDetail(ctx context.Context, id int64) (*model.RequestDetail, error)
	ListDetailsByUser(ctx context.Context, userID int64) ([]*model.RequestDetail, error)
	ListDetails(ctx context.Context) ([]*model.RequestDetail, error)
	UpdateStatus(ctx context.Context, id, statusID int64) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id int64) (*model.Appointment, error)
	GetDetail(ctx context.Context, id int64) (*model.AppointmentDetail, error)
	ListDetailsByUser(ctx context.Context, userID int64) ([]*model.AppointmentDetail, error)
	ListDetailsByDoctor(ctx context.Context, doctorID int64) ([]*model.AppointmentDetail, error)
	Delete(ctx context.Context, id int64) error
}

type MedicineCardRepository interface {
	Create(ctx context.Context, card *model.MedicineCard) error
	GetByID(ctx context.Context, id int64) (*model.MedicineCard, error)
	List(ctx context.Context) ([]*model.MedicineCard, error)
	ListByPet(ctx context.Context, petID int64) ([]*model.MedicineCard, error)
	Update(ctx context.Context, card *model.MedicineCard) error
	Delete(ctx context.Context, id int64) error
}
