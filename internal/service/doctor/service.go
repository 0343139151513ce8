// Package doctor manages doctor accounts: the backing user and the
// professional profile move together through every operation.
package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
	"github.com/vetdesk/vetclinic-api/pkg/security"
	"github.com/vetdesk/vetclinic-api/pkg/validation"
)

type DoctorServicer interface {
	Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.DoctorDetail, error)
	Get(ctx context.Context, userID int64) (*model.DoctorDetail, error)
	List(ctx context.Context) ([]*model.DoctorDetail, error)
	Update(ctx context.Context, userID int64, req *model.UpdateDoctorRequest) (*model.DoctorDetail, error)
	Delete(ctx context.Context, userID int64) error
}

type Service struct {
	doctors repository.DoctorRepository
	users   repository.UserRepository
	posts   repository.PostRepository
	hasher  security.PasswordHasher
}

func NewService(
	doctors repository.DoctorRepository,
	users repository.UserRepository,
	posts repository.PostRepository,
	hasher security.PasswordHasher,
) *Service {
	return &Service{doctors: doctors, users: users, posts: posts, hasher: hasher}
}

// Create validates every input before any write, then persists the user and
// the profile in one transaction, so a failed profile never strands a user
// row.
func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.DoctorDetail, error) {
	if !validation.IsFullName(req.Fio) {
		return nil, apperror.Validation("Incorrect Fio")
	}
	if !validation.IsPhone(req.Phone) {
		return nil, apperror.Validation("Incorrect phone")
	}
	if !validation.IsEmail(req.Email) {
		return nil, apperror.Validation("Incorrect email")
	}
	if !validation.IsPassword(req.Password) {
		return nil, apperror.Validation("Password must be at least %d characters", validation.MinPasswordLen)
	}
	if req.Experience == nil || *req.Experience < 0 {
		return nil, apperror.Validation("Experience must be zero or positive")
	}

	if _, err := s.posts.GetByID(ctx, req.PostID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Post with id %d not found", req.PostID)
		}
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Conflict("A user with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.users.GetByPhone(ctx, req.Phone); err == nil {
		return nil, apperror.Conflict("A user with this phone already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Fio:          req.Fio,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleDoctor,
	}
	profile := &model.Doctor{
		Experience: *req.Experience,
		PostID:     req.PostID,
	}
	if err := s.doctors.CreateWithUser(ctx, user, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("A user with this email or phone already exists")
		}
		return nil, err
	}

	return &model.DoctorDetail{User: *user, Profile: *profile}, nil
}

func (s *Service) Get(ctx context.Context, userID int64) (*model.DoctorDetail, error) {
	detail, err := s.doctors.GetDetail(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Doctor with id %d not found", userID)
		}
		return nil, err
	}
	return detail, nil
}

func (s *Service) List(ctx context.Context) ([]*model.DoctorDetail, error) {
	return s.doctors.ListDetails(ctx)
}

// Update applies a partial update over the user and the profile. An empty
// payload is a no-op that returns the stored state unchanged.
func (s *Service) Update(ctx context.Context, userID int64, req *model.UpdateDoctorRequest) (*model.DoctorDetail, error) {
	detail, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Fio == nil && req.Phone == nil && req.Email == nil && req.Password == nil &&
		req.Experience == nil && req.PostID == nil {
		return detail, nil
	}

	user := detail.User
	profile := detail.Profile

	if req.Fio != nil {
		if !validation.IsFullName(*req.Fio) {
			return nil, apperror.Validation("Incorrect Fio")
		}
		user.Fio = *req.Fio
	}
	if req.Phone != nil && *req.Phone != user.Phone {
		if !validation.IsPhone(*req.Phone) {
			return nil, apperror.Validation("Incorrect phone")
		}
		if _, err := s.users.GetByPhone(ctx, *req.Phone); err == nil {
			return nil, apperror.Conflict("A user with this phone already exists")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to check phone: %w", err)
		}
		user.Phone = *req.Phone
	}
	if req.Email != nil && *req.Email != user.Email {
		if !validation.IsEmail(*req.Email) {
			return nil, apperror.Validation("Incorrect email")
		}
		if _, err := s.users.GetByEmail(ctx, *req.Email); err == nil {
			return nil, apperror.Conflict("A user with this email already exists")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if !validation.IsPassword(*req.Password) {
			return nil, apperror.Validation("Password must be at least %d characters", validation.MinPasswordLen)
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if req.Experience != nil {
		if *req.Experience < 0 {
			return nil, apperror.Validation("Experience must be zero or positive")
		}
		profile.Experience = *req.Experience
	}
	if req.PostID != nil {
		if _, err := s.posts.GetByID(ctx, *req.PostID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperror.NotFound("Post with id %d not found", *req.PostID)
			}
			return nil, err
		}
		profile.PostID = *req.PostID
	}

	if err := s.doctors.UpdateWithUser(ctx, &user, &profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("A user with this email or phone already exists")
		}
		return nil, err
	}
	return &model.DoctorDetail{User: user, Profile: profile}, nil
}

// Delete removes the profile and the backing user together.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	if err := s.doctors.DeleteWithUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Doctor with id %d not found", userID)
		}
		return err
	}
	return nil
}
