// Package catalog manages the reference data: service categories, billable
// services, staff posts and request statuses.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
	"github.com/vetdesk/vetclinic-api/pkg/validation"
)

type CatalogServicer interface {
	CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.ServiceCategory, error)
	GetCategory(ctx context.Context, id int64) (*model.ServiceCategory, error)
	ListCategories(ctx context.Context) ([]*model.ServiceCategory, error)
	UpdateCategory(ctx context.Context, id int64, req *model.UpdateCategoryRequest) (*model.ServiceCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error)
	GetService(ctx context.Context, id int64) (*model.Service, error)
	ListServices(ctx context.Context) ([]*model.Service, error)
	UpdateService(ctx context.Context, id int64, req *model.UpdateServiceRequest) (*model.Service, error)
	DeleteService(ctx context.Context, id int64) error

	CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error)
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id int64, req *model.UpdatePostRequest) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error

	ListStatuses(ctx context.Context) ([]*model.Status, error)
}

type Service struct {
	categories repository.CategoryRepository
	services   repository.ServiceRepository
	posts      repository.PostRepository
	statuses   repository.StatusRepository
}

func NewService(
	categories repository.CategoryRepository,
	services repository.ServiceRepository,
	posts repository.PostRepository,
	statuses repository.StatusRepository,
) *Service {
	return &Service{
		categories: categories,
		services:   services,
		posts:      posts,
		statuses:   statuses,
	}
}

func (s *Service) CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.ServiceCategory, error) {
	if validation.IsBlank(req.Name) {
		return nil, apperror.Validation("Category name is required")
	}
	if _, err := s.categories.GetByName(ctx, req.Name); err == nil {
		return nil, apperror.Conflict("A category with this name already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := &model.ServiceCategory{Name: req.Name}
	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("A category with this name already exists")
		}
		return nil, err
	}
	return category, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*model.ServiceCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Category with id %d not found", id)
		}
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*model.ServiceCategory, error) {
	return s.categories.List(ctx)
}

// UpdateCategory applies a partial update. An empty payload is a no-op that
// returns the stored row unchanged.
func (s *Service) UpdateCategory(ctx context.Context, id int64, req *model.UpdateCategoryRequest) (*model.ServiceCategory, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name == nil || *req.Name == category.Name {
		return category, nil
	}
	if validation.IsBlank(*req.Name) {
		return nil, apperror.Validation("Category name is required")
	}
	if _, err := s.categories.GetByName(ctx, *req.Name); err == nil {
		return nil, apperror.Conflict("A category with this name already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category.Name = *req.Name
	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("A category with this name already exists")
		}
		return nil, err
	}
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Category with id %d not found", id)
		}
		return err
	}
	return nil
}

func (s *Service) CreateService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	if validation.IsBlank(req.Name) {
		return nil, apperror.Validation("Service name is required")
	}
	if req.Price == nil || *req.Price <= 0 {
		return nil, apperror.Validation("Service price must be positive")
	}
	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Category with id %d not found", req.CategoryID)
		}
		return nil, err
	}
	if _, err := s.services.GetByName(ctx, req.Name); err == nil {
		return nil, apperror.Conflict("A service with this name already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check service name: %w", err)
	}

	service := &model.Service{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if err := s.services.Create(ctx, service); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("A service with this name already exists")
		}
		return nil, err
	}
	return service, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*model.Service, error) {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Service with id %d not found", id)
		}
		return nil, err
	}
	return service, nil
}

func (s *Service) ListServices(ctx context.Context) ([]*model.Service, error) {
	return s.services.List(ctx)
}

func (s *Service) UpdateService(ctx context.Context, id int64, req *model.UpdateServiceRequest) (*model.Service, error) {
	service, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name == nil && req.Price == nil && req.Description == nil && req.CategoryID == nil {
		return service, nil
	}

	if req.Name != nil && *req.Name != service.Name {
		if validation.IsBlank(*req.Name) {
			return nil, apperror.Validation("Service name is required")
		}
		if _, err := s.services.GetByName(ctx, *req.Name); err == nil {
			return nil, apperror.Conflict("A service with this name already exists")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to check service name: %w", err)
		}
		service.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, apperror.Validation("Service price must be positive")
		}
		service.Price = *req.Price
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperror.NotFound("Category with id %d not found", *req.CategoryID)
			}
			return nil, err
		}
		service.CategoryID = *req.CategoryID
	}

	if err := s.services.Update(ctx, service); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("A service with this name already exists")
		}
		return nil, err
	}
	return service, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.services.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Service with id %d not found", id)
		}
		return err
	}
	return nil
}

func (s *Service) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if validation.IsBlank(req.Name) {
		return nil, apperror.Validation("Post name is required")
	}
	if _, err := s.posts.GetByName(ctx, req.Name); err == nil {
		return nil, apperror.Conflict("A post with this name already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check post name: %w", err)
	}

	post := &model.Post{Name: req.Name}
	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("A post with this name already exists")
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Post with id %d not found", id)
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return s.posts.List(ctx)
}

func (s *Service) UpdatePost(ctx context.Context, id int64, req *model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name == nil || *req.Name == post.Name {
		return post, nil
	}
	if validation.IsBlank(*req.Name) {
		return nil, apperror.Validation("Post name is required")
	}
	if _, err := s.posts.GetByName(ctx, *req.Name); err == nil {
		return nil, apperror.Conflict("A post with this name already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check post name: %w", err)
	}

	post.Name = *req.Name
	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("A post with this name already exists")
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) DeletePost(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Post with id %d not found", id)
		}
		return err
	}
	return nil
}

func (s *Service) ListStatuses(ctx context.Context) ([]*model.Status, error) {
	return s.statuses.List(ctx)
}
