package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type categoryRepository struct {
	BaseRepository
}

func NewCategoryRepository(db *sqlx.DB) repository.CategoryRepository {
	return &categoryRepository{NewBaseRepository(db)}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.ServiceCategory) error {
	query := `INSERT INTO services_categories (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, category.Name).Scan(&category.ID); err != nil {
		return fmt.Errorf("failed to create category: %w", translateErr(err))
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.ServiceCategory, error) {
	var category model.ServiceCategory
	query := `SELECT id, name FROM services_categories WHERE id = $1`
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*model.ServiceCategory, error) {
	var category model.ServiceCategory
	query := `SELECT id, name FROM services_categories WHERE name = $1`
	if err := r.db.GetContext(ctx, &category, query, name); err != nil {
		return nil, translateErr(err)
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*model.ServiceCategory, error) {
	var categories []*model.ServiceCategory
	query := `SELECT id, name FROM services_categories ORDER BY id`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *model.ServiceCategory) error {
	query := `UPDATE services_categories SET name = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", translateErr(err))
	}
	return checkAffected(result)
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", translateErr(err))
	}
	return checkAffected(result)
}

type serviceRepository struct {
	BaseRepository
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{NewBaseRepository(db)}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	query := `
		INSERT INTO services (name, price, description, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		service.Name, service.Price, service.Description, service.CategoryID,
	).Scan(&service.ID)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", translateErr(err))
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	var service model.Service
	query := `SELECT id, name, price, description, category_id FROM services WHERE id = $1`
	if err := r.db.GetContext(ctx, &service, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &service, nil
}

func (r *serviceRepository) GetByName(ctx context.Context, name string) (*model.Service, error) {
	var service model.Service
	query := `SELECT id, name, price, description, category_id FROM services WHERE name = $1`
	if err := r.db.GetContext(ctx, &service, query, name); err != nil {
		return nil, translateErr(err)
	}
	return &service, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]*model.Service, error) {
	var services []*model.Service
	query := `SELECT id, name, price, description, category_id FROM services ORDER BY id`
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	query := `
		UPDATE services
		SET name = $1, price = $2, description = $3, category_id = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		service.Name, service.Price, service.Description, service.CategoryID, service.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", translateErr(err))
	}
	return checkAffected(result)
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", translateErr(err))
	}
	return checkAffected(result)
}

type postRepository struct {
	BaseRepository
}

func NewPostRepository(db *sqlx.DB) repository.PostRepository {
	return &postRepository{NewBaseRepository(db)}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `INSERT INTO posts (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, post.Name).Scan(&post.ID); err != nil {
		return fmt.Errorf("failed to create post: %w", translateErr(err))
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	query := `SELECT id, name FROM posts WHERE id = $1`
	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &post, nil
}

func (r *postRepository) GetByName(ctx context.Context, name string) (*model.Post, error) {
	var post model.Post
	query := `SELECT id, name FROM posts WHERE name = $1`
	if err := r.db.GetContext(ctx, &post, query, name); err != nil {
		return nil, translateErr(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	query := `SELECT id, name FROM posts ORDER BY id`
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	query := `UPDATE posts SET name = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, post.Name, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", translateErr(err))
	}
	return checkAffected(result)
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", translateErr(err))
	}
	return checkAffected(result)
}

type statusRepository struct {
	BaseRepository
}

func NewStatusRepository(db *sqlx.DB) repository.StatusRepository {
	return &statusRepository{NewBaseRepository(db)}
}

func (r *statusRepository) GetByID(ctx context.Context, id int64) (*model.Status, error) {
	var status model.Status
	query := `SELECT id, name FROM statuses WHERE id = $1`
	if err := r.db.GetContext(ctx, &status, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &status, nil
}

func (r *statusRepository) List(ctx context.Context) ([]*model.Status, error) {
	var statuses []*model.Status
	query := `SELECT id, name FROM statuses ORDER BY id`
	if err := r.db.SelectContext(ctx, &statuses, query); err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}
