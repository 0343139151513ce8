package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{NewBaseRepository(db)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (fio, phone, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		user.Fio,
		user.Phone,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", translateErr(err))
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	query := `SELECT id, fio, phone, email, password_hash, role FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT id, fio, phone, email, password_hash, role FROM users WHERE email = $1`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	query := `SELECT id, fio, phone, email, password_hash, role FROM users WHERE phone = $1`
	if err := r.db.GetContext(ctx, &user, query, phone); err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET fio = $1, phone = $2, email = $3, password_hash = $4, role = $5
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Fio,
		user.Phone,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", translateErr(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
