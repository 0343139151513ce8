package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{NewBaseRepository(db)}
}

// detailColumns aliases the doctors columns under the "profile" prefix so a
// single row scans into DoctorDetail.
const detailColumns = `
	u.id, u.fio, u.phone, u.email, u.password_hash, u.role,
	d.id AS "profile.id",
	d.experience AS "profile.experience",
	d.post_id AS "profile.post_id",
	d.user_id AS "profile.user_id"
`

type doctorDetailRow struct {
	model.User
	Profile model.Doctor `db:"profile"`
}

func (row *doctorDetailRow) toDetail() *model.DoctorDetail {
	return &model.DoctorDetail{User: row.User, Profile: row.Profile}
}

func (r *doctorRepository) CreateWithUser(ctx context.Context, user *model.User, profile *model.Doctor) error {
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		userQuery := `
			INSERT INTO users (fio, phone, email, password_hash, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		if err := tx.QueryRowxContext(ctx, userQuery,
			user.Fio, user.Phone, user.Email, user.PasswordHash, user.Role,
		).Scan(&user.ID); err != nil {
			return err
		}

		profile.UserID = user.ID
		profileQuery := `
			INSERT INTO doctors (experience, post_id, user_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		return tx.QueryRowxContext(ctx, profileQuery,
			profile.Experience, profile.PostID, profile.UserID,
		).Scan(&profile.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", translateErr(err))
	}
	return nil
}

func (r *doctorRepository) GetProfileByUserID(ctx context.Context, userID int64) (*model.Doctor, error) {
	var profile model.Doctor
	query := `SELECT id, experience, post_id, user_id FROM doctors WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		return nil, translateErr(err)
	}
	return &profile, nil
}

func (r *doctorRepository) GetDetail(ctx context.Context, userID int64) (*model.DoctorDetail, error) {
	var row doctorDetailRow
	query := `
		SELECT ` + detailColumns + `
		FROM users u
		JOIN doctors d ON d.user_id = u.id
		WHERE u.id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return nil, translateErr(err)
	}
	return row.toDetail(), nil
}

func (r *doctorRepository) ListDetails(ctx context.Context) ([]*model.DoctorDetail, error) {
	var rows []doctorDetailRow
	query := `
		SELECT ` + detailColumns + `
		FROM users u
		JOIN doctors d ON d.user_id = u.id
		ORDER BY u.id
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	details := make([]*model.DoctorDetail, 0, len(rows))
	for i := range rows {
		details = append(details, rows[i].toDetail())
	}
	return details, nil
}

func (r *doctorRepository) UpdateWithUser(ctx context.Context, user *model.User, profile *model.Doctor) error {
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		userQuery := `
			UPDATE users
			SET fio = $1, phone = $2, email = $3, password_hash = $4, role = $5
			WHERE id = $6
		`
		if _, err := tx.ExecContext(ctx, userQuery,
			user.Fio, user.Phone, user.Email, user.PasswordHash, user.Role, user.ID,
		); err != nil {
			return err
		}

		profileQuery := `
			UPDATE doctors
			SET experience = $1, post_id = $2
			WHERE user_id = $3
		`
		_, err := tx.ExecContext(ctx, profileQuery, profile.Experience, profile.PostID, user.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", translateErr(err))
	}
	return nil
}

func (r *doctorRepository) DeleteWithUser(ctx context.Context, userID int64) error {
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM doctors WHERE user_id = $1`, userID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return repository.ErrNotFound
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
		return err
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete doctor: %w", translateErr(err))
	}
	return nil
}
