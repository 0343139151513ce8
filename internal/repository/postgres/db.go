package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/vetdesk/vetclinic-api/internal/config"
)

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Startup connectivity check
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		fio           TEXT NOT NULL,
		phone         TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'USER'
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id         BIGSERIAL PRIMARY KEY,
		experience INTEGER NOT NULL,
		post_id    BIGINT NOT NULL REFERENCES posts (id),
		user_id    BIGINT NOT NULL REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS client_pets (
		id      BIGSERIAL PRIMARY KEY,
		name    TEXT NOT NULL,
		breed   TEXT NOT NULL,
		image   TEXT NOT NULL,
		age     INTEGER NOT NULL,
		sex     CHAR(1) NOT NULL,
		weight  NUMERIC NOT NULL,
		user_id BIGINT NOT NULL REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS medicine_cards (
		id            BIGSERIAL PRIMARY KEY,
		info          TEXT NOT NULL,
		description   TEXT NOT NULL,
		date_visit    DATE NOT NULL,
		client_pet_id BIGINT NOT NULL REFERENCES client_pets (id)
	)`,
	`CREATE TABLE IF NOT EXISTS services_categories (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		price       NUMERIC NOT NULL,
		description TEXT,
		category_id BIGINT NOT NULL REFERENCES services_categories (id)
	)`,
	`CREATE TABLE IF NOT EXISTS statuses (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS client_requests (
		id            BIGSERIAL PRIMARY KEY,
		request_date  DATE NOT NULL,
		description   TEXT,
		status_id     BIGINT NOT NULL REFERENCES statuses (id),
		user_id       BIGINT NOT NULL REFERENCES users (id),
		client_pet_id BIGINT NOT NULL REFERENCES client_pets (id)
	)`,
	`CREATE TABLE IF NOT EXISTS services_requests (
		id                BIGSERIAL PRIMARY KEY,
		client_request_id BIGINT NOT NULL REFERENCES client_requests (id),
		service_id        BIGINT NOT NULL REFERENCES services (id)
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id                BIGSERIAL PRIMARY KEY,
		date_visit        DATE NOT NULL,
		time_visit        TIME NOT NULL,
		doctor_id         BIGINT NOT NULL REFERENCES doctors (id),
		user_id           BIGINT NOT NULL REFERENCES users (id),
		client_request_id BIGINT NOT NULL UNIQUE REFERENCES client_requests (id)
	)`,
	`INSERT INTO statuses (id, name) VALUES (1, 'Создана')
		ON CONFLICT (id) DO NOTHING`,
	`SELECT setval('statuses_id_seq', GREATEST((SELECT MAX(id) FROM statuses), 1))`,
}

// EnsureSchema creates missing tables and seeds the initial request status.
// It is idempotent and runs before the server accepts traffic.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
