package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects an insert
	ErrDuplicate = errors.New("already exists")
)

const uniqueViolation = "23505"

const schema = `
	CREATE SCHEMA IF NOT EXISTS underwriting;
	CREATE TABLE IF NOT EXISTS underwriting.users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS underwriting.properties (
		id         TEXT PRIMARY KEY,
		address    TEXT NOT NULL,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS underwriting.analyses (
		id           UUID PRIMARY KEY,
		property_id  TEXT NOT NULL REFERENCES underwriting.properties(id),
		verdict      TEXT NOT NULL,
		cash_on_cash DOUBLE PRECISION,
		total_return DOUBLE PRECISION,
		target_met   BOOLEAN NOT NULL,
		data         JSONB NOT NULL,
		seal         TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS analyses_property_created_idx
		ON underwriting.analyses (property_id, created_at DESC);`

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the schema when it does not exist yet
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO underwriting.users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("user %s: %w", user.Email, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM underwriting.users
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// SaveProperty inserts or refreshes a sourced property
func (r *Repository) SaveProperty(ctx context.Context, p *models.Property) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode property: %w", err)
	}
	query := `
		INSERT INTO underwriting.properties (id, address, data, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE
		SET address = EXCLUDED.address, data = EXCLUDED.data, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Address, data); err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}
	return nil
}

// SaveAnalysis stores a completed analysis with its seal
func (r *Repository) SaveAnalysis(ctx context.Context, a *models.Analysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	// undefined ratios are stored as NULL so SQL filters never mistake them for zero
	var coc, total sql.NullFloat64
	if !a.Returns.Undefined {
		coc = sql.NullFloat64{Float64: a.Returns.CashOnCash, Valid: true}
		total = sql.NullFloat64{Float64: a.Returns.Total, Valid: true}
	}

	query := `
		INSERT INTO underwriting.analyses
			(id, property_id, verdict, cash_on_cash, total_return, target_met, data, seal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecContext(ctx, query, a.ID, a.PropertyID, string(a.Recommendation.Verdict),
		coc, total, a.Plan.TargetMet, data, a.Seal, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// FindAnalysis retrieves an analysis by ID
func (r *Repository) FindAnalysis(ctx context.Context, id string) (*models.Analysis, error) {
	var data []byte
	query := `SELECT data FROM underwriting.analyses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return decodeAnalysis(data)
}

// LatestAnalyses returns the most recent analysis of every property
func (r *Repository) LatestAnalyses(ctx context.Context) ([]models.Analysis, error) {
	query := `
		SELECT DISTINCT ON (property_id) data
		FROM underwriting.analyses
		ORDER BY property_id, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []models.Analysis
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		a, err := decodeAnalysis(data)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

func decodeAnalysis(data []byte) (*models.Analysis, error) {
	a := &models.Analysis{}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return a, nil
}
