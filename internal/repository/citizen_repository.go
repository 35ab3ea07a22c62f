package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nmc-egov/civic-portal-api/internal/models"
)

const citizenColumns = `id, first_name, last_name, mobile, ward, email, address, password_hash, created_at, updated_at`

// CitizenRepository provides persistence for registered citizens.
type CitizenRepository struct {
	db *sqlx.DB
}

// NewCitizenRepository creates the repository.
func NewCitizenRepository(db *sqlx.DB) *CitizenRepository {
	return &CitizenRepository{db: db}
}

// FindByMobile returns a citizen by mobile number.
func (r *CitizenRepository) FindByMobile(ctx context.Context, mobile string) (*models.Citizen, error) {
	query := fmt.Sprintf(`SELECT %s FROM citizens WHERE mobile = $1 LIMIT 1`, citizenColumns)
	var citizen models.Citizen
	if err := r.db.GetContext(ctx, &citizen, query, mobile); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find citizen by mobile: %w", err)
	}
	return &citizen, nil
}

// Create inserts a new citizen. A duplicate mobile number violates the
// unique index and is surfaced unwrapped for the caller to classify.
func (r *CitizenRepository) Create(ctx context.Context, citizen *models.Citizen) error {
	if citizen.ID == "" {
		citizen.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	citizen.CreatedAt = now
	citizen.UpdatedAt = now
	const query = `INSERT INTO citizens (id, first_name, last_name, mobile, ward, email, address, password_hash, created_at, updated_at)
VALUES (:id, :first_name, :last_name, :mobile, :ward, :email, :address, :password_hash, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, citizen); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create citizen: %w", err)
	}
	return nil
}

// UpdateProfile mutates the owner-editable profile fields.
func (r *CitizenRepository) UpdateProfile(ctx context.Context, mobile, firstName, lastName, email, ward, address string) error {
	const query = `UPDATE citizens SET first_name = $2, last_name = $3, email = $4, ward = $5, address = $6, updated_at = $7 WHERE mobile = $1`
	res, err := r.db.ExecContext(ctx, query, mobile, firstName, lastName, email, ward, address, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update citizen profile: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *CitizenRepository) UpdatePassword(ctx context.Context, mobile, passwordHash string) error {
	const query = `UPDATE citizens SET password_hash = $2, updated_at = $3 WHERE mobile = $1`
	res, err := r.db.ExecContext(ctx, query, mobile, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update citizen password: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns citizens matching the admin roster filters, newest first.
func (r *CitizenRepository) List(ctx context.Context, filter models.CitizenFilter) ([]models.Citizen, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Search != "" {
		idx := len(args) + 1
		where = append(where, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR mobile ILIKE $%d OR email ILIKE $%d OR address ILIKE $%d OR ward ILIKE $%d)",
			idx, idx, idx, idx, idx, idx))
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.Ward != "" {
		where = append(where, fmt.Sprintf("ward = $%d", len(args)+1))
		args = append(args, filter.Ward)
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)+1))
		args = append(args, *filter.To)
	}

	query := fmt.Sprintf(`SELECT %s FROM citizens WHERE %s ORDER BY created_at DESC`,
		citizenColumns, strings.Join(where, " AND "))
	var citizens []models.Citizen
	if err := r.db.SelectContext(ctx, &citizens, query, args...); err != nil {
		return nil, fmt.Errorf("list citizens: %w", err)
	}
	return citizens, nil
}

// Count returns the total number of registered citizens.
func (r *CitizenRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM citizens`); err != nil {
		return 0, fmt.Errorf("count citizens: %w", err)
	}
	return total, nil
}
