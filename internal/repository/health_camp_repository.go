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

const healthCampColumns = `id, health_camp_id, username, org_name, contact_person, contact_number, email, camp_title, camp_purpose, services, doctors_count, camp_date, duration, location, govt_collab, remarks, upload_proposal, status, status_description, submitted_at`

// HealthCampRepository provides persistence for health-camp requests.
type HealthCampRepository struct {
	db *sqlx.DB
}

// NewHealthCampRepository creates the repository.
func NewHealthCampRepository(db *sqlx.DB) *HealthCampRepository {
	return &HealthCampRepository{db: db}
}

// Create inserts a new health-camp request.
func (r *HealthCampRepository) Create(ctx context.Context, request *models.HealthCampRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.SubmittedAt.IsZero() {
		request.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO health_camp_requests (id, health_camp_id, username, org_name, contact_person, contact_number, email, camp_title, camp_purpose, services, doctors_count, camp_date, duration, location, govt_collab, remarks, upload_proposal, status, status_description, submitted_at)
VALUES (:id, :health_camp_id, :username, :org_name, :contact_person, :contact_number, :email, :camp_title, :camp_purpose, :services, :doctors_count, :camp_date, :duration, :location, :govt_collab, :remarks, :upload_proposal, :status, :status_description, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create health camp request: %w", err)
	}
	return nil
}

// FindByHealthCampID looks a request up by its external record ID.
func (r *HealthCampRepository) FindByHealthCampID(ctx context.Context, healthCampID string) (*models.HealthCampRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM health_camp_requests WHERE health_camp_id = $1 LIMIT 1`, healthCampColumns)
	var request models.HealthCampRequest
	if err := r.db.GetContext(ctx, &request, query, healthCampID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find health camp request: %w", err)
	}
	return &request, nil
}

// List returns health-camp requests matching the filter, newest first.
func (r *HealthCampRepository) List(ctx context.Context, filter models.HealthCampFilter) ([]models.HealthCampRequest, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Username != "" {
		where = append(where, fmt.Sprintf("username = $%d", len(args)+1))
		args = append(args, filter.Username)
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("submitted_at >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("submitted_at <= $%d", len(args)+1))
		args = append(args, *filter.To)
	}
	if filter.CampDateFrom != "" {
		where = append(where, fmt.Sprintf("camp_date >= $%d", len(args)+1))
		args = append(args, filter.CampDateFrom)
	}
	if filter.CampDateTo != "" {
		where = append(where, fmt.Sprintf("camp_date <= $%d", len(args)+1))
		args = append(args, filter.CampDateTo)
	}

	query := fmt.Sprintf(`SELECT %s FROM health_camp_requests WHERE %s ORDER BY submitted_at DESC`,
		healthCampColumns, strings.Join(where, " AND "))
	var requests []models.HealthCampRequest
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("list health camp requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus sets the status and always overwrites the status description,
// even with an empty value.
func (r *HealthCampRepository) UpdateStatus(ctx context.Context, healthCampID, status, description string) error {
	const query = `UPDATE health_camp_requests SET status = $2, status_description = $3 WHERE health_camp_id = $1`
	res, err := r.db.ExecContext(ctx, query, healthCampID, status, description)
	if err != nil {
		return fmt.Errorf("update health camp status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByOwner hard-deletes a request owned by the given citizen.
func (r *HealthCampRepository) DeleteByOwner(ctx context.Context, healthCampID, username string) (bool, error) {
	const query = `DELETE FROM health_camp_requests WHERE health_camp_id = $1 AND username = $2`
	res, err := r.db.ExecContext(ctx, query, healthCampID, username)
	if err != nil {
		return false, fmt.Errorf("delete health camp request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete health camp result: %w", err)
	}
	return affected > 0, nil
}

// Count returns the total number of health-camp requests.
func (r *HealthCampRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM health_camp_requests`); err != nil {
		return 0, fmt.Errorf("count health camp requests: %w", err)
	}
	return total, nil
}
