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

const complaintColumns = `id, complaint_id, username, subject, category, description, location, ward, image_path, status, status_description, submitted_at`

// ComplaintRepository provides persistence for complaint records.
type ComplaintRepository struct {
	db *sqlx.DB
}

// NewComplaintRepository creates the repository.
func NewComplaintRepository(db *sqlx.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create inserts a new complaint. A colliding complaint_id violates the
// unique index and is surfaced unwrapped for the caller to classify.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	if complaint.ID == "" {
		complaint.ID = uuid.NewString()
	}
	if complaint.SubmittedAt.IsZero() {
		complaint.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO complaints (id, complaint_id, username, subject, category, description, location, ward, image_path, status, status_description, submitted_at)
VALUES (:id, :complaint_id, :username, :subject, :category, :description, :location, :ward, :image_path, :status, :status_description, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, complaint); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create complaint: %w", err)
	}
	return nil
}

// FindByComplaintID looks a complaint up by its external record ID.
func (r *ComplaintRepository) FindByComplaintID(ctx context.Context, complaintID string) (*models.Complaint, error) {
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE complaint_id = $1 LIMIT 1`, complaintColumns)
	var complaint models.Complaint
	if err := r.db.GetContext(ctx, &complaint, query, complaintID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return &complaint, nil
}

// List returns complaints matching the filter, newest first.
func (r *ComplaintRepository) List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error) {
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
	if filter.Ward != "" {
		where = append(where, fmt.Sprintf("ward = $%d", len(args)+1))
		args = append(args, filter.Ward)
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("submitted_at >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("submitted_at <= $%d", len(args)+1))
		args = append(args, *filter.To)
	}

	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE %s ORDER BY submitted_at DESC`,
		complaintColumns, strings.Join(where, " AND "))
	var complaints []models.Complaint
	if err := r.db.SelectContext(ctx, &complaints, query, args...); err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus sets the status and, only when a description is supplied,
// the status description.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, complaintID, status string, description *string) error {
	const query = `UPDATE complaints SET status = $2, status_description = COALESCE($3, status_description) WHERE complaint_id = $1`
	res, err := r.db.ExecContext(ctx, query, complaintID, status, description)
	if err != nil {
		return fmt.Errorf("update complaint status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByOwner hard-deletes a complaint owned by the given citizen.
// Returns false when no matching row existed.
func (r *ComplaintRepository) DeleteByOwner(ctx context.Context, complaintID, username string) (bool, error) {
	const query = `DELETE FROM complaints WHERE complaint_id = $1 AND username = $2`
	res, err := r.db.ExecContext(ctx, query, complaintID, username)
	if err != nil {
		return false, fmt.Errorf("delete complaint: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete complaint result: %w", err)
	}
	return affected > 0, nil
}

// Count returns the total number of complaints.
func (r *ComplaintRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM complaints`); err != nil {
		return 0, fmt.Errorf("count complaints: %w", err)
	}
	return total, nil
}
