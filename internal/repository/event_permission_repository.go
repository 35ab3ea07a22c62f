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

const eventPermissionColumns = `id, event_permission_id, username, event_name, organizer_name, organizer_contact, organizer_email, event_date, event_time, event_location, expected_gathering, event_description, special_requests, upload_doc, status, status_description, submitted_at`

// EventPermissionRepository provides persistence for event-permission records.
type EventPermissionRepository struct {
	db *sqlx.DB
}

// NewEventPermissionRepository creates the repository.
func NewEventPermissionRepository(db *sqlx.DB) *EventPermissionRepository {
	return &EventPermissionRepository{db: db}
}

// Create inserts a new event-permission request.
func (r *EventPermissionRepository) Create(ctx context.Context, permission *models.EventPermission) error {
	if permission.ID == "" {
		permission.ID = uuid.NewString()
	}
	if permission.SubmittedAt.IsZero() {
		permission.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO event_permissions (id, event_permission_id, username, event_name, organizer_name, organizer_contact, organizer_email, event_date, event_time, event_location, expected_gathering, event_description, special_requests, upload_doc, status, status_description, submitted_at)
VALUES (:id, :event_permission_id, :username, :event_name, :organizer_name, :organizer_contact, :organizer_email, :event_date, :event_time, :event_location, :expected_gathering, :event_description, :special_requests, :upload_doc, :status, :status_description, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, permission); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create event permission: %w", err)
	}
	return nil
}

// FindByPermissionID looks a request up by its external record ID.
func (r *EventPermissionRepository) FindByPermissionID(ctx context.Context, permissionID string) (*models.EventPermission, error) {
	query := fmt.Sprintf(`SELECT %s FROM event_permissions WHERE event_permission_id = $1 LIMIT 1`, eventPermissionColumns)
	var permission models.EventPermission
	if err := r.db.GetContext(ctx, &permission, query, permissionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find event permission: %w", err)
	}
	return &permission, nil
}

// List returns event permissions matching the filter, newest first. The
// From/To bounds apply to the declared event date.
func (r *EventPermissionRepository) List(ctx context.Context, filter models.EventPermissionFilter) ([]models.EventPermission, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Username != "" {
		where = append(where, fmt.Sprintf("username = $%d", len(args)+1))
		args = append(args, filter.Username)
	}
	if filter.From != "" {
		where = append(where, fmt.Sprintf("event_date >= $%d", len(args)+1))
		args = append(args, filter.From)
	}
	if filter.To != "" {
		where = append(where, fmt.Sprintf("event_date <= $%d", len(args)+1))
		args = append(args, filter.To)
	}

	query := fmt.Sprintf(`SELECT %s FROM event_permissions WHERE %s ORDER BY submitted_at DESC`,
		eventPermissionColumns, strings.Join(where, " AND "))
	var permissions []models.EventPermission
	if err := r.db.SelectContext(ctx, &permissions, query, args...); err != nil {
		return nil, fmt.Errorf("list event permissions: %w", err)
	}
	return permissions, nil
}

// UpdateStatus sets the status and, only when a description is supplied,
// the status description.
func (r *EventPermissionRepository) UpdateStatus(ctx context.Context, permissionID, status string, description *string) error {
	const query = `UPDATE event_permissions SET status = $2, status_description = COALESCE($3, status_description) WHERE event_permission_id = $1`
	res, err := r.db.ExecContext(ctx, query, permissionID, status, description)
	if err != nil {
		return fmt.Errorf("update event permission status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByOwner hard-deletes a request owned by the given citizen.
func (r *EventPermissionRepository) DeleteByOwner(ctx context.Context, permissionID, username string) (bool, error) {
	const query = `DELETE FROM event_permissions WHERE event_permission_id = $1 AND username = $2`
	res, err := r.db.ExecContext(ctx, query, permissionID, username)
	if err != nil {
		return false, fmt.Errorf("delete event permission: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete event permission result: %w", err)
	}
	return affected > 0, nil
}

// Count returns the total number of event-permission requests.
func (r *EventPermissionRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM event_permissions`); err != nil {
		return 0, fmt.Errorf("count event permissions: %w", err)
	}
	return total, nil
}
