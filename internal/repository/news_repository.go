package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nmc-egov/civic-portal-api/internal/models"
)

const newsColumns = `id, message, created_at, updated_at`

// NewsRepository provides persistence for scrolling-news items.
type NewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository creates the repository.
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// List returns all news items, newest first.
func (r *NewsRepository) List(ctx context.Context) ([]models.ScrollingNews, error) {
	query := fmt.Sprintf(`SELECT %s FROM scrolling_news ORDER BY created_at DESC`, newsColumns)
	var items []models.ScrollingNews
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list scrolling news: %w", err)
	}
	return items, nil
}

// GetByID returns a single news item.
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*models.ScrollingNews, error) {
	query := fmt.Sprintf(`SELECT %s FROM scrolling_news WHERE id = $1 LIMIT 1`, newsColumns)
	var item models.ScrollingNews
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find news item: %w", err)
	}
	return &item, nil
}

// Create inserts a new news item.
func (r *NewsRepository) Create(ctx context.Context, item *models.ScrollingNews) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	const query = `INSERT INTO scrolling_news (id, message, created_at, updated_at)
VALUES (:id, :message, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create news item: %w", err)
	}
	return nil
}

// Update replaces the message of an existing news item.
func (r *NewsRepository) Update(ctx context.Context, id, message string) error {
	const query = `UPDATE scrolling_news SET message = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, message, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update news item: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a news item. Returns false when nothing matched.
func (r *NewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scrolling_news WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete news item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete news item result: %w", err)
	}
	return affected > 0, nil
}
