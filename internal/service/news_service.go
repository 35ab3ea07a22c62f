package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
)

const minNewsMessageLength = 5

type newsRepository interface {
	List(ctx context.Context) ([]models.ScrollingNews, error)
	GetByID(ctx context.Context, id string) (*models.ScrollingNews, error)
	Create(ctx context.Context, item *models.ScrollingNews) error
	Update(ctx context.Context, id, message string) error
	Delete(ctx context.Context, id string) (bool, error)
}

// NewsService manages the scrolling news ticker shown on the public portal.
type NewsService struct {
	repo   newsRepository
	logger *zap.Logger
}

// NewNewsService constructs a NewsService instance.
func NewNewsService(repo newsRepository, logger *zap.Logger) *NewsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsService{repo: repo, logger: logger}
}

// List returns all news items, newest first.
func (s *NewsService) List(ctx context.Context) ([]models.ScrollingNews, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch news items")
	}
	if items == nil {
		items = []models.ScrollingNews{}
	}
	return items, nil
}

// Get returns a single news item by ID.
func (s *NewsService) Get(ctx context.Context, id string) (*models.ScrollingNews, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "news item not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch news item")
	}
	return item, nil
}

// Create adds a news item. The message is trimmed and must be at least
// five characters long.
func (s *NewsService) Create(ctx context.Context, message string) (*models.ScrollingNews, error) {
	message, err := normalizeNewsMessage(message)
	if err != nil {
		return nil, err
	}

	item := &models.ScrollingNews{Message: message}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create news item")
	}
	s.logger.Info("news item created", zap.String("id", item.ID))
	return item, nil
}

// Update replaces the message of an existing news item.
func (s *NewsService) Update(ctx context.Context, id, message string) error {
	message, err := normalizeNewsMessage(message)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, message); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "news item not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update news item")
	}
	return nil
}

// Delete removes a news item.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete news item")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "news item not found")
	}
	return nil
}

func normalizeNewsMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if len(message) < minNewsMessageLength {
		return "", appErrors.Clone(appErrors.ErrValidation, "news message must be at least 5 characters")
	}
	return message, nil
}
