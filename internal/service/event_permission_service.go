package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	"github.com/nmc-egov/civic-portal-api/internal/repository"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
)

type eventPermissionRepository interface {
	Create(ctx context.Context, permission *models.EventPermission) error
	FindByPermissionID(ctx context.Context, permissionID string) (*models.EventPermission, error)
	List(ctx context.Context, filter models.EventPermissionFilter) ([]models.EventPermission, error)
	UpdateStatus(ctx context.Context, permissionID, status string, description *string) error
	DeleteByOwner(ctx context.Context, permissionID, username string) (bool, error)
}

type eventPermissionNotifier interface {
	SendEventPermissionSubmitted(email, permissionID string)
	SendEventPermissionStatus(email, permissionID, status, description string)
}

// EventPermissionService implements event-permission submission, listing,
// deletion and the admin status transition.
type EventPermissionService struct {
	repo      eventPermissionRepository
	citizens  citizenLookup
	notifier  eventPermissionNotifier
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	now       func() time.Time
}

// NewEventPermissionService constructs an EventPermissionService instance.
func NewEventPermissionService(repo eventPermissionRepository, citizens citizenLookup, notifier eventPermissionNotifier, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *EventPermissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EventPermissionService{
		repo:      repo,
		citizens:  citizens,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Submit stores a new event-permission request for the logged-in citizen.
// The acknowledgement email is skipped when the citizen has no email.
func (s *EventPermissionService) Submit(ctx context.Context, username string, req models.SubmitEventPermissionRequest, uploadDoc *string) (*models.EventPermission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event permission payload")
	}

	citizen, err := s.citizens.FindByMobile(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "citizen not found for this event permission")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizen")
	}

	permission := &models.EventPermission{
		EventPermissionID: models.NewRecordID(models.EventPermissionIDPrefix, s.now()),
		Username:          username,
		EventName:         req.EventName,
		OrganizerName:     req.OrganizerName,
		OrganizerContact:  req.OrganizerContact,
		OrganizerEmail:    req.OrganizerEmail,
		EventDate:         req.EventDate,
		EventTime:         req.EventTime,
		EventLocation:     req.EventLocation,
		ExpectedGathering: req.ExpectedGathering,
		EventDescription:  req.EventDescription,
		SpecialRequests:   req.SpecialRequests,
		UploadDoc:         uploadDoc,
		Status:            models.StatusPending,
	}
	if err := s.repo.Create(ctx, permission); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "event permission id collision")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save event permission")
	}

	s.logger.Info("event permission submitted",
		zap.String("event_permission_id", permission.EventPermissionID),
		zap.String("username", username))
	s.metrics.RecordSubmission("event_permission")
	if s.notifier != nil && citizen.Email != "" {
		s.notifier.SendEventPermissionSubmitted(citizen.Email, permission.EventPermissionID)
	}
	return permission, nil
}

// List returns event permissions matching the filter, newest first.
func (s *EventPermissionService) List(ctx context.Context, filter models.EventPermissionFilter) ([]models.EventPermission, error) {
	permissions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch event permissions")
	}
	if permissions == nil {
		permissions = []models.EventPermission{}
	}
	return permissions, nil
}

// UpdateStatus applies an admin transition and notifies the owning citizen.
func (s *EventPermissionService) UpdateStatus(ctx context.Context, permissionID string, req models.UpdateStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status is required")
	}

	permission, err := s.repo.FindByPermissionID(ctx, permissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "event permission not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch event permission")
	}

	citizen, err := s.citizens.FindByMobile(ctx, permission.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "citizen not found for this event permission")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizen")
	}

	var description *string
	if req.Description != "" {
		description = &req.Description
	}
	if err := s.repo.UpdateStatus(ctx, permissionID, req.Status, description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "event permission not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event permission status")
	}

	s.logger.Info("event permission status updated",
		zap.String("event_permission_id", permissionID),
		zap.String("status", req.Status))
	s.metrics.RecordTransition("event_permission")
	if s.notifier != nil && citizen.Email != "" {
		s.notifier.SendEventPermissionStatus(citizen.Email, permissionID, req.Status, req.Description)
	}
	return nil
}

// Delete removes an event permission owned by the given citizen.
func (s *EventPermissionService) Delete(ctx context.Context, permissionID, username string) error {
	deleted, err := s.repo.DeleteByOwner(ctx, permissionID, username)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event permission")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "event permission not found")
	}
	return nil
}
