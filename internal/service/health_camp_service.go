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

type healthCampRepository interface {
	Create(ctx context.Context, request *models.HealthCampRequest) error
	FindByHealthCampID(ctx context.Context, healthCampID string) (*models.HealthCampRequest, error)
	List(ctx context.Context, filter models.HealthCampFilter) ([]models.HealthCampRequest, error)
	UpdateStatus(ctx context.Context, healthCampID, status, description string) error
	DeleteByOwner(ctx context.Context, healthCampID, username string) (bool, error)
}

type healthCampNotifier interface {
	SendHealthCampSubmitted(email, healthCampID, campTitle string)
	SendHealthCampStatus(email, healthCampID, status, description string)
}

// HealthCampService implements health-camp submission, listing, deletion
// and the admin status transition. Unlike the other record kinds, a
// transition proceeds even when the owning citizen row is gone; only the
// notification is skipped.
type HealthCampService struct {
	repo      healthCampRepository
	citizens  citizenLookup
	notifier  healthCampNotifier
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	now       func() time.Time
}

// NewHealthCampService constructs a HealthCampService instance.
func NewHealthCampService(repo healthCampRepository, citizens citizenLookup, notifier healthCampNotifier, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *HealthCampService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &HealthCampService{
		repo:      repo,
		citizens:  citizens,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Submit stores a new health-camp request for the logged-in citizen and
// sends the acknowledgement email including the camp title.
func (s *HealthCampService) Submit(ctx context.Context, username string, req models.SubmitHealthCampRequest, uploadProposal *string) (*models.HealthCampRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid health camp payload")
	}

	citizen, err := s.citizens.FindByMobile(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "citizen not found for this health camp request")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizen")
	}

	request := &models.HealthCampRequest{
		HealthCampID:   models.NewRecordID(models.HealthCampIDPrefix, s.now()),
		Username:       username,
		OrgName:        req.OrgName,
		ContactPerson:  req.ContactPerson,
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		CampTitle:      req.CampTitle,
		CampPurpose:    req.CampPurpose,
		Services:       req.Services,
		DoctorsCount:   req.DoctorsCount,
		CampDate:       req.CampDate,
		Duration:       req.Duration,
		Location:       req.Location,
		GovtCollab:     req.GovtCollab,
		Remarks:        req.Remarks,
		UploadProposal: uploadProposal,
		Status:         models.StatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "health camp id collision")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save health camp request")
	}

	s.logger.Info("health camp request submitted",
		zap.String("health_camp_id", request.HealthCampID),
		zap.String("username", username))
	s.metrics.RecordSubmission("health_camp")
	if s.notifier != nil && citizen.Email != "" {
		s.notifier.SendHealthCampSubmitted(citizen.Email, request.HealthCampID, request.CampTitle)
	}
	return request, nil
}

// List returns health-camp requests matching the filter, newest first.
func (s *HealthCampService) List(ctx context.Context, filter models.HealthCampFilter) ([]models.HealthCampRequest, error) {
	requests, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch health camp requests")
	}
	if requests == nil {
		requests = []models.HealthCampRequest{}
	}
	return requests, nil
}

// UpdateStatus applies an admin transition. The stored description is
// always replaced with the payload's description, even when empty. A
// missing citizen row downgrades to a warning and skips the email.
func (s *HealthCampService) UpdateStatus(ctx context.Context, healthCampID string, req models.UpdateStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status is required")
	}

	request, err := s.repo.FindByHealthCampID(ctx, healthCampID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "health camp request not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch health camp request")
	}

	citizen, err := s.citizens.FindByMobile(ctx, request.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("citizen not found for health camp request",
				zap.String("health_camp_id", healthCampID),
				zap.String("username", request.Username))
			citizen = nil
		} else {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizen")
		}
	}

	if err := s.repo.UpdateStatus(ctx, healthCampID, req.Status, req.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "health camp request not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update health camp status")
	}

	s.logger.Info("health camp status updated",
		zap.String("health_camp_id", healthCampID),
		zap.String("status", req.Status))
	s.metrics.RecordTransition("health_camp")
	if s.notifier != nil && citizen != nil && citizen.Email != "" {
		s.notifier.SendHealthCampStatus(citizen.Email, healthCampID, req.Status, req.Description)
	}
	return nil
}

// Delete removes a health-camp request owned by the given citizen.
func (s *HealthCampService) Delete(ctx context.Context, healthCampID, username string) error {
	deleted, err := s.repo.DeleteByOwner(ctx, healthCampID, username)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete health camp request")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "health camp request not found")
	}
	return nil
}
