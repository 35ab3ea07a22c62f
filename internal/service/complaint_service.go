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

type complaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	FindByComplaintID(ctx context.Context, complaintID string) (*models.Complaint, error)
	List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, complaintID, status string, description *string) error
	DeleteByOwner(ctx context.Context, complaintID, username string) (bool, error)
}

type citizenLookup interface {
	FindByMobile(ctx context.Context, mobile string) (*models.Citizen, error)
}

type complaintNotifier interface {
	SendComplaintSubmitted(email, complaintID string)
	SendComplaintStatus(email, complaintID, status, description string)
}

// ComplaintService implements complaint submission, listing, deletion and
// the admin status transition.
type ComplaintService struct {
	repo      complaintRepository
	citizens  citizenLookup
	notifier  complaintNotifier
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	now       func() time.Time
}

// NewComplaintService constructs a ComplaintService instance.
func NewComplaintService(repo complaintRepository, citizens citizenLookup, notifier complaintNotifier, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *ComplaintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ComplaintService{
		repo:      repo,
		citizens:  citizens,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Submit stores a new complaint for the logged-in citizen and sends the
// acknowledgement email.
func (s *ComplaintService) Submit(ctx context.Context, username string, req models.SubmitComplaintRequest, imagePath *string) (*models.Complaint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid complaint payload")
	}

	citizen, err := s.citizens.FindByMobile(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "citizen not found for this complaint")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizen")
	}

	complaint := &models.Complaint{
		ComplaintID: models.NewRecordID(models.ComplaintIDPrefix, s.now()),
		Username:    username,
		Subject:     req.Subject,
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
		Ward:        req.Ward,
		ImagePath:   imagePath,
		Status:      models.StatusPending,
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "complaint id collision")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save complaint")
	}

	s.logger.Info("complaint submitted",
		zap.String("complaint_id", complaint.ComplaintID),
		zap.String("username", username))
	s.metrics.RecordSubmission("complaint")
	if s.notifier != nil {
		s.notifier.SendComplaintSubmitted(citizen.Email, complaint.ComplaintID)
	}
	return complaint, nil
}

// List returns complaints matching the filter, newest first.
func (s *ComplaintService) List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error) {
	complaints, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch complaints")
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	return complaints, nil
}

// UpdateStatus applies an admin transition and notifies the owning citizen.
// The stored description is only replaced when the payload provides one.
func (s *ComplaintService) UpdateStatus(ctx context.Context, complaintID string, req models.UpdateStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status is required")
	}

	complaint, err := s.repo.FindByComplaintID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch complaint")
	}

	citizen, err := s.citizens.FindByMobile(ctx, complaint.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "citizen not found for this complaint")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizen")
	}

	var description *string
	if req.Description != "" {
		description = &req.Description
	}
	if err := s.repo.UpdateStatus(ctx, complaintID, req.Status, description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update complaint status")
	}

	s.logger.Info("complaint status updated",
		zap.String("complaint_id", complaintID),
		zap.String("status", req.Status))
	s.metrics.RecordTransition("complaint")
	if s.notifier != nil {
		s.notifier.SendComplaintStatus(citizen.Email, complaintID, req.Status, req.Description)
	}
	return nil
}

// Delete removes a complaint owned by the given citizen.
func (s *ComplaintService) Delete(ctx context.Context, complaintID, username string) error {
	deleted, err := s.repo.DeleteByOwner(ctx, complaintID, username)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete complaint")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
	}
	return nil
}
