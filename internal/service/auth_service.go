package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	"github.com/nmc-egov/civic-portal-api/internal/repository"
	"github.com/nmc-egov/civic-portal-api/pkg/config"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
)

const bcryptCost = 10

type authCitizenRepository interface {
	FindByMobile(ctx context.Context, mobile string) (*models.Citizen, error)
	Create(ctx context.Context, citizen *models.Citizen) error
	UpdateProfile(ctx context.Context, mobile, firstName, lastName, email, ward, address string) error
	UpdatePassword(ctx context.Context, mobile, passwordHash string) error
}

type welcomeNotifier interface {
	SendRegistrationWelcome(citizen *models.Citizen)
}

// AuthService provides registration, login and profile use cases for
// citizens, plus the single-admin login check.
type AuthService struct {
	repo      authCitizenRepository
	notifier  welcomeNotifier
	validator *validator.Validate
	logger    *zap.Logger
	admin     config.AdminConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authCitizenRepository, notifier welcomeNotifier, validate *validator.Validate, logger *zap.Logger, admin config.AdminConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, notifier: notifier, validator: validate, logger: logger, admin: admin}
}

// Register creates a citizen account and sends the welcome email.
func (s *AuthService) Register(ctx context.Context, req models.RegisterCitizenRequest) (*models.Citizen, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	citizen := &models.Citizen{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Mobile:       req.Mobile,
		Ward:         req.Ward,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, citizen); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateMobile, "mobile number already registered")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register citizen")
	}

	s.logger.Info("citizen registered", zap.String("mobile", citizen.Mobile))
	if s.notifier != nil {
		s.notifier.SendRegistrationWelcome(citizen)
	}
	return citizen, nil
}

// Login verifies citizen credentials. The username is the mobile number.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.Citizen, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	citizen, err := s.repo.FindByMobile(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizen")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(citizen.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	return citizen, nil
}

// AdminLogin verifies the configured administrator credentials.
func (s *AuthService) AdminLogin(req models.LoginRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	if req.Username != s.admin.Username {
		s.logger.Warn("admin login rejected", zap.String("username", req.Username))
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid username or password")
	}
	return nil
}

// GetProfile returns the owner-facing profile view.
func (s *AuthService) GetProfile(ctx context.Context, mobile string) (*models.Profile, error) {
	citizen, err := s.repo.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch profile")
	}
	return &models.Profile{
		FullName: citizen.FullName(),
		Mobile:   citizen.Mobile,
		Email:    citizen.Email,
		Address:  citizen.Address,
		Ward:     citizen.Ward,
	}, nil
}

// UpdateProfile mutates the caller's profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, mobile string, req models.UpdateProfileRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "full name and email are required")
	}

	firstName, lastName := req.SplitName()
	if firstName == "" {
		return appErrors.Clone(appErrors.ErrValidation, "full name and email are required")
	}

	if err := s.repo.UpdateProfile(ctx, mobile, firstName, lastName, req.Email, req.Ward, req.Address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}
	return nil
}

// ChangePassword replaces the caller's stored password hash.
func (s *AuthService) ChangePassword(ctx context.Context, mobile string, req models.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, mobile, string(hash)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update password")
	}
	return nil
}
