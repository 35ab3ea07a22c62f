package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	"github.com/nmc-egov/civic-portal-api/pkg/config"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
)

type mockCitizenRepo struct {
	citizens    map[string]*models.Citizen
	createErr   error
	findErr     error
	lastProfile []string
}

func (m *mockCitizenRepo) FindByMobile(ctx context.Context, mobile string) (*models.Citizen, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if citizen, ok := m.citizens[mobile]; ok {
		copy := *citizen
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockCitizenRepo) Create(ctx context.Context, citizen *models.Citizen) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.citizens == nil {
		m.citizens = make(map[string]*models.Citizen)
	}
	if _, exists := m.citizens[citizen.Mobile]; exists {
		return &pq.Error{Code: "23505"}
	}
	copy := *citizen
	m.citizens[citizen.Mobile] = &copy
	return nil
}

func (m *mockCitizenRepo) UpdateProfile(ctx context.Context, mobile, firstName, lastName, email, ward, address string) error {
	if _, ok := m.citizens[mobile]; !ok {
		return sql.ErrNoRows
	}
	m.lastProfile = []string{firstName, lastName, email, ward, address}
	return nil
}

func (m *mockCitizenRepo) UpdatePassword(ctx context.Context, mobile, passwordHash string) error {
	citizen, ok := m.citizens[mobile]
	if !ok {
		return sql.ErrNoRows
	}
	citizen.PasswordHash = passwordHash
	return nil
}

type fakeWelcomeNotifier struct {
	welcomed []string
}

func (f *fakeWelcomeNotifier) SendRegistrationWelcome(citizen *models.Citizen) {
	f.welcomed = append(f.welcomed, citizen.Mobile)
}

func validRegistration() models.RegisterCitizenRequest {
	return models.RegisterCitizenRequest{
		FirstName: "Ravi",
		LastName:  "Kumar",
		Mobile:    "9999999999",
		Ward:      "12",
		Email:     "ravi@example.com",
		Address:   "Main Road",
		Password:  "secret123",
	}
}

func TestAuthServiceRegister(t *testing.T) {
	repo := &mockCitizenRepo{}
	notifier := &fakeWelcomeNotifier{}
	svc := NewAuthService(repo, notifier, nil, nil, config.AdminConfig{})

	citizen, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(citizen.PasswordHash), []byte("secret123")))
	assert.Equal(t, []string{"9999999999"}, notifier.welcomed)
}

func TestAuthServiceRegisterDuplicateMobile(t *testing.T) {
	repo := &mockCitizenRepo{}
	svc := NewAuthService(repo, &fakeWelcomeNotifier{}, nil, nil, config.AdminConfig{})

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegistration())
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, appErrors.ErrDuplicateMobile.Code, appErr.Code)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := NewAuthService(&mockCitizenRepo{}, nil, nil, nil, config.AdminConfig{})

	req := validRegistration()
	req.Mobile = ""
	_, err := svc.Register(context.Background(), req)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestAuthServiceLogin(t *testing.T) {
	repo := &mockCitizenRepo{}
	svc := NewAuthService(repo, &fakeWelcomeNotifier{}, nil, nil, config.AdminConfig{})
	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	citizen, err := svc.Login(context.Background(), models.LoginRequest{Username: "9999999999", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "9999999999", citizen.Mobile)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "9999999999", Password: "wrong"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "0000000000", Password: "secret123"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestAuthServiceLoginStoreError(t *testing.T) {
	repo := &mockCitizenRepo{findErr: errors.New("connection refused")}
	svc := NewAuthService(repo, nil, nil, nil, config.AdminConfig{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "9999999999", Password: "secret123"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestAuthServiceAdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(&mockCitizenRepo{}, nil, nil, nil, config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	assert.NoError(t, svc.AdminLogin(models.LoginRequest{Username: "admin", Password: "admin-secret"}))

	var appErr *appErrors.Error
	err = svc.AdminLogin(models.LoginRequest{Username: "admin", Password: "wrong"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)

	err = svc.AdminLogin(models.LoginRequest{Username: "intruder", Password: "admin-secret"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestAuthServiceGetProfile(t *testing.T) {
	repo := &mockCitizenRepo{}
	svc := NewAuthService(repo, nil, nil, nil, config.AdminConfig{})
	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), "9999999999")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", profile.FullName)
	assert.Equal(t, "12", profile.Ward)

	_, err = svc.GetProfile(context.Background(), "0000000000")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestAuthServiceUpdateProfileSplitsName(t *testing.T) {
	repo := &mockCitizenRepo{}
	svc := NewAuthService(repo, nil, nil, nil, config.AdminConfig{})
	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	err = svc.UpdateProfile(context.Background(), "9999999999", models.UpdateProfileRequest{
		FullName: "Ravi Chandra Kumar",
		Email:    "ravi@example.com",
		Ward:     "14",
		Address:  "New Street",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ravi", "Chandra Kumar", "ravi@example.com", "14", "New Street"}, repo.lastProfile)
}

func TestAuthServiceUpdateProfileValidation(t *testing.T) {
	svc := NewAuthService(&mockCitizenRepo{}, nil, nil, nil, config.AdminConfig{})

	err := svc.UpdateProfile(context.Background(), "9999999999", models.UpdateProfileRequest{FullName: "", Email: "a@example.com"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestAuthServiceChangePassword(t *testing.T) {
	repo := &mockCitizenRepo{}
	svc := NewAuthService(repo, nil, nil, nil, config.AdminConfig{})
	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	var appErr *appErrors.Error
	err = svc.ChangePassword(context.Background(), "9999999999", models.ChangePasswordRequest{NewPassword: "tiny"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	require.NoError(t, svc.ChangePassword(context.Background(), "9999999999", models.ChangePasswordRequest{NewPassword: "brandnew1"}))
	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "9999999999", Password: "brandnew1"})
	assert.NoError(t, err)
}
