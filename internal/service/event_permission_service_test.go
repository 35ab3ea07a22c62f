package service

import (
	"context"
	"database/sql"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
)

type mockEventPermissionRepo struct {
	permissions map[string]*models.EventPermission
}

func (m *mockEventPermissionRepo) Create(ctx context.Context, permission *models.EventPermission) error {
	if m.permissions == nil {
		m.permissions = make(map[string]*models.EventPermission)
	}
	copy := *permission
	m.permissions[permission.EventPermissionID] = &copy
	return nil
}

func (m *mockEventPermissionRepo) FindByPermissionID(ctx context.Context, permissionID string) (*models.EventPermission, error) {
	if permission, ok := m.permissions[permissionID]; ok {
		copy := *permission
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEventPermissionRepo) List(ctx context.Context, filter models.EventPermissionFilter) ([]models.EventPermission, error) {
	var out []models.EventPermission
	for _, p := range m.permissions {
		if filter.Username != "" && p.Username != filter.Username {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockEventPermissionRepo) UpdateStatus(ctx context.Context, permissionID, status string, description *string) error {
	permission, ok := m.permissions[permissionID]
	if !ok {
		return sql.ErrNoRows
	}
	permission.Status = status
	if description != nil {
		permission.StatusDescription = *description
	}
	return nil
}

func (m *mockEventPermissionRepo) DeleteByOwner(ctx context.Context, permissionID, username string) (bool, error) {
	permission, ok := m.permissions[permissionID]
	if !ok || permission.Username != username {
		return false, nil
	}
	delete(m.permissions, permissionID)
	return true, nil
}

type fakeEventNotifier struct {
	submitted []string
	statuses  []string
}

func (f *fakeEventNotifier) SendEventPermissionSubmitted(email, permissionID string) {
	f.submitted = append(f.submitted, email+":"+permissionID)
}

func (f *fakeEventNotifier) SendEventPermissionStatus(email, permissionID, status, description string) {
	f.statuses = append(f.statuses, email+":"+permissionID+":"+status)
}

func validEventPermission() models.SubmitEventPermissionRequest {
	return models.SubmitEventPermissionRequest{
		EventName:        "Ganesh Festival",
		OrganizerName:    "Ravi Kumar",
		OrganizerContact: "9999999999",
		EventDate:        "2026-09-15",
		EventLocation:    "Ward 12 Ground",
	}
}

func TestEventPermissionServiceSubmit(t *testing.T) {
	repo := &mockEventPermissionRepo{}
	notifier := &fakeEventNotifier{}
	svc := NewEventPermissionService(repo, registeredCitizens(), notifier, nil, nil, nil)
	svc.now = func() time.Time { return time.UnixMilli(1757000123456) }

	permission, err := svc.Submit(context.Background(), "9999999999", validEventPermission(), nil)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^EVNT\d{6}$`), permission.EventPermissionID)
	assert.Equal(t, models.StatusPending, permission.Status)
	assert.Equal(t, []string{"ravi@example.com:" + permission.EventPermissionID}, notifier.submitted)
}

func TestEventPermissionServiceSubmitSkipsEmailWhenCitizenHasNone(t *testing.T) {
	citizens := &mockCitizenRepo{citizens: map[string]*models.Citizen{
		"8888888888": {Mobile: "8888888888", FirstName: "Sita"},
	}}
	notifier := &fakeEventNotifier{}
	svc := NewEventPermissionService(&mockEventPermissionRepo{}, citizens, notifier, nil, nil, nil)

	permission, err := svc.Submit(context.Background(), "8888888888", validEventPermission(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, permission.EventPermissionID)
	assert.Empty(t, notifier.submitted)
}

func TestEventPermissionServiceSubmitMissingCitizen(t *testing.T) {
	repo := &mockEventPermissionRepo{}
	svc := NewEventPermissionService(repo, &mockCitizenRepo{}, &fakeEventNotifier{}, nil, nil, nil)

	_, err := svc.Submit(context.Background(), "0000000000", validEventPermission(), nil)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Empty(t, repo.permissions)
}

func TestEventPermissionServiceSubmitValidation(t *testing.T) {
	svc := NewEventPermissionService(&mockEventPermissionRepo{}, registeredCitizens(), &fakeEventNotifier{}, nil, nil, nil)

	req := validEventPermission()
	req.EventName = ""
	_, err := svc.Submit(context.Background(), "9999999999", req, nil)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestEventPermissionServiceUpdateStatus(t *testing.T) {
	repo := &mockEventPermissionRepo{}
	notifier := &fakeEventNotifier{}
	svc := NewEventPermissionService(repo, registeredCitizens(), notifier, nil, nil, nil)
	svc.now = func() time.Time { return time.UnixMilli(1757000123456) }

	permission, err := svc.Submit(context.Background(), "9999999999", validEventPermission(), nil)
	require.NoError(t, err)

	req := models.UpdateStatusRequest{Status: "Approved", Description: "Permission granted"}
	require.NoError(t, svc.UpdateStatus(context.Background(), permission.EventPermissionID, req))

	stored := repo.permissions[permission.EventPermissionID]
	assert.Equal(t, "Approved", stored.Status)
	assert.Equal(t, "Permission granted", stored.StatusDescription)
	require.Len(t, notifier.statuses, 1)
	assert.Equal(t, "ravi@example.com:"+permission.EventPermissionID+":Approved", notifier.statuses[0])
}

func TestEventPermissionServiceUpdateStatusSkipsEmailWhenCitizenHasNone(t *testing.T) {
	citizens := &mockCitizenRepo{citizens: map[string]*models.Citizen{
		"8888888888": {Mobile: "8888888888", FirstName: "Sita"},
	}}
	repo := &mockEventPermissionRepo{}
	notifier := &fakeEventNotifier{}
	svc := NewEventPermissionService(repo, citizens, notifier, nil, nil, nil)

	permission, err := svc.Submit(context.Background(), "8888888888", validEventPermission(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), permission.EventPermissionID, models.UpdateStatusRequest{Status: "Approved"}))
	assert.Equal(t, "Approved", repo.permissions[permission.EventPermissionID].Status)
	assert.Empty(t, notifier.statuses)
}

func TestEventPermissionServiceUpdateStatusMissingCitizenAborts(t *testing.T) {
	repo := &mockEventPermissionRepo{}
	citizens := registeredCitizens()
	notifier := &fakeEventNotifier{}
	svc := NewEventPermissionService(repo, citizens, notifier, nil, nil, nil)

	permission, err := svc.Submit(context.Background(), "9999999999", validEventPermission(), nil)
	require.NoError(t, err)

	delete(citizens.citizens, "9999999999")

	err = svc.UpdateStatus(context.Background(), permission.EventPermissionID, models.UpdateStatusRequest{Status: "Approved"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, models.StatusPending, repo.permissions[permission.EventPermissionID].Status)
	assert.Empty(t, notifier.statuses)
}

func TestEventPermissionServiceDelete(t *testing.T) {
	repo := &mockEventPermissionRepo{}
	svc := NewEventPermissionService(repo, registeredCitizens(), &fakeEventNotifier{}, nil, nil, nil)

	permission, err := svc.Submit(context.Background(), "9999999999", validEventPermission(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), permission.EventPermissionID, "9999999999"))

	err = svc.Delete(context.Background(), permission.EventPermissionID, "9999999999")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
