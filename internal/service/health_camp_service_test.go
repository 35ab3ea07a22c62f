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

type mockHealthCampRepo struct {
	requests map[string]*models.HealthCampRequest
}

func (m *mockHealthCampRepo) Create(ctx context.Context, request *models.HealthCampRequest) error {
	if m.requests == nil {
		m.requests = make(map[string]*models.HealthCampRequest)
	}
	copy := *request
	m.requests[request.HealthCampID] = &copy
	return nil
}

func (m *mockHealthCampRepo) FindByHealthCampID(ctx context.Context, healthCampID string) (*models.HealthCampRequest, error) {
	if request, ok := m.requests[healthCampID]; ok {
		copy := *request
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockHealthCampRepo) List(ctx context.Context, filter models.HealthCampFilter) ([]models.HealthCampRequest, error) {
	var out []models.HealthCampRequest
	for _, r := range m.requests {
		if filter.Username != "" && r.Username != filter.Username {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockHealthCampRepo) UpdateStatus(ctx context.Context, healthCampID, status, description string) error {
	request, ok := m.requests[healthCampID]
	if !ok {
		return sql.ErrNoRows
	}
	request.Status = status
	request.StatusDescription = description
	return nil
}

func (m *mockHealthCampRepo) DeleteByOwner(ctx context.Context, healthCampID, username string) (bool, error) {
	request, ok := m.requests[healthCampID]
	if !ok || request.Username != username {
		return false, nil
	}
	delete(m.requests, healthCampID)
	return true, nil
}

type fakeHealthCampNotifier struct {
	submitted []string
	statuses  []string
}

func (f *fakeHealthCampNotifier) SendHealthCampSubmitted(email, healthCampID, campTitle string) {
	f.submitted = append(f.submitted, email+":"+healthCampID+":"+campTitle)
}

func (f *fakeHealthCampNotifier) SendHealthCampStatus(email, healthCampID, status, description string) {
	f.statuses = append(f.statuses, email+":"+healthCampID+":"+status)
}

func validHealthCamp() models.SubmitHealthCampRequest {
	return models.SubmitHealthCampRequest{
		OrgName:       "Seva Trust",
		ContactPerson: "Ravi Kumar",
		ContactNumber: "9999999999",
		CampTitle:     "Free Eye Checkup",
		CampDate:      "2026-10-05",
		Location:      "Community Hall",
	}
}

func TestHealthCampServiceSubmit(t *testing.T) {
	repo := &mockHealthCampRepo{}
	notifier := &fakeHealthCampNotifier{}
	svc := NewHealthCampService(repo, registeredCitizens(), notifier, nil, nil, nil)
	svc.now = func() time.Time { return time.UnixMilli(1757000123456) }

	request, err := svc.Submit(context.Background(), "9999999999", validHealthCamp(), nil)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^HCMP\d{6}$`), request.HealthCampID)
	assert.Equal(t, models.StatusPending, request.Status)
	require.Len(t, notifier.submitted, 1)
	assert.Equal(t, "ravi@example.com:"+request.HealthCampID+":Free Eye Checkup", notifier.submitted[0])
}

func TestHealthCampServiceSubmitMissingCitizen(t *testing.T) {
	repo := &mockHealthCampRepo{}
	svc := NewHealthCampService(repo, &mockCitizenRepo{}, &fakeHealthCampNotifier{}, nil, nil, nil)

	_, err := svc.Submit(context.Background(), "0000000000", validHealthCamp(), nil)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Empty(t, repo.requests)
}

func TestHealthCampServiceSubmitValidation(t *testing.T) {
	svc := NewHealthCampService(&mockHealthCampRepo{}, registeredCitizens(), &fakeHealthCampNotifier{}, nil, nil, nil)

	req := validHealthCamp()
	req.CampTitle = ""
	_, err := svc.Submit(context.Background(), "9999999999", req, nil)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestHealthCampServiceUpdateStatus(t *testing.T) {
	repo := &mockHealthCampRepo{}
	notifier := &fakeHealthCampNotifier{}
	svc := NewHealthCampService(repo, registeredCitizens(), notifier, nil, nil, nil)
	svc.now = func() time.Time { return time.UnixMilli(1757000123456) }

	request, err := svc.Submit(context.Background(), "9999999999", validHealthCamp(), nil)
	require.NoError(t, err)

	req := models.UpdateStatusRequest{Status: "Approved", Description: "Slot confirmed"}
	require.NoError(t, svc.UpdateStatus(context.Background(), request.HealthCampID, req))

	stored := repo.requests[request.HealthCampID]
	assert.Equal(t, "Approved", stored.Status)
	assert.Equal(t, "Slot confirmed", stored.StatusDescription)
	require.Len(t, notifier.statuses, 1)
	assert.Equal(t, "ravi@example.com:"+request.HealthCampID+":Approved", notifier.statuses[0])
}

func TestHealthCampServiceUpdateStatusOverwritesDescription(t *testing.T) {
	repo := &mockHealthCampRepo{}
	svc := NewHealthCampService(repo, registeredCitizens(), &fakeHealthCampNotifier{}, nil, nil, nil)

	request, err := svc.Submit(context.Background(), "9999999999", validHealthCamp(), nil)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), request.HealthCampID, models.UpdateStatusRequest{Status: "Approved", Description: "Slot confirmed"}))

	// An empty description clears the stored one, unlike complaints.
	require.NoError(t, svc.UpdateStatus(context.Background(), request.HealthCampID, models.UpdateStatusRequest{Status: "Completed"}))
	stored := repo.requests[request.HealthCampID]
	assert.Equal(t, "Completed", stored.Status)
	assert.Equal(t, "", stored.StatusDescription)
}

func TestHealthCampServiceUpdateStatusProceedsWithoutCitizen(t *testing.T) {
	repo := &mockHealthCampRepo{}
	citizens := registeredCitizens()
	notifier := &fakeHealthCampNotifier{}
	svc := NewHealthCampService(repo, citizens, notifier, nil, nil, nil)

	request, err := svc.Submit(context.Background(), "9999999999", validHealthCamp(), nil)
	require.NoError(t, err)

	delete(citizens.citizens, "9999999999")

	require.NoError(t, svc.UpdateStatus(context.Background(), request.HealthCampID, models.UpdateStatusRequest{Status: "Approved"}))
	assert.Equal(t, "Approved", repo.requests[request.HealthCampID].Status)
	assert.Empty(t, notifier.statuses)
}

func TestHealthCampServiceUpdateStatusNotFound(t *testing.T) {
	svc := NewHealthCampService(&mockHealthCampRepo{}, registeredCitizens(), &fakeHealthCampNotifier{}, nil, nil, nil)

	err := svc.UpdateStatus(context.Background(), "HCMP000000", models.UpdateStatusRequest{Status: "Approved"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestHealthCampServiceDelete(t *testing.T) {
	repo := &mockHealthCampRepo{}
	svc := NewHealthCampService(repo, registeredCitizens(), &fakeHealthCampNotifier{}, nil, nil, nil)

	request, err := svc.Submit(context.Background(), "9999999999", validHealthCamp(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), request.HealthCampID, "9999999999"))

	err = svc.Delete(context.Background(), request.HealthCampID, "9999999999")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
