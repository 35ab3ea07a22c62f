package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/export"
)

type staticComplaintLister struct {
	complaints []models.Complaint
}

func (s staticComplaintLister) List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error) {
	return s.complaints, nil
}

type staticCitizenLister struct {
	citizens []models.Citizen
}

func (s staticCitizenLister) List(ctx context.Context, filter models.CitizenFilter) ([]models.Citizen, error) {
	return s.citizens, nil
}

type capturingPDFRenderer struct {
	title string
}

func (c *capturingPDFRenderer) Render(data export.Dataset, title string) ([]byte, error) {
	c.title = title
	return []byte("%PDF-1.4"), nil
}

func TestExportComplaintsCSV(t *testing.T) {
	lister := staticComplaintLister{complaints: []models.Complaint{{
		ComplaintID: "CMPT123456",
		Username:    "9999999999",
		Subject:     "Pothole",
		Category:    "Roads",
		Location:    "Main Road",
		Ward:        "12",
		Status:      "Pending",
		SubmittedAt: time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
	}}}
	svc := NewExportService(lister, staticCitizenLister{}, nil, nil, nil)

	result, err := svc.ExportComplaints(context.Background(), ExportFormatCSV, models.ComplaintFilter{})
	require.NoError(t, err)

	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "complaints-export.csv", result.Filename)
	body := string(result.Data)
	assert.True(t, strings.HasPrefix(body, "Complaint ID,Mobile,Subject,Category,Location,Ward,Status,Submitted At"))
	assert.Contains(t, body, "CMPT123456,9999999999,Pothole,Roads,Main Road,12,Pending,2026-08-20 10:30")
}

func TestExportComplaintsDefaultsToCSV(t *testing.T) {
	svc := NewExportService(staticComplaintLister{}, staticCitizenLister{}, nil, nil, nil)

	result, err := svc.ExportComplaints(context.Background(), "", models.ComplaintFilter{})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
}

func TestExportCitizensPDFTitleCountsRecords(t *testing.T) {
	lister := staticCitizenLister{citizens: []models.Citizen{
		{FirstName: "Ravi", LastName: "Kumar", Mobile: "9999999999", Ward: "12"},
		{FirstName: "Sita", Mobile: "8888888888", Ward: "3"},
	}}
	pdf := &capturingPDFRenderer{}
	svc := NewExportService(staticComplaintLister{}, lister, nil, pdf, nil)

	result, err := svc.ExportCitizens(context.Background(), ExportFormatPDF, models.CitizenFilter{})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "citizens-export.pdf", result.Filename)
	assert.Equal(t, "Citizen Roster (2 records)", pdf.title)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewExportService(staticComplaintLister{}, staticCitizenLister{}, nil, nil, nil)

	_, err := svc.ExportComplaints(context.Background(), "xlsx", models.ComplaintFilter{})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "xlsx")
}
