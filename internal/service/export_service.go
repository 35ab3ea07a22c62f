package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/export"
)

// Export formats accepted by the admin export endpoints.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type complaintLister interface {
	List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error)
}

type citizenLister interface {
	List(ctx context.Context, filter models.CitizenFilter) ([]models.Citizen, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered export document ready for download.
type ExportResult struct {
	ContentType string
	Filename    string
	Data        []byte
}

// ExportService renders complaint and citizen rosters as CSV or PDF.
type ExportService struct {
	complaints complaintLister
	citizens   citizenLister
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(complaints complaintLister, citizens citizenLister, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{complaints: complaints, citizens: citizens, csv: csv, pdf: pdf, logger: logger}
}

// ExportComplaints renders the complaint register in the requested format.
func (s *ExportService) ExportComplaints(ctx context.Context, format string, filter models.ComplaintFilter) (*ExportResult, error) {
	complaints, err := s.complaints.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch complaints")
	}

	dataset := export.Dataset{
		Headers: []string{"Complaint ID", "Mobile", "Subject", "Category", "Location", "Ward", "Status", "Submitted At"},
	}
	for _, c := range complaints {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Complaint ID": c.ComplaintID,
			"Mobile":       c.Username,
			"Subject":      c.Subject,
			"Category":     c.Category,
			"Location":     c.Location,
			"Ward":         c.Ward,
			"Status":       c.Status,
			"Submitted At": c.SubmittedAt.Format("2006-01-02 15:04"),
		})
	}
	return s.render(format, dataset, "complaints", "Complaint Register")
}

// ExportCitizens renders the citizen roster in the requested format.
func (s *ExportService) ExportCitizens(ctx context.Context, format string, filter models.CitizenFilter) (*ExportResult, error) {
	citizens, err := s.citizens.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizens")
	}

	dataset := export.Dataset{
		Headers: []string{"Name", "Mobile", "Email", "Ward", "Address", "Registered At"},
	}
	for _, c := range citizens {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Name":          c.FullName(),
			"Mobile":        c.Mobile,
			"Email":         c.Email,
			"Ward":          c.Ward,
			"Address":       c.Address,
			"Registered At": c.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return s.render(format, dataset, "citizens", "Citizen Roster")
}

func (s *ExportService) render(format string, dataset export.Dataset, name, title string) (*ExportResult, error) {
	switch format {
	case ExportFormatCSV, "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s-export.csv", name),
			Data:        data,
		}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, title+" ("+strconv.Itoa(len(dataset.Rows))+" records)")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s-export.pdf", name),
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}
