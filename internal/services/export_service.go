package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ExportService produces the admin's downloadable complaint report.
type ExportService interface {
	ExportComplaintsToExcel(ctx context.Context) ([]byte, error)
}

type exportService struct {
	complaints ComplaintService
	logger     *slog.Logger
}

func NewExportService(complaints ComplaintService, logger *slog.Logger) ExportService {
	return &exportService{
		complaints: complaints,
		logger:     logger,
	}
}

func (s *exportService) ExportComplaintsToExcel(ctx context.Context) ([]byte, error) {
	views, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Complaints"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Complaint ID", "Title", "Description", "Category", "Status", "Created At",
		"Student Name", "Student Email", "Enrollment", "Department",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, view := range views {
		complaint := view.Complaint
		studentName, studentEmail, enrollment, department := "Unknown", "Unknown", "Unknown", "Unknown"
		if view.Profile != nil {
			studentName = view.Profile.Name
			studentEmail = view.Profile.Email
			enrollment = view.Profile.Enrollment
			department = string(view.Profile.Department)
		}

		row := []interface{}{
			complaint.ID,
			complaint.Title,
			complaint.Description,
			complaint.Category,
			string(complaint.Status),
			complaint.CreatedAt.Format("2006-01-02 15:04:05"),
			studentName,
			studentEmail,
			enrollment,
			department,
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported complaints to Excel", "count", len(views))
	return buf.Bytes(), nil
}
