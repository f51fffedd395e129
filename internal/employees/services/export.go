package services

import (
	"bytes"
	"context"
	"fmt"

	"go-staffhub/internal/employees/models"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Name", "Email", "Phone", "Position", "Department", "Salary band", "Status", "Hired"}

// Export renders the employees matching the filter into an xlsx workbook.
func (s *Service) Export(ctx context.Context, filter ListFilter) ([]byte, error) {
	employees, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return renderWorkbook(employees)
}

func renderWorkbook(employees []models.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Employees"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, emp := range employees {
		hired := ""
		if emp.HiredAt != nil {
			hired = emp.HiredAt.Format("2006-01-02")
		}
		row := []any{
			emp.FullName(),
			emp.Email,
			emp.Phone,
			emp.Position,
			emp.Department,
			emp.SalaryBand,
			emp.Status,
			hired,
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
