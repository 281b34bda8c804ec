package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Employee Code", "Employee Name", "Gross Pay", "Total Deductions", "Net Pay", "Details",
}

// ExportCSV renders one row per payslip for the period, details JSON-encoded
// in the last column.
func (s *service) ExportCSV(ctx context.Context, year, month int) ([]byte, error) {
	payslips, err := s.periodPayslips(ctx, year, month)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, p := range payslips {
		details, err := json.Marshal(p.Details)
		if err != nil {
			return nil, err
		}

		code, name := "", ""
		if p.Employee != nil {
			code = p.Employee.EmployeeCode
			name = p.Employee.FullName()
		}
		row := []string{
			code,
			name,
			p.GrossPay.StringFixed(2),
			p.TotalDeductions.StringFixed(2),
			p.NetPay.StringFixed(2),
			string(details),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the same columns minus details, money as numeric cells.
func (s *service) ExportXLSX(ctx context.Context, year, month int) ([]byte, error) {
	payslips, err := s.periodPayslips(ctx, year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := exportHeader[:len(exportHeader)-1]
	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, p := range payslips {
		row := i + 2

		code, name := "", ""
		if p.Employee != nil {
			code = p.Employee.EmployeeCode
			name = p.Employee.FullName()
		}
		gross, _ := p.GrossPay.Float64()
		deductions, _ := p.TotalDeductions.Float64()
		net, _ := p.NetPay.Float64()

		cells := []interface{}{code, name, gross, deductions, net}
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPayslipPDF renders a single payslip document.
func (s *service) ExportPayslipPDF(ctx context.Context, id string, viewer Viewer) ([]byte, error) {
	p, err := s.findViewablePayslip(ctx, id, viewer)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	if p.Employee != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", p.Employee.FullName(), p.Employee.EmployeeCode))
		pdf.Ln(7)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Payslip ID: %s", p.ID))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(60, 8, "Gross Pay")
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, p.GrossPay.StringFixed(2))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(60, 8, "Total Deductions")
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, p.TotalDeductions.StringFixed(2))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(60, 8, "Net Pay")
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, p.NetPay.StringFixed(2))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Breakdown")
	pdf.Ln(8)

	keys := make([]string, 0, len(p.Details))
	for k := range p.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pdf.SetFont("Arial", "", 10)
	for _, k := range keys {
		pdf.Cell(60, 6, k)
		pdf.Cell(0, 6, p.Details[k])
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
