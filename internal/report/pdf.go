package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"mediconnect-server/internal/models"
)

// PDFRenderer renders prescriptions as A4 PDF documents.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// RenderPrescription lays out the prescription header, visit details and the
// medicine table.
func (r *PDFRenderer) RenderPrescription(p *models.Prescription, a *models.Appointment, d *models.Doctor, pt *models.Patient) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "MediConnect Prescription", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Prescription #%d", p.ID), "1", 1, "C", false, 0, "")

	detail(pdf, "Doctor", doctorLabel(d))
	detail(pdf, "Patient", patientLabel(pt))
	detail(pdf, "Date", a.AppointmentDate)
	if a.AppointmentTime != nil {
		detail(pdf, "Time", *a.AppointmentTime)
	}
	detail(pdf, "Notes", p.Notes)

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(70, 8, "Medicine", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Dosage", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Duration", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Instruction", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range p.Medicines {
		name := fmt.Sprintf("medicine %d", line.MedicineID)
		if line.Medicine != nil {
			name = line.Medicine.Name
			if line.Medicine.Strength != "" {
				name += " " + line.Medicine.Strength
			}
		}
		pdf.CellFormat(70, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, line.Dosage, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, line.Duration, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, line.Instruction, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering prescription pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func detail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func doctorLabel(d *models.Doctor) string {
	if d == nil {
		return ""
	}
	if d.Specialization != "" {
		return fmt.Sprintf("%s (%s)", d.FullName, d.Specialization)
	}
	return d.FullName
}

func patientLabel(p *models.Patient) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%s, serial %d", p.FullName, p.SerialNumber)
}
