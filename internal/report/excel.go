package report

import (
	"bytes"
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"

	"mediconnect-server/internal/models"
)

// AppointmentsWorkbook builds an xlsx export of appointments for the admin
// report endpoint.
func AppointmentsWorkbook(appointments []models.Appointment) ([]byte, error) {
	file := excelize.NewFile()
	sheet := "Appointments"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")

	headers := map[string]string{
		"A1": "ID",
		"B1": "Date",
		"C1": "Time",
		"D1": "Doctor",
		"E1": "Patient",
		"F1": "Status",
	}
	for cell, value := range headers {
		file.SetCellValue(sheet, cell, value)
	}

	for i, appt := range appointments {
		row := i + 2
		file.SetCellValue(sheet, fmt.Sprintf("A%d", row), appt.ID)
		file.SetCellValue(sheet, fmt.Sprintf("B%d", row), appt.AppointmentDate)
		if appt.AppointmentTime != nil {
			file.SetCellValue(sheet, fmt.Sprintf("C%d", row), *appt.AppointmentTime)
		}
		if appt.Doctor != nil {
			file.SetCellValue(sheet, fmt.Sprintf("D%d", row), appt.Doctor.FullName)
		}
		if appt.Patient != nil {
			file.SetCellValue(sheet, fmt.Sprintf("E%d", row), appt.Patient.FullName)
		}
		file.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(appt.Status))
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing appointments workbook: %w", err)
	}
	return buf.Bytes(), nil
}
