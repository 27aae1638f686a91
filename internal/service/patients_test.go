package service

import (
	"errors"
	"testing"

	"mediconnect-server/internal/models"
)

func TestPatientCreateAllocatesSerial(t *testing.T) {
	store, users, _, _ := newMemStore()
	users.Create(&models.User{Role: models.RolePatient})

	svc := NewPatientService(store)
	patient, err := svc.Create(1, PatientInput{FullName: "Sara Khan", Age: 28, Phone: "01755555555"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if patient.ID != 1 {
		t.Errorf("patient id = %d, want the owning user id 1", patient.ID)
	}
	if patient.SerialNumber < 10000000 || patient.SerialNumber > 99999999 {
		t.Errorf("serial %d is not 8 digits", patient.SerialNumber)
	}
}

func TestPatientCreateUnknownUser(t *testing.T) {
	store, _, _, _ := newMemStore()
	svc := NewPatientService(store)
	if _, err := svc.Create(42, PatientInput{FullName: "Ghost"}); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("err = %v, want ErrResourceNotFound", err)
	}
}

func TestPatientUpdateProtectsSerial(t *testing.T) {
	store, _, patients, _ := newMemStore()
	patients.Create(&models.Patient{ID: 1, FullName: "Sara Khan", SerialNumber: 12345678})

	svc := NewPatientService(store)
	updated, err := svc.Update(1, map[string]interface{}{
		"full_name":     "Sara Rahman",
		"serial_number": 99999999,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FullName != "Sara Rahman" {
		t.Errorf("full name = %q, want Sara Rahman", updated.FullName)
	}
	if updated.SerialNumber != 12345678 {
		t.Errorf("serial = %d, want the original 12345678", updated.SerialNumber)
	}
}

func TestDashboardCounts(t *testing.T) {
	store, _, patients, _ := newMemStore()
	patients.upcomingCount = 2
	patients.visitedCount = 3
	patients.prescriptionCount = 4

	svc := NewPatientService(store)
	stats, err := svc.Dashboard(Identity{UserID: 1, Role: models.RolePatient})
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if stats.UpcomingAppointments != 2 || stats.VisitedDoctors != 3 || stats.ActivePrescriptions != 4 {
		t.Errorf("stats = %+v, want {2 3 4}", *stats)
	}
}

func TestDashboardRoleGate(t *testing.T) {
	store, _, _, _ := newMemStore()
	svc := NewPatientService(store)

	if _, err := svc.Dashboard(Identity{}); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("anonymous: err = %v, want ErrNotAuthenticated", err)
	}
	if _, err := svc.Dashboard(Identity{UserID: 1, Role: models.RoleDoctor}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("doctor: err = %v, want ErrPermissionDenied", err)
	}
	if _, err := svc.UpcomingAppointments(Identity{UserID: 1, Role: models.RoleAdmin}, 5); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("admin upcoming: err = %v, want ErrPermissionDenied", err)
	}
}

func TestSearchByPhonePrefix(t *testing.T) {
	store, _, patients, _ := newMemStore()
	patients.Create(&models.Patient{ID: 1, FullName: "A", Phone: "01711111111", SerialNumber: 11111111})
	patients.Create(&models.Patient{ID: 2, FullName: "B", Phone: "01722222222", SerialNumber: 22222222})

	svc := NewPatientService(store)
	found, err := svc.SearchByPhone("0171")
	if err != nil {
		t.Fatalf("SearchByPhone: %v", err)
	}
	if len(found) != 1 || found[0].ID != 1 {
		t.Errorf("found = %v, want only patient 1", found)
	}
}
