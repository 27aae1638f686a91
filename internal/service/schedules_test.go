package service

import (
	"errors"
	"testing"

	"mediconnect-server/internal/models"
)

func TestScheduleCreateDoctorOnly(t *testing.T) {
	store, _, _, _ := newMemStore()
	svc := NewScheduleService(store)

	if _, err := svc.Create(ScheduleInput{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00", MaxPatients: 10}, Identity{}); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("anonymous: err = %v, want ErrNotAuthenticated", err)
	}
	if _, err := svc.Create(ScheduleInput{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00", MaxPatients: 10}, Identity{UserID: 1, Role: models.RolePatient}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("patient: err = %v, want ErrPermissionDenied", err)
	}

	schedule, err := svc.Create(ScheduleInput{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00", MaxPatients: 10}, Identity{UserID: 7, Role: models.RoleDoctor})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if schedule.DoctorID != 7 {
		t.Errorf("doctor id = %d, want the caller id 7", schedule.DoctorID)
	}
	if schedule.DurationPerAppointment != 30 {
		t.Errorf("duration = %d, want the default 30", schedule.DurationPerAppointment)
	}
}

func TestScheduleUpdateOwnership(t *testing.T) {
	store, _, _, _ := newMemStore()
	svc := NewScheduleService(store)
	owner := Identity{UserID: 7, Role: models.RoleDoctor}

	schedule, err := svc.Create(ScheduleInput{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00", MaxPatients: 10}, owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(schedule.ID, map[string]interface{}{"end_time": "13:00"}, Identity{UserID: 8, Role: models.RoleDoctor}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("foreign doctor: err = %v, want ErrPermissionDenied", err)
	}

	updated, err := svc.Update(schedule.ID, map[string]interface{}{"end_time": "13:00", "doctor_id": uint(8)}, owner)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.EndTime != "13:00" {
		t.Errorf("end time = %s, want 13:00", updated.EndTime)
	}
	if updated.DoctorID != 7 {
		t.Errorf("doctor id = %d, ownership must not move", updated.DoctorID)
	}

	admin := Identity{UserID: 99, Role: models.RoleAdmin}
	if _, err := svc.Update(schedule.ID, map[string]interface{}{"start_time": "10:00"}, admin); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}

func TestScheduleDelete(t *testing.T) {
	store, _, _, _ := newMemStore()
	svc := NewScheduleService(store)
	owner := Identity{UserID: 7, Role: models.RoleDoctor}

	schedule, err := svc.Create(ScheduleInput{DayOfWeek: "Friday", StartTime: "09:00", EndTime: "12:00", MaxPatients: 10}, owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(schedule.ID, Identity{UserID: 8, Role: models.RoleDoctor}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("foreign doctor: err = %v, want ErrPermissionDenied", err)
	}
	if err := svc.Delete(schedule.ID, owner); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(schedule.ID, owner); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("second delete: err = %v, want ErrResourceNotFound", err)
	}
}
