package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

func seedAppointmentAt(t *testing.T, env *testEnv, patientID, doctorID uint, date, slot string, createdAt time.Time) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      slot,
		Status:    string(domain.StatusPending),
		CreatedAt: createdAt,
	}
	require.NoError(t, env.db.Create(ap).Error)
	return ap
}

func TestListPatientAppointments_NewestFirstWithDoctorDetails(t *testing.T) {
	env := newTestEnv(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	patient := seedPatient(t, env, "ana@example.com")
	other := seedPatient(t, env, "bruno@example.com")
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")

	oldest := seedAppointmentAt(t, env, patient.ID, doctor.ID, "2024-06-01", "09:00", base)
	newest := seedAppointmentAt(t, env, patient.ID, doctor.ID, "2024-06-01", "09:30", base.Add(time.Hour))
	seedAppointmentAt(t, env, other.ID, doctor.ID, "2024-06-01", "10:00", base)

	views, err := NewListPatientAppointments(env.repo).Execute(context.Background(), patient.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, newest.ID, views[0].ID)
	assert.Equal(t, oldest.ID, views[1].ID)

	// Enriched with the doctor profile and its linked user.
	assert.Equal(t, doctor.ID, views[0].Doctor.ID)
	assert.Equal(t, "General Medicine", views[0].Doctor.Specialization)
	assert.Equal(t, doctor.User.Name, views[0].Doctor.User.Name)
	assert.Equal(t, doctor.User.Email, views[0].Doctor.User.Email)
}

func TestListDoctorAppointments_NewestFirstWithPatientIdentity(t *testing.T) {
	env := newTestEnv(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	patient := seedPatient(t, env, "ana@example.com")
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")
	other := seedDoctor(t, env, "dr.souza@example.com", "CRM-1002")

	oldest := seedAppointmentAt(t, env, patient.ID, doctor.ID, "2024-06-01", "09:00", base)
	newest := seedAppointmentAt(t, env, patient.ID, doctor.ID, "2024-06-02", "09:00", base.Add(time.Hour))
	seedAppointmentAt(t, env, patient.ID, other.ID, "2024-06-01", "10:00", base)

	views, err := NewListDoctorAppointments(env.repo).Execute(context.Background(), doctor.UserID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, newest.ID, views[0].ID)
	assert.Equal(t, oldest.ID, views[1].ID)
	assert.Equal(t, patient.ID, views[0].Patient.ID)
	assert.Equal(t, patient.Name, views[0].Patient.Name)
}

func TestListDoctorAppointments_MissingProfile(t *testing.T) {
	env := newTestEnv(t)

	// A doctor-role user without a directory entry.
	user := &models.User{Name: "No Profile", Email: "np@example.com", PasswordHash: "x", Role: models.RoleDoctor}
	require.NoError(t, env.db.Create(user).Error)

	_, err := NewListDoctorAppointments(env.repo).Execute(context.Background(), user.ID)
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}

func TestGetAppointment_ViewAuthorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	patient := seedPatient(t, env, "ana@example.com")
	stranger := seedPatient(t, env, "bruno@example.com")
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")
	ap := bookPending(t, env, patient, doctor)

	uc := NewGetAppointment(env.repo)

	got, err := uc.Execute(ctx, patientActor(patient), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)

	_, err = uc.Execute(ctx, patientActor(stranger), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "not_authorized"))

	_, err = uc.Execute(ctx, doctorActor(doctor), ap.ID)
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, patientActor(patient), 999)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
