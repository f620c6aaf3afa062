package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

func seedWindow(t *testing.T, env *testEnv, doctorID uint, weekday int, start, end string) {
	t.Helper()
	require.NoError(t, env.db.Create(&models.AvailabilityWindow{
		DoctorID:  doctorID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}).Error)
}

func TestGetFreeSlots_WindowMinusBookings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	patient := seedPatient(t, env, "ana@example.com")
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")

	// 2024-06-01 is a Saturday (weekday 6).
	seedWindow(t, env, doctor.ID, 6, "09:00", "11:00")

	uc := NewGetFreeSlots(env.repo)

	slots, err := uc.Execute(ctx, doctor.ID, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)

	_, err = NewBookAppointment(env.repo, env.audit).Execute(ctx, BookAppointmentInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: "2024-06-01", Time: "09:30",
	})
	require.NoError(t, err)

	slots, err = uc.Execute(ctx, doctor.ID, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, slots)
}

func TestGetFreeSlots_CancelledBookingFreesSlot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	patient := seedPatient(t, env, "ana@example.com")
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")
	seedWindow(t, env, doctor.ID, 6, "09:00", "10:00")

	ap, err := NewBookAppointment(env.repo, env.audit).Execute(ctx, BookAppointmentInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: "2024-06-01", Time: "09:00",
	})
	require.NoError(t, err)

	_, err = NewCancelAppointment(env.repo, env.audit).Execute(ctx, patientActor(patient), ap.ID)
	require.NoError(t, err)

	slots, err := NewGetFreeSlots(env.repo).Execute(ctx, doctor.ID, "2024-06-01")
	require.NoError(t, err)
	assert.Contains(t, slots, "09:00")
}

func TestGetFreeSlots_NoWindowMeansNoSlots(t *testing.T) {
	env := newTestEnv(t)
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")

	slots, err := NewGetFreeSlots(env.repo).Execute(context.Background(), doctor.ID, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetFreeSlots_InvalidInput(t *testing.T) {
	env := newTestEnv(t)
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")

	_, err := NewGetFreeSlots(env.repo).Execute(context.Background(), doctor.ID, "junk")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = NewGetFreeSlots(env.repo).Execute(context.Background(), 999, "2024-06-01")
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}

// Booking outside any declared window still succeeds: availability is
// advisory only.
func TestBookAppointment_OutsideWindowAllowed(t *testing.T) {
	env := newTestEnv(t)

	patient := seedPatient(t, env, "ana@example.com")
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")
	seedWindow(t, env, doctor.ID, 6, "09:00", "10:00")

	ap, err := NewBookAppointment(env.repo, env.audit).Execute(context.Background(), BookAppointmentInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: "2024-06-01", Time: "22:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
}
