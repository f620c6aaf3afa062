package appointment

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

// An insert that skips the booking flow entirely still hits the partial
// unique index on (doctor_id, date, time).
func TestSlotIndex_BlocksDuplicateDirectInsert(t *testing.T) {
	env := newTestEnv(t)

	patient := seedPatient(t, env, "ana@example.com")
	other := seedPatient(t, env, "bruno@example.com")
	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")

	first := &models.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      "2024-06-01",
		Time:      "10:00",
		Status:    string(domain.StatusPending),
	}
	require.NoError(t, env.db.Create(first).Error)

	err := env.db.Create(&models.Appointment{
		PatientID: other.ID,
		DoctorID:  doctor.ID,
		Date:      "2024-06-01",
		Time:      "10:00",
		Status:    string(domain.StatusPending),
	}).Error
	require.Error(t, err)
	assert.True(t, httperr.IsUniqueViolation(err))

	// Cancelled rows fall outside the index predicate.
	require.NoError(t, env.db.Model(first).Update("status", string(domain.StatusCancelled)).Error)
	assert.NoError(t, env.db.Create(&models.Appointment{
		PatientID: other.ID,
		DoctorID:  doctor.ID,
		Date:      "2024-06-01",
		Time:      "10:00",
		Status:    string(domain.StatusPending),
	}).Error)
}

func TestBookAppointment_ConcurrentAttemptsSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doctor := seedDoctor(t, env, "dr.lima@example.com", "CRM-1001")
	uc := NewBookAppointment(env.repo, env.audit)

	const attempts = 8
	patients := make([]*models.User, attempts)
	for i := range patients {
		patients[i] = seedPatient(t, env, fmt.Sprintf("p%d@example.com", i))
	}

	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, BookAppointmentInput{
				PatientID: patients[i].ID,
				DoctorID:  doctor.ID,
				Date:      "2024-06-01",
				Time:      "10:00",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		assert.True(t, httperr.IsBusiness(err, "slot_taken"), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, winners)
}
