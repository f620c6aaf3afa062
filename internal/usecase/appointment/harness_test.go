package appointment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/medpoint-app/clinic-scheduler/internal/audit"
	dbpkg "github.com/medpoint-app/clinic-scheduler/internal/db"
	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/infra/repository"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

type testEnv struct {
	db    *gorm.DB
	repo  *repository.AppointmentGormRepository
	audit *audit.Dispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One in-memory database per test: the pool must not open a second
	// connection, which sqlite would treat as a fresh empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	return &testEnv{
		db:    db,
		repo:  repository.NewAppointmentGormRepository(db),
		audit: audit.NewDispatcher(audit.New(db)),
	}
}

func seedPatient(t *testing.T, env *testEnv, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Patient " + email,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RolePatient,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func seedDoctor(t *testing.T, env *testEnv, email, license string) *models.Doctor {
	t.Helper()

	user := &models.User{
		Name:         "Doctor " + email,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleDoctor,
	}
	require.NoError(t, env.db.Create(user).Error)

	doctor := &models.Doctor{
		UserID:          user.ID,
		Specialization:  "General Medicine",
		Experience:      5,
		Education:       "MBBS",
		LicenseNumber:   license,
		ConsultationFee: 150,
	}
	require.NoError(t, env.db.Create(doctor).Error)

	doctor.User = *user
	return doctor
}

func doctorActor(doc *models.Doctor) domain.Actor {
	return domain.Actor{UserID: doc.UserID, Role: models.RoleDoctor, DoctorID: doc.ID}
}

func patientActor(u *models.User) domain.Actor {
	return domain.Actor{UserID: u.ID, Role: models.RolePatient}
}
