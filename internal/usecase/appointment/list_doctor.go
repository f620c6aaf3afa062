package appointment

import (
	"context"

	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/dto"
)

type ListDoctorAppointments struct {
	repo domain.Repository
}

func NewListDoctorAppointments(
	repo domain.Repository,
) *ListDoctorAppointments {
	return &ListDoctorAppointments{
		repo: repo,
	}
}

// Execute resolves the caller's doctor profile first: a doctor-role user
// without a directory entry gets doctor_not_found.
func (uc *ListDoctorAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.DoctorAppointmentView, error) {

	doc, err := uc.repo.GetDoctorByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListForDoctor(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DoctorAppointmentView, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.BuildDoctorView(&ap))
	}

	return out, nil
}
