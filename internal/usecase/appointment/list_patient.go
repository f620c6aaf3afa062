package appointment

import (
	"context"

	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/dto"
)

type ListPatientAppointments struct {
	repo domain.Repository
}

func NewListPatientAppointments(
	repo domain.Repository,
) *ListPatientAppointments {
	return &ListPatientAppointments{
		repo: repo,
	}
}

func (uc *ListPatientAppointments) Execute(
	ctx context.Context,
	patientID uint,
) ([]dto.PatientAppointmentView, error) {

	aps, err := uc.repo.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PatientAppointmentView, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.BuildPatientView(&ap))
	}

	return out, nil
}
