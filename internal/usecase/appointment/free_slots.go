package appointment

import (
	"context"
	"time"

	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
)

const slotDuration = 30 * time.Minute

type GetFreeSlots struct {
	repo domain.Repository
}

func NewGetFreeSlots(repo domain.Repository) *GetFreeSlots {
	return &GetFreeSlots{repo: repo}
}

// Execute derives the open 30-minute slot labels for one doctor and day
// from the declared availability window minus non-cancelled bookings.
// A doctor with no active window for that weekday has no offered slots.
func (uc *GetFreeSlots) Execute(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]string, error) {

	if _, err := uc.repo.GetDoctorByID(ctx, doctorID); err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	w, err := uc.repo.GetAvailabilityWindow(ctx, doctorID, int(day.Weekday()))
	if err != nil || !w.Active || w.StartTime == "" || w.EndTime == "" {
		return []string{}, nil
	}

	start, err := time.Parse("15:04", w.StartTime)
	if err != nil {
		return []string{}, nil
	}
	end, err := time.Parse("15:04", w.EndTime)
	if err != nil {
		return []string{}, nil
	}

	bookedTimes, err := uc.repo.ListBookedTimes(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	slots := []string{}
	for cur := start; !cur.Add(slotDuration).After(end); cur = cur.Add(slotDuration) {
		label := cur.Format("15:04")
		if !booked[label] {
			slots = append(slots, label)
		}
	}

	return slots, nil
}
