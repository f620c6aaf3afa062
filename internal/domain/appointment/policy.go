package appointment

import (
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

// ===============================
// Authorization Policy
// ===============================

// Actor is the authenticated caller evaluated against an appointment.
// DoctorID is zero for patient-role callers and for doctors without a
// directory profile.
type Actor struct {
	UserID   uint
	Role     string
	DoctorID uint
}

func (a Actor) ownsAsPatient(ap *models.Appointment) bool {
	return a.Role == models.RolePatient && ap.PatientID == a.UserID
}

func (a Actor) ownsAsDoctor(ap *models.Appointment) bool {
	return a.Role == models.RoleDoctor && a.DoctorID != 0 && ap.DoctorID == a.DoctorID
}

// transitionRule names who may perform one status move.
type transitionRule struct {
	owningDoctor  bool
	owningPatient bool
}

// policy keys every legal transition to the parties allowed to make it.
// Doctor-only moves (confirm, complete) require the owning doctor;
// cancellation is open to either owner.
var policy = map[[2]Status]transitionRule{
	{StatusPending, StatusConfirmed}:   {owningDoctor: true},
	{StatusPending, StatusCancelled}:   {owningDoctor: true, owningPatient: true},
	{StatusConfirmed, StatusCompleted}: {owningDoctor: true},
	{StatusConfirmed, StatusCancelled}: {owningDoctor: true, owningPatient: true},
}

// AuthorizeTransition checks the transition table first, then the actor
// against the policy for that move.
func AuthorizeTransition(actor Actor, ap *models.Appointment, to Status) error {
	from := Status(ap.Status)
	if err := CanTransition(from, to); err != nil {
		return err
	}

	rule := policy[[2]Status{from, to}]
	if rule.owningDoctor && actor.ownsAsDoctor(ap) {
		return nil
	}
	if rule.owningPatient && actor.ownsAsPatient(ap) {
		return nil
	}
	return httperr.ErrBusiness("not_authorized")
}

// AuthorizeCancel gates the dedicated cancel path. It is deliberately
// looser than AuthorizeTransition: the owning patient may cancel, and any
// doctor-role caller may cancel on the practice's behalf. See DESIGN.md.
func AuthorizeCancel(actor Actor, ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}
	if actor.ownsAsPatient(ap) || actor.Role == models.RoleDoctor {
		return nil
	}
	return httperr.ErrBusiness("not_authorized")
}

// AuthorizeView gates single-appointment reads: the owning patient or any
// doctor-role caller.
func AuthorizeView(actor Actor, ap *models.Appointment) error {
	if actor.Role == models.RoleDoctor {
		return nil
	}
	if ap.PatientID == actor.UserID {
		return nil
	}
	return httperr.ErrBusiness("not_authorized")
}
