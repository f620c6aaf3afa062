package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
)

// respondBusinessError maps domain error codes onto the HTTP taxonomy.
// Anything without a business code is an unexpected failure: the cause is
// logged and the caller gets a redacted 500.
func respondBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		log.Printf("unexpected error: %v", err)
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case "doctor_not_found":
		httperr.NotFound(c, code, "Doctor not found.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Appointment not found.")
	case "not_authorized":
		httperr.Forbidden(c, code, "Not authorized to perform this action.")
	case "slot_taken":
		httperr.BadRequest(c, code, "This time slot is already booked.")
	case "invalid_transition":
		httperr.BadRequest(c, code, "Appointment cannot move to this status.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Unknown appointment status.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Invalid date.")
	default:
		httperr.BadRequest(c, code, "Request could not be processed.")
	}
}
