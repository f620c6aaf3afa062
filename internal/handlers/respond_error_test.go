package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
)

func TestRespondBusinessError_KnownCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondBusinessError(c, httperr.ErrBusiness("slot_taken"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "slot_taken")
}

func TestRespondBusinessError_UnexpectedErrorLoggedAndRedacted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondBusinessError(c, errors.New("connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")

	// The cause reaches the server log, never the response body.
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.Contains(t, buf.String(), "connection reset by peer")
}
