package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"gorm.io/gorm"

	"github.com/medpoint-app/clinic-scheduler/internal/config"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/httpresp"
	"github.com/medpoint-app/clinic-scheduler/internal/middleware"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

// PaymentHandler raises Mercado Pago checkout preferences for consultation
// fees and settles them from the gateway webhook.
type PaymentHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewPaymentHandler(db *gorm.DB, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{db: db, cfg: cfg}
}

type CreateOrderRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

// PublicKey exposes the publishable key for the checkout widget.
func (h *PaymentHandler) PublicKey(c *gin.Context) {
	if h.cfg.MPPublicKey == "" {
		httperr.Internal(c, "gateway_not_configured", "Payment gateway not configured.")
		return
	}
	httpresp.OK(c, "", gin.H{"public_key": h.cfg.MPPublicKey})
}

// CreateOrder opens a checkout preference for the consultation fee of the
// caller's own appointment.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.cfg.MPAccessToken == "" {
		httperr.Internal(c, "gateway_not_configured", "Payment gateway not configured.")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide an appointment_id.")
		return
	}

	var ap models.Appointment
	if err := h.db.Preload("Doctor").Preload("Doctor.User").
		First(&ap, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if ap.PatientID != userID {
		httperr.Forbidden(c, "not_authorized", "Not authorized to pay for this appointment.")
		return
	}

	reference := "pay_" + uuid.NewString()

	record := models.Payment{
		AppointmentID: ap.ID,
		Reference:     reference,
		Amount:        ap.Doctor.ConsultationFee,
		Currency:      "BRL",
		Status:        models.PaymentStatusCreated,
	}
	if err := h.db.Create(&record).Error; err != nil {
		log.Printf("failed to create payment record: %v", err)
		httperr.Internal(c, "failed_to_create_order", "Failed to create order.")
		return
	}

	mpCfg, err := mpconfig.New(h.cfg.MPAccessToken)
	if err != nil {
		log.Printf("failed to init payment gateway: %v", err)
		httperr.Internal(c, "gateway_error", "Failed to create order.")
		return
	}

	client := preference.NewClient(mpCfg)
	resp, err := client.Create(c.Request.Context(), preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         reference,
				Title:      "Consultation with Dr. " + ap.Doctor.User.Name,
				Quantity:   1,
				UnitPrice:  ap.Doctor.ConsultationFee,
				CurrencyID: "BRL",
			},
		},
		ExternalReference: reference,
	})
	if err != nil {
		log.Printf("failed to create checkout preference: %v", err)
		httperr.Internal(c, "gateway_error", "Failed to create order.")
		return
	}

	record.GatewayID = resp.ID
	if err := h.db.Save(&record).Error; err != nil {
		log.Printf("failed to update payment record: %v", err)
		httperr.Internal(c, "failed_to_create_order", "Failed to create order.")
		return
	}

	httpresp.OK(c, "Order created", gin.H{
		"reference":  reference,
		"amount":     record.Amount,
		"currency":   record.Currency,
		"init_point": resp.InitPoint,
	})
}

// Webhook receives payment notifications. The x-signature header carries
// ts and an HMAC-SHA256 digest over "id:<data.id>;request-id:<rid>;ts:<ts>;".
func (h *PaymentHandler) Webhook(c *gin.Context) {
	dataID := c.Query("data.id")
	if dataID == "" || !h.verifySignature(c, dataID) {
		httperr.BadRequest(c, "invalid_signature", "Payment verification failed.")
		return
	}

	id, err := strconv.Atoi(dataID)
	if err != nil {
		httperr.BadRequest(c, "invalid_payload", "Invalid notification payload.")
		return
	}

	mpCfg, err := mpconfig.New(h.cfg.MPAccessToken)
	if err != nil {
		log.Printf("failed to init payment gateway: %v", err)
		httperr.Internal(c, "gateway_error", "Verification failed.")
		return
	}

	resp, err := payment.NewClient(mpCfg).Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to fetch payment: %v", err)
		httperr.Internal(c, "gateway_error", "Verification failed.")
		return
	}

	status := models.PaymentStatusRejected
	if resp.Status == "approved" {
		status = models.PaymentStatusApproved
	}

	if err := h.db.Model(&models.Payment{}).
		Where("reference = ?", resp.ExternalReference).
		Update("status", status).Error; err != nil {
		log.Printf("failed to update payment status: %v", err)
		httperr.Internal(c, "failed_to_update_payment", "Verification failed.")
		return
	}

	httpresp.OK(c, "Payment verified successfully", nil)
}

func (h *PaymentHandler) verifySignature(c *gin.Context, dataID string) bool {
	if h.cfg.MPWebhookSecret == "" {
		return false
	}

	var ts, v1 string
	for _, part := range strings.Split(c.GetHeader("x-signature"), ",") {
		k, v, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return false
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, c.GetHeader("x-request-id"), ts)

	mac := hmac.New(sha256.New, []byte(h.cfg.MPWebhookSecret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(v1))
}
