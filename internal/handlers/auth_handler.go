package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/medpoint-app/clinic-scheduler/internal/config"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/httpresp"
	"github.com/medpoint-app/clinic-scheduler/internal/middleware"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
	"github.com/medpoint-app/clinic-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterPatientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type RegisterDoctorRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	Specialization  string  `json:"specialization" binding:"required"`
	Experience      int     `json:"experience" binding:"required"`
	Education       string  `json:"education" binding:"required"`
	LicenseNumber   string  `json:"license_number" binding:"required"`
	Bio             string  `json:"bio"`
	ConsultationFee float64 `json:"consultation_fee" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide name, email, and password.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "User with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		httperr.Internal(c, "failed_to_hash_password", "Registration failed. Please try again.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RolePatient,
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("failed to create user: %v", err)
		httperr.Internal(c, "failed_to_create_user", "Registration failed. Please try again.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		log.Printf("failed to generate token: %v", err)
		httperr.Internal(c, "failed_to_generate_token", "Registration failed. Please try again.")
		return
	}

	httpresp.Created(c, "Patient registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide all required fields.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "User with this email already exists.")
		return
	}

	h.db.Model(&models.Doctor{}).Where("license_number = ?", req.LicenseNumber).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "license_already_exists", "Doctor with this license number already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		httperr.Internal(c, "failed_to_hash_password", "Registration failed. Please try again.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleDoctor,
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("failed to create user: %v", err)
		httperr.Internal(c, "failed_to_create_user", "Registration failed. Please try again.")
		return
	}

	doctor := models.Doctor{
		UserID:          user.ID,
		Specialization:  req.Specialization,
		Experience:      req.Experience,
		Education:       req.Education,
		LicenseNumber:   req.LicenseNumber,
		Bio:             req.Bio,
		ConsultationFee: req.ConsultationFee,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		log.Printf("failed to create doctor profile: %v", err)
		httperr.Internal(c, "failed_to_create_doctor", "Registration failed. Please try again.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		log.Printf("failed to generate token: %v", err)
		httperr.Internal(c, "failed_to_generate_token", "Registration failed. Please try again.")
		return
	}

	httpresp.Created(c, "Doctor registered successfully", gin.H{
		"user":   user,
		"doctor": doctor,
		"token":  token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide email and password.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		log.Printf("failed to look up user: %v", err)
		httperr.Internal(c, "internal_error", "Login failed. Please try again.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		log.Printf("failed to generate token: %v", err)
		httperr.Internal(c, "failed_to_generate_token", "Login failed. Please try again.")
		return
	}

	httpresp.OK(c, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OK(c, "", user)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
