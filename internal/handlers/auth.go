package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/auth"
	"ayuvibe-server/internal/logger"
	"ayuvibe-server/internal/middleware"
	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/utils"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	Service *auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{Service: service}
}

// PatientSignupRequest represents the request body for patient registration.
type PatientSignupRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
	PostalCode  string `json:"postal_code" binding:"required"`
}

// SignupPatient handles patient registration.
func (h *AuthHandler) SignupPatient(c *gin.Context) {
	var req PatientSignupRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
	}

	if err := h.Service.RegisterPatient(&patient, req.Password); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			utils.BadRequest(c, "Email already registered")
		} else {
			utils.InternalServerError(c, "Failed to register patient")
		}
		return
	}

	logger.WithField("email", req.Email).Info("patient registered")
	utils.Created(c, "Patient registered successfully", nil)
}

// DoctorSignupRequest represents the request body for doctor registration.
type DoctorSignupRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
	PostalCode     string `json:"postal_code" binding:"required"`
}

// SignupDoctor handles doctor registration.
func (h *AuthHandler) SignupDoctor(c *gin.Context) {
	var req DoctorSignupRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := models.Doctor{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
	}

	if err := h.Service.RegisterDoctor(&doctor, req.Password); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			utils.BadRequest(c, "Email already registered")
		} else {
			utils.InternalServerError(c, "Failed to register doctor")
		}
		return
	}

	logger.WithField("email", req.Email).Info("doctor registered")
	utils.Created(c, "Doctor registered successfully", nil)
}

// LoginRequest represents the request body for both credential endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the response body for a successful token login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token handles the credential check that returns a bearer token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	token, err := h.Service.LoginToken(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.BadRequest(c, "Invalid email or password")
		} else {
			utils.InternalServerError(c, "Failed to authenticate")
		}
		return
	}

	utils.Success(c, "Authentication successful", TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Login handles the credential check that returns the redacted profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.Service.LoginProfile(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.BadRequest(c, "Invalid email or password")
		} else {
			utils.InternalServerError(c, "Failed to authenticate")
		}
		return
	}

	utils.Success(c, "Login successful", profile)
}

// Me echoes the identity carried by the presented bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	utils.Success(c, "Token is valid", gin.H{
		"email":   email,
		"user_id": userID,
	})
}
