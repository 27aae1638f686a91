package handlers

import (
	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	Users    *service.UserService
	Doctors  *service.DoctorService
	Patients *service.PatientService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users *service.UserService, doctors *service.DoctorService, patients *service.PatientService) *AuthHandler {
	return &AuthHandler{Users: users, Doctors: doctors, Patients: patients}
}

// DoctorProfileRequest is the optional doctor profile sent with registration.
type DoctorProfileRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Specialization  string `json:"specialization"`
	Phone           string `json:"phone"`
	Chamber         string `json:"chamber"`
	Institute       string `json:"institute"`
	BMDCNumber      string `json:"bmdc_number"`
	Experience      string `json:"experience"`
	Qualifications  string `json:"qualifications"`
	ConsultationFee string `json:"consultation_fee"`
}

// PatientProfileRequest is the optional patient profile sent with registration.
type PatientProfileRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	BloodGroupID *uint  `json:"blood_group_id"`
	Address      string `json:"address"`
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string                 `json:"email" binding:"omitempty,email"`
	Phone    string                 `json:"phone"`
	Password string                 `json:"password" binding:"required,min=6"`
	Role     string                 `json:"role" binding:"required,oneof=doctor patient admin"`
	Doctor   *DoctorProfileRequest  `json:"doctor"`
	Patient  *PatientProfileRequest `json:"patient"`
}

// Register creates a user account, with an optional role profile in the same
// request.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Users.Register(service.RegisterInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	if req.Doctor != nil {
		if _, err := h.Doctors.Create(user.ID, service.DoctorInput{
			FullName:        req.Doctor.FullName,
			Specialization:  req.Doctor.Specialization,
			Phone:           req.Doctor.Phone,
			Chamber:         req.Doctor.Chamber,
			Institute:       req.Doctor.Institute,
			BMDCNumber:      req.Doctor.BMDCNumber,
			Experience:      req.Doctor.Experience,
			Qualifications:  req.Doctor.Qualifications,
			ConsultationFee: req.Doctor.ConsultationFee,
		}); err != nil {
			renderError(c, err)
			return
		}
	}
	if req.Patient != nil {
		if _, err := h.Patients.Create(user.ID, service.PatientInput{
			FullName:     req.Patient.FullName,
			Age:          req.Patient.Age,
			Gender:       req.Patient.Gender,
			Phone:        req.Patient.Phone,
			Email:        req.Patient.Email,
			BloodGroupID: req.Patient.BloodGroupID,
			Address:      req.Patient.Address,
		}); err != nil {
			renderError(c, err)
			return
		}
	}

	utils.Created(c, "User registered successfully", user)
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Login successful", result)
}
