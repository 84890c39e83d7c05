package accounts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dialdesk/internal/auth"
)

type Handlers struct {
	Service *Service
}

func (h Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	res, err := h.Service.Register(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "email and password are required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"token": res.Token, "user": res.Account})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	res, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"token": res.Token, "user": res.Account})
	}
}

type profileRequest struct {
	ProfileUpdate
	AccountID string `json:"userId"`
}

func (h Handlers) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}
	accountID := req.AccountID
	if accountID == "" {
		accountID, _ = auth.AccountID(c.Request.Context())
	}

	p, err := h.Service.UpdateProfile(c.Request.Context(), accountID, req.ProfileUpdate)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating profile"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"_id":           p.ID,
			"firstName":     p.FirstName,
			"lastName":      p.LastName,
			"email":         p.Email,
			"companyName":   p.CompanyName,
			"contactNumber": p.ContactNumber,
			"message":       "Profile updated successfully",
		})
	}
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
	AccountID   string `json:"userId"`
}

func (h Handlers) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}
	accountID := req.AccountID
	if accountID == "" {
		accountID, _ = auth.AccountID(c.Request.Context())
	}

	err := h.Service.ChangePassword(c.Request.Context(), accountID, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, ErrWrongOldPassword):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Old password is incorrect"})
	case errors.Is(err, ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 8 characters"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while changing password"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
	}
}

type emailRequest struct {
	Email string `json:"email"`
}

func (h Handlers) ForgotPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	err := h.Service.ForgotPassword(c.Request.Context(), req.Email)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, ErrTooManyRequests):
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many reset requests, try again later"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email"})
	}
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h Handlers) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	err := h.Service.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and OTP are required"})
	case errors.Is(err, ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully"})
	}
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (h Handlers) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	err := h.Service.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword)
	switch {
	case errors.Is(err, ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP"})
	case errors.Is(err, ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 8 characters"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
	}
}
