package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/config"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/utils"
)

type AuthHandler struct {
	Store *store.Store
	Cfg   config.Config
}

type loginRequest struct {
	NationalID string `json:"nationalId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type registerRequest struct {
	NationalID string `json:"nationalId" binding:"required"`
	Name       string `json:"name" binding:"required,min=2"`
	Password   string `json:"password" binding:"required,min=6"`
	Gender     string `json:"gender"`
	Department string `json:"department"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type changeNationalIDRequest struct {
	NewNationalID string `json:"newNationalId" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

func NewAuthHandler(s *store.Store, cfg config.Config) *AuthHandler {
	return &AuthHandler{Store: s, Cfg: cfg}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := h.Store.VerifyCredentials(req.NationalID, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "account deactivated"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID.String(), user.Role, h.Cfg.JwtSecret, h.Cfg.JwtAccessMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}

	refreshToken, err := h.issueRefreshToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// Register self-enrolls an employee account. Supervisor and admin
// accounts are only ever created by an administrator.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user := models.User{
		NationalID: req.NationalID,
		Name:       req.Name,
		Role:       models.RoleEmployee,
		Gender:     req.Gender,
		Department: req.Department,
	}
	if err := h.Store.CreateUser(&user, req.Password); err != nil {
		storeError(c, err, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var token models.RefreshToken
	if err := h.Store.DB().
		Where("token = ? AND revoked_at IS NULL AND expires_at > ?", req.RefreshToken, time.Now()).
		First(&token).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	user, err := h.Store.GetUser(token.UserID)
	if err != nil || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	now := time.Now()
	token.RevokedAt = &now
	_ = h.Store.DB().Save(&token).Error

	accessToken, err := utils.GenerateAccessToken(user.ID.String(), user.Role, h.Cfg.JwtSecret, h.Cfg.JwtAccessMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}
	refreshToken, err := h.issueRefreshToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	now := time.Now()
	_ = h.Store.DB().Model(&models.RefreshToken{}).
		Where("token = ? AND revoked_at IS NULL", req.RefreshToken).
		Update("revoked_at", now).Error

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	user, err := h.Store.GetUser(userID)
	if err != nil {
		storeError(c, err, "could not load account")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := h.Store.GetUser(userID)
	if err != nil {
		storeError(c, err, "could not load account")
		return
	}
	if user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
		return
	}

	if err := h.Store.SetPassword(userID, req.NewPassword); err != nil {
		storeError(c, err, "password update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// ChangeNationalID replaces the caller's login key after a password
// confirmation, refusing ids already held by someone else.
func (h *AuthHandler) ChangeNationalID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req changeNationalIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := h.Store.GetUser(userID)
	if err != nil {
		storeError(c, err, "could not load account")
		return
	}
	if user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is incorrect"})
		return
	}

	user.NationalID = req.NewNationalID
	if err := h.Store.UpdateUser(user); err != nil {
		storeError(c, err, "national id update failed")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) issueRefreshToken(user *models.User) (string, error) {
	value, err := utils.GenerateRefreshToken()
	if err != nil {
		return "", err
	}
	token := models.RefreshToken{
		UserID:    user.ID,
		Token:     value,
		ExpiresAt: time.Now().Add(time.Duration(h.Cfg.JwtRefreshHours) * time.Hour),
	}
	if err := h.Store.DB().Create(&token).Error; err != nil {
		return "", err
	}
	return value, nil
}
