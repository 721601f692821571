package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/config"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

type LeaveHandler struct {
	Store *store.Store
	Cfg   config.Config
}

type createLeaveTypeRequest struct {
	Name               string `json:"name" binding:"required"`
	MaxDays            int    `json:"maxDays" binding:"required"`
	RequiresAttachment bool   `json:"requiresAttachment"`
}

type updateLeaveTypeRequest struct {
	Name               string `json:"name" binding:"required"`
	MaxDays            int    `json:"maxDays" binding:"required"`
	RequiresAttachment bool   `json:"requiresAttachment"`
	IsActive           bool   `json:"isActive"`
}

type reviewLeaveRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Notes    string `json:"notes"`
}

func NewLeaveHandler(s *store.Store, cfg config.Config) *LeaveHandler {
	return &LeaveHandler{Store: s, Cfg: cfg}
}

func (h *LeaveHandler) ListTypes(c *gin.Context) {
	types, err := h.Store.ListLeaveTypes(c.Query("active") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leave types"})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *LeaveHandler) CreateType(c *gin.Context) {
	var req createLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	leaveType := models.LeaveType{
		Name:               req.Name,
		MaxDays:            req.MaxDays,
		RequiresAttachment: req.RequiresAttachment,
	}
	if err := h.Store.CreateLeaveType(&leaveType); err != nil {
		storeError(c, err, "create failed")
		return
	}

	c.JSON(http.StatusCreated, leaveType)
}

func (h *LeaveHandler) UpdateType(c *gin.Context) {
	typeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	leaveType, err := h.Store.GetLeaveType(typeID)
	if err != nil {
		storeError(c, err, "could not load leave type")
		return
	}

	leaveType.Name = req.Name
	leaveType.MaxDays = req.MaxDays
	leaveType.RequiresAttachment = req.RequiresAttachment
	leaveType.IsActive = req.IsActive

	if err := h.Store.UpdateLeaveType(leaveType); err != nil {
		storeError(c, err, "update failed")
		return
	}

	c.JSON(http.StatusOK, leaveType)
}

func (h *LeaveHandler) DeleteType(c *gin.Context) {
	typeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Store.DeleteLeaveType(typeID); err != nil {
		storeError(c, err, "delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *LeaveHandler) ListRequests(c *gin.Context) {
	filter := store.LeaveFilter{Status: c.Query("status")}

	role := currentRole(c)
	if role == models.RoleEmployee {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		filter.EmployeeID = &userID
	} else if employeeID := c.Query("employeeId"); employeeID != "" {
		id, err := uuid.Parse(employeeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
			return
		}
		filter.EmployeeID = &id
	}

	requests, err := h.Store.LeaveReport(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leave requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// CreateRequest files a leave application. The body is multipart so a
// supporting document can ride along; the attachment is mandatory when
// the chosen leave type demands one.
func (h *LeaveHandler) CreateRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	leaveTypeID, err := uuid.Parse(c.PostForm("leaveTypeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leaveTypeId"})
		return
	}
	startDate, err := time.Parse("2006-01-02", c.PostForm("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	endDate, err := time.Parse("2006-01-02", c.PostForm("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	leaveType, err := h.Store.GetLeaveType(leaveTypeID)
	if err != nil {
		storeError(c, err, "could not load leave type")
		return
	}

	attachmentPath := ""
	if file, err := c.FormFile("attachment"); err == nil {
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		dir := filepath.Join(h.Cfg.UploadDir, "attachments")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "attachment storage failed"})
			return
		}
		attachmentPath = filepath.Join(dir, filename)
		if err := c.SaveUploadedFile(file, attachmentPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "attachment storage failed"})
			return
		}
	} else if leaveType.RequiresAttachment {
		c.JSON(http.StatusBadRequest, gin.H{"error": "attachment required for this leave type"})
		return
	}

	request := models.LeaveRequest{
		EmployeeID:     userID,
		LeaveTypeID:    leaveTypeID,
		StartDate:      startDate,
		EndDate:        endDate,
		Reason:         c.PostForm("reason"),
		AttachmentPath: attachmentPath,
	}
	if err := h.Store.SubmitLeaveRequest(&request); err != nil {
		storeError(c, err, "create failed")
		return
	}

	c.JSON(http.StatusCreated, request)
}

// Review approves or rejects a pending request and notifies the
// requester. Repeating the review overwrites the earlier decision.
func (h *LeaveHandler) Review(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	reviewerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req reviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	request, err := h.Store.ReviewLeaveRequest(requestID, req.Decision, reviewerID, req.Notes)
	if err != nil {
		storeError(c, err, "review failed")
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *LeaveHandler) DeleteRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	request, err := h.Store.GetLeaveRequest(requestID)
	if err != nil {
		storeError(c, err, "could not load leave request")
		return
	}

	role := currentRole(c)
	if role == models.RoleEmployee {
		userID, ok := currentUserID(c)
		if !ok || request.EmployeeID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		if request.Status != models.LeaveStatusPending {
			c.JSON(http.StatusConflict, gin.H{"error": "reviewed leave cannot be deleted"})
			return
		}
	}

	if err := h.Store.DeleteLeaveRequest(requestID); err != nil {
		storeError(c, err, "delete failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
