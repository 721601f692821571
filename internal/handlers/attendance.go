package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

type AttendanceHandler struct {
	Store *store.Store
}

type recordAttendanceRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Notes      string `json:"notes"`
}

type updateAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func NewAttendanceHandler(s *store.Store) *AttendanceHandler {
	return &AttendanceHandler{Store: s}
}

func (h *AttendanceHandler) List(c *gin.Context) {
	filter := store.AttendanceFilter{Status: c.Query("status")}

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

	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		filter.From = &parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		filter.To = &parsed
	}

	records, err := h.Store.AttendanceReport(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load attendance"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Record writes one day's presence entry. A repeated (employee, date)
// pair is a conflict; the recorder should update the existing row.
func (h *AttendanceHandler) Record(c *gin.Context) {
	var req recordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	recorderID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	record := models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     req.Status,
		Notes:      req.Notes,
		RecordedBy: &recorderID,
	}
	if err := h.Store.RecordAttendance(&record); err != nil {
		storeError(c, err, "record failed")
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	record, err := h.Store.UpdateAttendance(recordID, req.Status, req.Notes)
	if err != nil {
		storeError(c, err, "update failed")
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Store.DeleteAttendance(recordID); err != nil {
		storeError(c, err, "delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
