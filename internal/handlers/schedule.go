package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

type ScheduleHandler struct {
	Store *store.Store
}

type scheduleRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	DayOfWeek  string `json:"dayOfWeek" binding:"required"`
	ShiftTime  string `json:"shiftTime" binding:"required"`
	IsRestDay  bool   `json:"isRestDay"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate"`
}

func NewScheduleHandler(s *store.Store) *ScheduleHandler {
	return &ScheduleHandler{Store: s}
}

func (h *ScheduleHandler) List(c *gin.Context) {
	var employeeID *uuid.UUID

	role := currentRole(c)
	if role == models.RoleEmployee {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		employeeID = &userID
	} else if raw := c.Query("employeeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
			return
		}
		employeeID = &id
	}

	schedules, err := h.Store.ListSchedules(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load schedules"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}
		endDate = &parsed
	}

	creatorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	schedule := models.Schedule{
		EmployeeID: employeeID,
		DayOfWeek:  req.DayOfWeek,
		ShiftTime:  req.ShiftTime,
		IsRestDay:  req.IsRestDay,
		StartDate:  startDate,
		EndDate:    endDate,
		CreatedBy:  &creatorID,
	}
	if err := h.Store.CreateSchedule(&schedule); err != nil {
		storeError(c, err, "create failed")
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	schedule, err := h.Store.GetSchedule(scheduleID)
	if err != nil {
		storeError(c, err, "could not load schedule")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	schedule.DayOfWeek = req.DayOfWeek
	schedule.ShiftTime = req.ShiftTime
	schedule.IsRestDay = req.IsRestDay
	schedule.StartDate = startDate
	schedule.EndDate = nil
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}
		schedule.EndDate = &parsed
	}

	if err := h.Store.UpdateSchedule(schedule); err != nil {
		storeError(c, err, "update failed")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Store.DeleteSchedule(scheduleID); err != nil {
		storeError(c, err, "delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
