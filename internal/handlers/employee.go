package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

type EmployeeHandler struct {
	Store *store.Store
}

type createEmployeeRequest struct {
	NationalID string `json:"nationalId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role"`
	Gender     string `json:"gender"`
	Department string `json:"department"`
	Period     string `json:"period"`
	ShiftTime  string `json:"shiftTime"`
	RestDays   string `json:"restDays"`
	Password   string `json:"password"`
}

type assignSupervisorRequest struct {
	SupervisorID *string  `json:"supervisorId"`
	EmployeeIDs  []string `json:"employeeIds" binding:"required"`
}

func NewEmployeeHandler(s *store.Store) *EmployeeHandler {
	return &EmployeeHandler{Store: s}
}

func normalizeRole(value string) (string, bool) {
	role := strings.ToLower(strings.TrimSpace(value))
	switch role {
	case "":
		return models.RoleEmployee, true
	case models.RoleEmployee, models.RoleMainSupervisor, models.RoleSubSupervisor,
		models.RoleSubAdmin, models.RoleMainAdmin:
		return role, true
	}
	return "", false
}

func (h *EmployeeHandler) List(c *gin.Context) {
	role := c.Query("role")
	if role != "" {
		if _, ok := normalizeRole(role); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}
	}
	users, err := h.Store.ListUsers(role, c.Query("active") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load employees"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *EmployeeHandler) ListSupervisors(c *gin.Context) {
	users, err := h.Store.ListSupervisors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load supervisors"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	role, ok := normalizeRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	user := models.User{
		NationalID: strings.TrimSpace(req.NationalID),
		Name:       strings.TrimSpace(req.Name),
		Role:       role,
		Gender:     req.Gender,
		Department: req.Department,
		Period:     req.Period,
		ShiftTime:  req.ShiftTime,
		RestDays:   req.RestDays,
	}
	if err := h.Store.CreateUser(&user, req.Password); err != nil {
		storeError(c, err, "create failed")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := h.Store.GetUser(userID)
	if err != nil {
		storeError(c, err, "could not load employee")
		return
	}

	// An omitted role keeps the current one; only an explicit value
	// changes it.
	if req.Role != "" {
		role, ok := normalizeRole(req.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}
		user.Role = role
	}

	user.NationalID = strings.TrimSpace(req.NationalID)
	user.Name = strings.TrimSpace(req.Name)
	user.Gender = req.Gender
	user.Department = req.Department
	user.Period = req.Period
	user.ShiftTime = req.ShiftTime
	user.RestDays = req.RestDays

	if err := h.Store.UpdateUser(user); err != nil {
		storeError(c, err, "update failed")
		return
	}

	if req.Password != "" {
		if err := h.Store.SetPassword(user.ID, req.Password); err != nil {
			storeError(c, err, "password update failed")
			return
		}
	}

	c.JSON(http.StatusOK, user)
}

func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Store.DeactivateUser(userID); err != nil {
		storeError(c, err, "deactivate failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deactivated"})
}

// Delete hard-removes an account together with its attendance, leave,
// schedule and notification rows.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Store.DeleteUserCascade(userID); err != nil {
		storeError(c, err, "delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// DeleteAll wipes every employee account and their dependents.
func (h *EmployeeHandler) DeleteAll(c *gin.Context) {
	deleted, err := h.Store.DeleteEmployeesCascade()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *EmployeeHandler) AssignSupervisor(c *gin.Context) {
	var req assignSupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var supervisorID *uuid.UUID
	if req.SupervisorID != nil && *req.SupervisorID != "" {
		id, err := uuid.Parse(*req.SupervisorID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisorId"})
			return
		}
		supervisorID = &id
	}

	employeeIDs := make([]uuid.UUID, 0, len(req.EmployeeIDs))
	for _, raw := range req.EmployeeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
			return
		}
		employeeIDs = append(employeeIDs, id)
	}

	if err := h.Store.AssignSupervisor(employeeIDs, supervisorID); err != nil {
		storeError(c, err, "assignment failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "assigned"})
}

func (h *EmployeeHandler) Subordinates(c *gin.Context) {
	supervisorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	users, err := h.Store.Subordinates(supervisorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load subordinates"})
		return
	}
	c.JSON(http.StatusOK, users)
}

var importHeader = []string{"Name", "National ID", "Period", "Shift Time", "Rest Days", "Department", "Gender"}

// Import ingests an uploaded xlsx sheet of employees. The first row is
// the header; the remaining rows go through the store's batch import.
func (h *EmployeeHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, upload xlsx"})
		return
	}

	opened, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer opened.Close()

	workbook, err := excelize.OpenReader(opened)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read workbook"})
		return
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil || len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty workbook"})
		return
	}

	result, err := h.Store.ImportEmployees(rows[1:])
	if err != nil {
		storeError(c, err, "import failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Template serves an empty import sheet with the expected header row.
func (h *EmployeeHandler) Template(c *gin.Context) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	for i, header := range importHeader {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = workbook.SetCellValue(sheet, cellName, header)
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "template generation failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="employees_template.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// Export writes the current employee list as an xlsx download.
func (h *EmployeeHandler) Export(c *gin.Context) {
	users, err := h.Store.ListUsers(models.RoleEmployee, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load employees"})
		return
	}

	workbook := excelize.NewFile()
	defer workbook.Close()
	sheet := workbook.GetSheetName(0)

	for i, header := range importHeader {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = workbook.SetCellValue(sheet, cellName, header)
	}
	for rowIndex, user := range users {
		values := []string{user.Name, user.NationalID, user.Period, user.ShiftTime, user.RestDays, user.Department, user.Gender}
		for colIndex, value := range values {
			cellName, _ := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			_ = workbook.SetCellValue(sheet, cellName, value)
		}
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	filename := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
