package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

type ReportHandler struct {
	Store *store.Store
}

func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{Store: s}
}

func parseLeaveFilter(c *gin.Context) (store.LeaveFilter, error) {
	filter := store.LeaveFilter{Status: c.Query("status")}
	if raw := c.Query("employeeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid employeeId")
		}
		filter.EmployeeID = &id
	}
	if raw := c.Query("leaveTypeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid leaveTypeId")
		}
		filter.LeaveTypeID = &id
	}
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from date")
		}
		filter.From = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to date")
		}
		filter.To = &parsed
	}
	return filter, nil
}

func parseAttendanceFilter(c *gin.Context) (store.AttendanceFilter, error) {
	filter := store.AttendanceFilter{Status: c.Query("status")}
	if raw := c.Query("employeeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid employeeId")
		}
		filter.EmployeeID = &id
	}
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from date")
		}
		filter.From = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to date")
		}
		filter.To = &parsed
	}
	return filter, nil
}

func (h *ReportHandler) Leaves(c *gin.Context) {
	filter, err := parseLeaveFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	requests, err := h.Store.LeaveReport(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *ReportHandler) Attendance(c *gin.Context) {
	filter, err := parseAttendanceFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	records, err := h.Store.AttendanceReport(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// userNames loads a display-name lookup for the report rows.
func (h *ReportHandler) userNames() (map[uuid.UUID]string, error) {
	var users []models.User
	if err := h.Store.DB().Select("id", "name").Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}
	return names, nil
}

// LeavesExport renders the filtered leave report as an xlsx download;
// PDF and other renderings are left to external document tooling fed by
// the same filtered rows.
func (h *ReportHandler) LeavesExport(c *gin.Context) {
	filter, err := parseLeaveFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	requests, err := h.Store.LeaveReport(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}

	names, err := h.userNames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}
	types, err := h.Store.ListLeaveTypes(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}
	typeNames := make(map[uuid.UUID]string, len(types))
	for _, leaveType := range types {
		typeNames[leaveType.ID] = leaveType.Name
	}

	workbook := excelize.NewFile()
	defer workbook.Close()
	sheet := workbook.GetSheetName(0)

	headers := []string{"Employee", "Leave Type", "From", "To", "Days", "Status", "Review Notes"}
	for i, header := range headers {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = workbook.SetCellValue(sheet, cellName, header)
	}
	for rowIndex, request := range requests {
		values := []interface{}{
			names[request.EmployeeID],
			typeNames[request.LeaveTypeID],
			request.StartDate.Format("2006-01-02"),
			request.EndDate.Format("2006-01-02"),
			request.DaysCount,
			request.Status,
			request.ReviewNotes,
		}
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

	filename := fmt.Sprintf("leaves_report_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ReportHandler) AttendanceExport(c *gin.Context) {
	filter, err := parseAttendanceFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	records, err := h.Store.AttendanceReport(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}

	names, err := h.userNames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}

	workbook := excelize.NewFile()
	defer workbook.Close()
	sheet := workbook.GetSheetName(0)

	headers := []string{"Employee", "Date", "Status", "Notes"}
	for i, header := range headers {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = workbook.SetCellValue(sheet, cellName, header)
	}
	for rowIndex, record := range records {
		values := []interface{}{
			names[record.EmployeeID],
			record.Date.Format("2006-01-02"),
			record.Status,
			record.Notes,
		}
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

	filename := fmt.Sprintf("attendance_report_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
