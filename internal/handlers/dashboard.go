package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

type DashboardHandler struct {
	Store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{Store: s}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	stats, err := h.Store.Dashboard(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}

	recent, err := h.Store.LeaveReport(store.LeaveFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":        stats,
		"recentLeaves": recent,
	})
}
