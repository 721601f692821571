package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/middleware"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

// storeError maps the store's failure kinds onto HTTP statuses. Anything
// unrecognized is a 500 with the supplied fallback message.
func storeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateKey),
		errors.Is(err, store.ErrDuplicateAttendance),
		errors.Is(err, store.ErrReferentialConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func currentRole(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextRole)
	role, _ := value.(string)
	return role
}
