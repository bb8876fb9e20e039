package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/grocery"
	"github.com/platewise/backend/internal/service"
)

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a UUID path parameter or writes a 400.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps service and engine errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	var (
		unitMismatch *grocery.UnitMismatchError
		invalidSplit *grocery.InvalidSplitError
		unassigned   *grocery.UnassignedItemError
		badTrip      *grocery.InvalidTripIndexError
		badPatch     *grocery.InvalidPatchItemError
		staleVersion *grocery.StaleVersionError
	)

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &staleVersion):
		c.JSON(http.StatusConflict, gin.H{
			"error":   err.Error(),
			"kind":    "stale_version",
			"current": staleVersion.Current,
		})
	case errors.As(err, &unitMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "unit_mismatch"})
	case errors.As(err, &unassigned):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "unassigned_item"})
	case errors.As(err, &badPatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "invalid_patch_item"})
	case errors.As(err, &invalidSplit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "invalid_split"})
	case errors.As(err, &badTrip):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "invalid_trip_index"})
	case errors.Is(err, service.ErrInvalidUnit),
		errors.Is(err, service.ErrEmptyRecipe),
		errors.Is(err, service.ErrNotMonday),
		errors.Is(err, service.ErrBadDate),
		errors.Is(err, service.ErrDateOutOfWeek),
		errors.Is(err, service.ErrBadSlot),
		errors.Is(err, service.ErrBadCursor),
		errors.Is(err, service.ErrItemSource):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrWeekExists),
		errors.Is(err, service.ErrPantryDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
