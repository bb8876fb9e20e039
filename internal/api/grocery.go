package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// GroceryHandler handles grocery list computation, retrieval, patching and
// export.
type GroceryHandler struct {
	groceryService *service.GroceryService
	exportService  *service.ExportService
	rateLimiter    *middleware.RateLimiter
}

func NewGroceryHandler(groceryService *service.GroceryService, exportService *service.ExportService, rateLimiter *middleware.RateLimiter) *GroceryHandler {
	return &GroceryHandler{
		groceryService: groceryService,
		exportService:  exportService,
		rateLimiter:    rateLimiter,
	}
}

func (h *GroceryHandler) RegisterRoutes(router *gin.RouterGroup) {
	grocery := router.Group("/grocery")
	{
		compute := grocery.Group("")
		if h.rateLimiter != nil {
			compute.Use(h.rateLimiter.RateLimitMiddleware())
		}
		compute.POST("/compute", h.Compute)

		// The bare collection returns the newest list for a week.
		grocery.GET("/lists", h.Latest)
		grocery.GET("/lists/:id", h.Get)
		grocery.PATCH("/lists/:id", h.Update)
		if h.exportService != nil {
			grocery.POST("/lists/:id/export", h.Export)
		}
	}
}

func (h *GroceryHandler) Compute(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ComputeGroceryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, warnings, err := h.groceryService.Compute(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	warningStrings := make([]string, 0, len(warnings))
	for _, w := range warnings {
		warningStrings = append(warningStrings, w.String())
	}
	c.JSON(http.StatusCreated, gin.H{"list": list, "warnings": warningStrings})
}

func (h *GroceryHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	list, err := h.groceryService.Get(c.Request.Context(), userID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *GroceryHandler) Latest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	planWeekID, err := uuid.Parse(c.Query("planWeekId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid planWeekId"})
		return
	}

	list, err := h.groceryService.Latest(c.Request.Context(), userID, planWeekID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *GroceryHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateGroceryListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.groceryService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *GroceryHandler) Export(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	url, err := h.exportService.Export(c.Request.Context(), userID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
