package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"drone-delivery-api/middleware"
	"drone-delivery-api/models"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment. Non-numeric ids behave like
// unknown resources.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}

// ListOrders returns the caller's orders, newest scheduled first, each
// annotated with its mission status.
func (h *Handler) ListOrders(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	orders, err := h.store.OrdersByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderDetail returns one order with its product lines and mission
// block. Orders owned by someone else are indistinguishable from
// missing ones.
func (h *Handler) GetOrderDetail(c *gin.Context) {
	orderID, ok := idParam(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)

	order, err := h.store.OrderByID(c.Request.Context(), orderID)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && order.UserID != user.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	products, err := h.store.OrderProducts(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var mission *models.MissionSummary
	if order.MissionID != nil {
		m, err := h.store.MissionSummary(c.Request.Context(), *order.MissionID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err == nil {
			mission = &m
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    order,
		"products": products,
		"mission":  mission,
	})
}

// GetMission returns the full mission detail with nested drone and
// pilot blocks. Any authenticated customer may look up any mission by
// id; the link back to the owning order is not verified.
func (h *Handler) GetMission(c *gin.Context) {
	missionID, ok := idParam(c)
	if !ok {
		return
	}

	mission, err := h.store.MissionByID(c.Request.Context(), missionID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mission.Detail())
}

// GetMissionTracks returns the mission's GPS trace, oldest point first.
func (h *Handler) GetMissionTracks(c *gin.Context) {
	missionID, ok := idParam(c)
	if !ok {
		return
	}

	tracks, err := h.store.MissionTracks(c.Request.Context(), missionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tracks)
}

type RateMissionRequest struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}

// RateMission stores a rating and comment on a completed mission.
// Re-rating overwrites the previous values.
func (h *Handler) RateMission(c *gin.Context) {
	missionID, ok := idParam(c)
	if !ok {
		return
	}

	var req RateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating == nil || *req.Rating < 1 || *req.Rating > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be an integer between 1 and 10"})
		return
	}

	status, err := h.store.MissionStatus(c.Request.Context(), missionID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if models.MissionStatus(status) != models.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only completed missions can be rated"})
		return
	}

	if err := h.store.RateMission(c.Request.Context(), missionID, *req.Rating, req.Comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating saved"})
}
