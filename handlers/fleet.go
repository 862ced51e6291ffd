package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateDroneRequest struct {
	Model    string `json:"model" binding:"required"`
	Battery  *int   `json:"battery"`
	Capacity int    `json:"capacity" binding:"required"`
}

type UpdateDroneRequest struct {
	Model    string `json:"model" binding:"required"`
	Battery  *int   `json:"battery" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

type PilotRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Shift   string `json:"shift" binding:"required"`
	License string `json:"license" binding:"required"`
}

// ListDrones returns all drones ordered by id.
func (h *Handler) ListDrones(c *gin.Context) {
	drones, err := h.store.Drones(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drones)
}

// CreateDrone registers a new drone. Battery defaults to 100 when
// omitted.
func (h *Handler) CreateDrone(c *gin.Context) {
	var req CreateDroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model and capacity are required"})
		return
	}
	battery := 100
	if req.Battery != nil {
		battery = *req.Battery
	}

	id, err := h.store.CreateDrone(c.Request.Context(), req.Model, battery, req.Capacity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "drone created"})
}

// UpdateDrone replaces all fields of a drone. Battery is bound as a
// pointer so a level of 0 still passes validation.
func (h *Handler) UpdateDrone(c *gin.Context) {
	droneID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateDroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model, battery and capacity are required"})
		return
	}

	if err := h.store.UpdateDrone(c.Request.Context(), droneID, req.Model, *req.Battery, req.Capacity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "drone updated"})
}

// DeleteDrone removes a drone; deleting an unknown id is a silent
// no-op.
func (h *Handler) DeleteDrone(c *gin.Context) {
	droneID, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteDrone(c.Request.Context(), droneID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "drone deleted"})
}

// ListPilots returns all pilots ordered by id.
func (h *Handler) ListPilots(c *gin.Context) {
	pilots, err := h.store.Pilots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pilots)
}

// CreatePilot registers a new pilot; all fields are required.
func (h *Handler) CreatePilot(c *gin.Context) {
	var req PilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, surname, shift and license are required"})
		return
	}

	id, err := h.store.CreatePilot(c.Request.Context(), req.Name, req.Surname, req.Shift, req.License)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "pilot created"})
}

// UpdatePilot replaces all fields of a pilot.
func (h *Handler) UpdatePilot(c *gin.Context) {
	pilotID, ok := idParam(c)
	if !ok {
		return
	}

	var req PilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, surname, shift and license are required"})
		return
	}

	if err := h.store.UpdatePilot(c.Request.Context(), pilotID, req.Name, req.Surname, req.Shift, req.License); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pilot updated"})
}

// DeletePilot removes a pilot; deleting an unknown id is a silent
// no-op.
func (h *Handler) DeletePilot(c *gin.Context) {
	pilotID, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeletePilot(c.Request.Context(), pilotID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pilot deleted"})
}
