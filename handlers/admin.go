package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"drone-delivery-api/models"

	"github.com/gin-gonic/gin"
)

// Dashboard returns the admin KPI aggregates.
func (h *Handler) Dashboard(c *gin.Context) {
	kpis, err := h.store.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// ListMissions returns missions matching the optional query filters
// (stato, pilota_id, drone_id, dal, al). Omitted filters do not
// constrain the result at all.
func (h *Handler) ListMissions(c *gin.Context) {
	filter := models.MissionFilter{
		Status:   c.Query("stato"),
		DateFrom: c.Query("dal"),
		DateTo:   c.Query("al"),
	}

	if raw := c.Query("pilota_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pilota_id must be an integer"})
			return
		}
		filter.PilotID = &id
	}
	if raw := c.Query("drone_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "drone_id must be an integer"})
			return
		}
		filter.DroneID = &id
	}

	missions, err := h.store.Missions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, missions)
}

type UpdateMissionStatusRequest struct {
	Status string `json:"status"`
}

// UpdateMissionStatus sets a mission's status to one of the three
// settable states. Unknown mission ids are a silent no-op.
func (h *Handler) UpdateMissionStatus(c *gin.Context) {
	missionID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateMissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidMissionStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	if err := h.store.SetMissionStatus(c.Request.Context(), missionID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "mission status updated"})
}

// Stats folds the grouped (date, status) counts into a fixed-width time
// series over the 10 most recent dates, emitted in ascending order.
func (h *Handler) Stats(c *gin.Context) {
	rows, err := h.store.StatusCountsByDate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	byDate := map[string]map[string]int{}
	for _, row := range rows {
		if _, ok := byDate[row.Date]; !ok {
			byDate[row.Date] = map[string]int{}
		}
		byDate[row.Date][row.Status] = row.Count
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// Keep the 10 most recent dates, then emit them chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > 10 {
		dates = dates[:10]
	}
	sort.Strings(dates)

	stats := models.Stats{
		Dates:      dates,
		InCorso:    make([]int, 0, len(dates)),
		Completata: make([]int, 0, len(dates)),
		Annullata:  make([]int, 0, len(dates)),
	}
	for _, d := range dates {
		stats.InCorso = append(stats.InCorso, byDate[d][string(models.StatusInProgress)])
		stats.Completata = append(stats.Completata, byDate[d][string(models.StatusCompleted)])
		stats.Annullata = append(stats.Annullata, byDate[d][string(models.StatusCancelled)])
	}

	c.JSON(http.StatusOK, stats)
}
