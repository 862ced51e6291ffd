package models

// MissionStatus represents the lifecycle states of a delivery mission.
// "in attesa" is implicit: an order without a linked mission row.
type MissionStatus string

const (
	StatusPending    MissionStatus = "in attesa"
	StatusInProgress MissionStatus = "in corso"
	StatusCompleted  MissionStatus = "completata"
	StatusCancelled  MissionStatus = "annullata"
)

// ValidMissionStatus reports whether a status may be set by an admin.
// "in attesa" is not settable, it only exists as the no-mission default.
func ValidMissionStatus(s string) bool {
	switch MissionStatus(s) {
	case StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// MissionSummary is the mission block of an order detail: status plus
// the assigned drone model and pilot full name, when assigned.
type MissionSummary struct {
	ID     int64   `db:"id" json:"id"`
	Status string  `db:"status" json:"status"`
	Drone  *string `db:"drone" json:"drone"`
	Pilot  *string `db:"pilot" json:"pilot"`
}

// MissionRow is the flat row behind a full mission detail, with the
// left-joined drone and pilot columns nullable.
type MissionRow struct {
	ID           int64   `db:"id"`
	Date         *string `db:"date"`
	Time         *string `db:"time"`
	Status       string  `db:"status"`
	Rating       *int    `db:"rating"`
	Comment      *string `db:"comment"`
	DroneID      *int64  `db:"drone_id"`
	DroneModel   *string `db:"drone_model"`
	DroneBattery *int    `db:"drone_battery"`
	PilotID      *int64  `db:"pilot_id"`
	PilotName    *string `db:"pilot_name"`
	PilotSurname *string `db:"pilot_surname"`
}

// MissionDrone is the nested drone block of a mission detail.
type MissionDrone struct {
	ID      int64  `json:"id"`
	Model   string `json:"model"`
	Battery int    `json:"battery"`
}

// MissionPilot is the nested pilot block of a mission detail.
type MissionPilot struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// MissionDetail is the shaped mission response; drone and pilot are null
// when unassigned.
type MissionDetail struct {
	ID      int64         `json:"id"`
	Date    *string       `json:"date"`
	Time    *string       `json:"time"`
	Status  string        `json:"status"`
	Rating  *int          `json:"rating"`
	Comment *string       `json:"comment"`
	Drone   *MissionDrone `json:"drone"`
	Pilot   *MissionPilot `json:"pilot"`
}

// Detail shapes a flat mission row into the nested response form.
func (r MissionRow) Detail() MissionDetail {
	d := MissionDetail{
		ID:      r.ID,
		Date:    r.Date,
		Time:    r.Time,
		Status:  r.Status,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
	if r.DroneID != nil {
		d.Drone = &MissionDrone{ID: *r.DroneID}
		if r.DroneModel != nil {
			d.Drone.Model = *r.DroneModel
		}
		if r.DroneBattery != nil {
			d.Drone.Battery = *r.DroneBattery
		}
	}
	if r.PilotID != nil {
		d.Pilot = &MissionPilot{ID: *r.PilotID}
		if r.PilotName != nil {
			d.Pilot.Name = *r.PilotName
		}
		if r.PilotSurname != nil {
			d.Pilot.Surname = *r.PilotSurname
		}
	}
	return d
}

// AdminMission is one row of the filtered admin mission list.
type AdminMission struct {
	ID         int64   `db:"id" json:"id"`
	Date       *string `db:"date" json:"date"`
	Time       *string `db:"time" json:"time"`
	Status     string  `db:"status" json:"status"`
	Rating     *int    `db:"rating" json:"rating"`
	DroneModel *string `db:"drone_model" json:"drone_model"`
	PilotName  *string `db:"pilot_name" json:"pilot_name"`
}

// MissionFilter holds the optional admin list predicates; zero-valued
// fields are left out of the query entirely.
type MissionFilter struct {
	Status   string
	PilotID  *int64
	DroneID  *int64
	DateFrom string
	DateTo   string
}

// Track is one GPS point of a mission's trace.
type Track struct {
	Lat       float64 `db:"lat" json:"lat"`
	Lng       float64 `db:"lng" json:"lng"`
	Timestamp *string `db:"timestamp" json:"timestamp"`
}

// Dashboard holds the admin KPI aggregates.
type Dashboard struct {
	MissionsInProgress int     `json:"missions_in_progress"`
	MissionsCompleted  int     `json:"missions_completed"`
	MissionsCancelled  int     `json:"missions_cancelled"`
	AvgOrderWeight     float64 `json:"avg_order_weight"`
	AvgRating          float64 `json:"avg_rating"`
}

// StatusCount is one grouped (date, status) row of the stats query.
type StatusCount struct {
	Date   string `db:"date"`
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// Stats is the chart-shaped time series: parallel per-status count
// arrays over ascending dates.
type Stats struct {
	Dates      []string `json:"dates"`
	InCorso    []int    `json:"in_corso"`
	Completata []int    `json:"completata"`
	Annullata  []int    `json:"annullata"`
}
