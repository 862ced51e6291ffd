package store

import (
	"context"
	"database/sql"
	"math"

	"drone-delivery-api/models"
)

// MissionSummary returns the status/drone/pilot block shown inside an
// order detail, or sql.ErrNoRows.
func (s *Store) MissionSummary(ctx context.Context, missionID int64) (models.MissionSummary, error) {
	var m models.MissionSummary
	err := s.db.GetContext(ctx, &m, `
		SELECT
			m.ID AS id,
			m.Stato AS status,
			d.Modello AS drone,
			CONCAT(pi.Nome, ' ', pi.Cognome) AS pilot
		FROM Missione m
		LEFT JOIN Drone d ON m.IdDrone = d.ID
		LEFT JOIN Pilota pi ON m.IdPilota = pi.ID
		WHERE m.ID = ?`, missionID)
	return m, err
}

// MissionByID returns the flat full-detail row, or sql.ErrNoRows.
func (s *Store) MissionByID(ctx context.Context, missionID int64) (models.MissionRow, error) {
	var m models.MissionRow
	err := s.db.GetContext(ctx, &m, `
		SELECT
			m.ID AS id,
			m.DataMissione AS date,
			m.Ora AS time,
			m.Stato AS status,
			m.Valutazione AS rating,
			m.Commento AS comment,
			d.ID AS drone_id,
			d.Modello AS drone_model,
			d.Batteria AS drone_battery,
			pi.ID AS pilot_id,
			pi.Nome AS pilot_name,
			pi.Cognome AS pilot_surname
		FROM Missione m
		LEFT JOIN Drone d ON m.IdDrone = d.ID
		LEFT JOIN Pilota pi ON m.IdPilota = pi.ID
		WHERE m.ID = ?`, missionID)
	return m, err
}

// MissionStatus returns just the status column, or sql.ErrNoRows.
func (s *Store) MissionStatus(ctx context.Context, missionID int64) (string, error) {
	var status string
	err := s.db.GetContext(ctx, &status, "SELECT Stato FROM Missione WHERE ID = ?", missionID)
	return status, err
}

// RateMission overwrites the rating and comment of a mission.
func (s *Store) RateMission(ctx context.Context, missionID int64, rating int, comment string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE Missione SET Valutazione = ?, Commento = ? WHERE ID = ?",
		rating, comment, missionID)
	return err
}

// MissionTracks lists the GPS trace of a mission, oldest point first.
func (s *Store) MissionTracks(ctx context.Context, missionID int64) ([]models.Track, error) {
	tracks := []models.Track{}
	err := s.db.SelectContext(ctx, &tracks, `
		SELECT
			Latitudine AS lat,
			Longitudine AS lng,
			TIMESTAMP AS timestamp
		FROM Traccia
		WHERE ID_Missione = ?
		ORDER BY TIMESTAMP ASC`, missionID)
	return tracks, err
}

// Missions lists missions matching the filter. Predicates are ANDed and
// unset fields stay out of the query entirely.
func (s *Store) Missions(ctx context.Context, f models.MissionFilter) ([]models.AdminMission, error) {
	query := `
		SELECT
			m.ID AS id,
			m.DataMissione AS date,
			m.Ora AS time,
			m.Stato AS status,
			m.Valutazione AS rating,
			d.Modello AS drone_model,
			CONCAT(pi.Nome, ' ', pi.Cognome) AS pilot_name
		FROM Missione m
		LEFT JOIN Drone d ON m.IdDrone = d.ID
		LEFT JOIN Pilota pi ON m.IdPilota = pi.ID
		WHERE 1=1`
	args := []interface{}{}

	if f.Status != "" {
		query += " AND m.Stato = ?"
		args = append(args, f.Status)
	}
	if f.PilotID != nil {
		query += " AND m.IdPilota = ?"
		args = append(args, *f.PilotID)
	}
	if f.DroneID != nil {
		query += " AND m.IdDrone = ?"
		args = append(args, *f.DroneID)
	}
	if f.DateFrom != "" {
		query += " AND m.DataMissione >= ?"
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		query += " AND m.DataMissione <= ?"
		args = append(args, f.DateTo)
	}
	query += " ORDER BY m.DataMissione DESC, m.Ora DESC"

	missions := []models.AdminMission{}
	err := s.db.SelectContext(ctx, &missions, query, args...)
	return missions, err
}

// SetMissionStatus updates a mission's status. Unknown ids are a silent
// no-op.
func (s *Store) SetMissionStatus(ctx context.Context, missionID int64, status string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE Missione SET Stato = ? WHERE ID = ?", status, missionID)
	return err
}

// Dashboard computes the admin KPIs. Averages come back rounded to two
// decimals, 0 when the aggregate has no rows.
func (s *Store) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var d models.Dashboard

	counts := []struct {
		status models.MissionStatus
		dest   *int
	}{
		{models.StatusInProgress, &d.MissionsInProgress},
		{models.StatusCompleted, &d.MissionsCompleted},
		{models.StatusCancelled, &d.MissionsCancelled},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dest,
			"SELECT COUNT(*) FROM Missione WHERE Stato = ?", string(c.status)); err != nil {
			return d, err
		}
	}

	var avg sql.NullFloat64
	if err := s.db.GetContext(ctx, &avg, "SELECT AVG(PesoTotale) FROM Ordine"); err != nil {
		return d, err
	}
	d.AvgOrderWeight = round2(avg)

	if err := s.db.GetContext(ctx, &avg,
		"SELECT AVG(Valutazione) FROM Missione WHERE Valutazione IS NOT NULL"); err != nil {
		return d, err
	}
	d.AvgRating = round2(avg)

	return d, nil
}

func round2(v sql.NullFloat64) float64 {
	if !v.Valid {
		return 0
	}
	return math.Round(v.Float64*100) / 100
}

// StatusCountsByDate returns mission counts grouped by (date, status),
// truncated to the 30 most recent rows, most recent date first.
func (s *Store) StatusCountsByDate(ctx context.Context) ([]models.StatusCount, error) {
	rows := []models.StatusCount{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT
			DataMissione AS date,
			Stato AS status,
			COUNT(*) AS count
		FROM Missione
		WHERE DataMissione IS NOT NULL
		GROUP BY DataMissione, Stato
		ORDER BY DataMissione DESC
		LIMIT 30`)
	return rows, err
}
