package store

import (
	"context"

	"drone-delivery-api/models"
)

func (s *Store) Drones(ctx context.Context) ([]models.Drone, error) {
	drones := []models.Drone{}
	err := s.db.SelectContext(ctx, &drones, `
		SELECT
			ID AS id,
			Modello AS model,
			Batteria AS battery,
			Capacita AS capacity
		FROM Drone
		ORDER BY ID`)
	return drones, err
}

func (s *Store) CreateDrone(ctx context.Context, model string, battery, capacity int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO Drone (Modello, Batteria, Capacita) VALUES (?, ?, ?)",
		model, battery, capacity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) UpdateDrone(ctx context.Context, id int64, model string, battery, capacity int) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE Drone SET Modello = ?, Batteria = ?, Capacita = ? WHERE ID = ?",
		model, battery, capacity, id)
	return err
}

// DeleteDrone removes a drone. Unknown ids are a silent no-op.
func (s *Store) DeleteDrone(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM Drone WHERE ID = ?", id)
	return err
}
