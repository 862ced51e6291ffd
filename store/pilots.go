package store

import (
	"context"

	"drone-delivery-api/models"
)

func (s *Store) Pilots(ctx context.Context) ([]models.Pilot, error) {
	pilots := []models.Pilot{}
	err := s.db.SelectContext(ctx, &pilots, `
		SELECT
			ID AS id,
			Nome AS name,
			Cognome AS surname,
			Turno AS shift,
			Brevetto AS license
		FROM Pilota
		ORDER BY ID`)
	return pilots, err
}

func (s *Store) CreatePilot(ctx context.Context, name, surname, shift, license string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO Pilota (Nome, Cognome, Turno, Brevetto) VALUES (?, ?, ?, ?)",
		name, surname, shift, license)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) UpdatePilot(ctx context.Context, id int64, name, surname, shift, license string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE Pilota SET Nome = ?, Cognome = ?, Turno = ?, Brevetto = ? WHERE ID = ?",
		name, surname, shift, license, id)
	return err
}

// DeletePilot removes a pilot. Unknown ids are a silent no-op.
func (s *Store) DeletePilot(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM Pilota WHERE ID = ?", id)
	return err
}
