package store

import (
	"context"
	"database/sql"
	"errors"

	"drone-delivery-api/models"
)

// EmailTaken reports whether a user with the given email already exists.
func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	var id int64
	err := s.db.GetContext(ctx, &id, "SELECT ID FROM Utente WHERE Mail = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateUser inserts a new user row and returns its id. The role column
// always gets "customer"; admins are provisioned out of band.
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO Utente (Nome, Mail, Password, Ruolo) VALUES (?, ?, ?, ?)",
		name, email, passwordHash, string(models.RoleCustomer))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UserByEmail returns the credentials row for a login attempt, or
// sql.ErrNoRows when the email is unknown.
func (s *Store) UserByEmail(ctx context.Context, email string) (models.Credentials, error) {
	var u models.Credentials
	err := s.db.GetContext(ctx, &u, `
		SELECT ID AS id, Nome AS name, Mail AS email, Password AS password, Ruolo AS role
		FROM Utente WHERE Mail = ?`, email)
	return u, err
}
