package store

import (
	"context"

	"drone-delivery-api/models"
)

// OrdersByUser lists a customer's orders newest scheduled first, each
// annotated with the linked mission's status.
func (s *Store) OrdersByUser(ctx context.Context, userID int64) ([]models.OrderSummary, error) {
	orders := []models.OrderSummary{}
	err := s.db.SelectContext(ctx, &orders, `
		SELECT
			o.ID AS id,
			o.Tipo AS type,
			o.PesoTotale AS total_weight,
			o.Orario AS scheduled_at,
			o.IndirizzoDestinazione AS address,
			o.ID_Missione AS mission_id,
			COALESCE(m.Stato, 'in attesa') AS status
		FROM Ordine o
		LEFT JOIN Missione m ON o.ID_Missione = m.ID
		WHERE o.ID_Utente = ?
		ORDER BY o.Orario DESC`, userID)
	return orders, err
}

// OrderByID returns a single order including its owner, or sql.ErrNoRows.
func (s *Store) OrderByID(ctx context.Context, orderID int64) (models.OrderRow, error) {
	var o models.OrderRow
	err := s.db.GetContext(ctx, &o, `
		SELECT
			o.ID AS id,
			o.Tipo AS type,
			o.PesoTotale AS total_weight,
			o.Orario AS scheduled_at,
			o.IndirizzoDestinazione AS address,
			o.ID_Missione AS mission_id,
			o.ID_Utente AS user_id
		FROM Ordine o
		WHERE o.ID = ?`, orderID)
	return o, err
}

// OrderProducts lists the product lines of an order.
func (s *Store) OrderProducts(ctx context.Context, orderID int64) ([]models.OrderProduct, error) {
	products := []models.OrderProduct{}
	err := s.db.SelectContext(ctx, &products, `
		SELECT
			p.ID AS id,
			p.nome AS name,
			c.Quantita AS quantity,
			p.peso AS weight
		FROM Contiene c
		JOIN Prodotto p ON c.ID_Prodotto = p.ID
		WHERE c.ID_Ordine = ?`, orderID)
	return products, err
}
