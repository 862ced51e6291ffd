package models

// OrderSummary is one row of the customer's order list, annotated with
// the linked mission's status ("in attesa" when no mission is linked).
type OrderSummary struct {
	ID          int64   `db:"id" json:"id"`
	Type        string  `db:"type" json:"type"`
	TotalWeight float64 `db:"total_weight" json:"total_weight"`
	ScheduledAt string  `db:"scheduled_at" json:"scheduled_at"`
	Address     string  `db:"address" json:"address"`
	MissionID   *int64  `db:"mission_id" json:"mission_id"`
	Status      string  `db:"status" json:"status"`
}

// OrderRow is a single order including its owner, used for the
// ownership check before returning detail.
type OrderRow struct {
	ID          int64   `db:"id" json:"id"`
	Type        string  `db:"type" json:"type"`
	TotalWeight float64 `db:"total_weight" json:"total_weight"`
	ScheduledAt string  `db:"scheduled_at" json:"scheduled_at"`
	Address     string  `db:"address" json:"address"`
	MissionID   *int64  `db:"mission_id" json:"mission_id"`
	UserID      int64   `db:"user_id" json:"user_id"`
}

// OrderProduct is one product line of an order.
type OrderProduct struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Quantity int     `db:"quantity" json:"quantity"`
	Weight   float64 `db:"weight" json:"weight"`
}
