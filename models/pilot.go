package models

type Pilot struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Surname string `db:"surname" json:"surname"`
	Shift   string `db:"shift" json:"shift"`
	License string `db:"license" json:"license"`
}
