package models

type Drone struct {
	ID       int64  `db:"id" json:"id"`
	Model    string `db:"model" json:"model"`
	Battery  int    `db:"battery" json:"battery"`
	Capacity int    `db:"capacity" json:"capacity"`
}
