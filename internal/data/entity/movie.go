package entity

type Movie struct {
	Base
	Name     string `db:"name"`
	Duration *int   `db:"duration"` // minutes, optional
	Poster   []byte `db:"poster"`
}
