package entity

import "time"

// Post es una entrada del blog de la plataforma.
type Post struct {
	ID          string
	Title       string
	Slug        string // único, usado en la URL pública
	Body        string
	Author      string // UserID del autor
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Event es un evento publicado en la plataforma (ferias, lanzamientos, etc.).
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	CreatedAt   time.Time
}
