package dto

import "time"

// CreatePostRequest entrada para publicar una entrada de blog.
type CreatePostRequest struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Body  string `json:"body"`
}

// UpdatePostRequest entrada para editar una entrada de blog.
type UpdatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostResponse salida de una entrada de blog.
type PostResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Body        string    `json:"body,omitempty"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostListResponse lista paginada de entradas (sin body completo).
type PostListResponse struct {
	Items []PostResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateEventRequest entrada para publicar un evento.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventListResponse lista paginada de eventos.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
