package dto

import "time"

// CreateTicketRequest entrada para abrir un ticket de soporte.
type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ReplyTicketRequest entrada para responder en el hilo de un ticket.
type ReplyTicketRequest struct {
	Message string `json:"message"`
}

// TicketReplyResponse respuesta dentro del hilo.
type TicketReplyResponse struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketResponse salida de un ticket, opcionalmente con su hilo de respuestas.
type TicketResponse struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	Subject   string                `json:"subject"`
	Message   string                `json:"message"`
	Status    string                `json:"status"`
	Replies   []TicketReplyResponse `json:"replies,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// TicketListResponse lista paginada de tickets.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
