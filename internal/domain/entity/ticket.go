package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketAbierto    = "abierto"
	TicketRespondido = "respondido"
	TicketCerrado    = "cerrado"
)

// Ticket representa una solicitud de soporte de un usuario.
type Ticket struct {
	ID        string
	UserID    string
	Subject   string
	Message   string
	Status    string // abierto, respondido, cerrado
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TicketReply es una respuesta dentro del hilo de un ticket.
type TicketReply struct {
	ID        string
	TicketID  string
	UserID    string
	Message   string
	CreatedAt time.Time
}
