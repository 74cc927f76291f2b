package repository

import "github.com/mercadito-app/mercadito-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para tickets de soporte y sus respuestas.
type TicketRepository interface {
	Create(ticket *entity.Ticket) error
	GetByID(id string) (*entity.Ticket, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Ticket, error)
	ListAll(limit, offset int) ([]*entity.Ticket, error)
	UpdateStatus(id, status string) error
	AddReply(reply *entity.TicketReply) error
	ListReplies(ticketID string) ([]*entity.TicketReply, error)
}
