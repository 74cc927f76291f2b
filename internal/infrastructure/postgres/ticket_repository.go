package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación de TicketRepository sobre PostgreSQL.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador de tickets. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `id, user_id, subject, message, status, created_at, updated_at`

// Create persiste un nuevo ticket.
func (r *TicketRepo) Create(ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.UserID, ticket.Subject, ticket.Message, ticket.Status,
		ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID.
func (r *TicketRepo) GetByID(id string) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	var t entity.Ticket
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// ListByUser lista los tickets de un usuario, el más reciente primero.
func (r *TicketRepo) ListByUser(userID string, limit, offset int) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets by user: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListAll lista todos los tickets (vista de administración).
func (r *TicketRepo) ListAll(limit, offset int) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *TicketRepo) scanMany(rows pgx.Rows) ([]*entity.Ticket, error) {
	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de un ticket.
func (r *TicketRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tickets SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}
	return nil
}

// AddReply agrega una respuesta al hilo del ticket.
func (r *TicketRepo) AddReply(reply *entity.TicketReply) error {
	if reply.ID == "" {
		reply.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ticket_replies (id, ticket_id, user_id, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		reply.ID, reply.TicketID, reply.UserID, reply.Message, reply.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket reply: %w", err)
	}
	return nil
}

// ListReplies lista las respuestas de un ticket en orden cronológico.
func (r *TicketRepo) ListReplies(ticketID string) ([]*entity.TicketReply, error) {
	query := `
		SELECT id, ticket_id, user_id, message, created_at
		FROM ticket_replies WHERE ticket_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list ticket replies: %w", err)
	}
	defer rows.Close()
	var list []*entity.TicketReply
	for rows.Next() {
		var rep entity.TicketReply
		if err := rows.Scan(&rep.ID, &rep.TicketID, &rep.UserID, &rep.Message, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket reply: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
