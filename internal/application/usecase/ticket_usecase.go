package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

// TicketUseCase implementa los tickets de soporte con su hilo de respuestas.
type TicketUseCase struct {
	ticketRepo repository.TicketRepository
}

// NewTicketUseCase construye el caso de uso de soporte.
func NewTicketUseCase(ticketRepo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{ticketRepo: ticketRepo}
}

// Create abre un ticket nuevo en estado abierto.
func (uc *TicketUseCase) Create(userID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.Subject == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ticket := &entity.Ticket{
		ID:        uuid.New().String(),
		UserID:    userID,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    entity.TicketAbierto,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ticketRepo.Create(ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket, nil), nil
}

// GetByID obtiene un ticket con su hilo completo. Solo el dueño o un admin
// pueden verlo.
func (uc *TicketUseCase) GetByID(userID, role, id string) (*dto.TicketResponse, error) {
	ticket, err := uc.ticketRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	if ticket.UserID != userID && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	replies, err := uc.ticketRepo.ListReplies(id)
	if err != nil {
		return nil, err
	}
	return toTicketResponse(ticket, replies), nil
}

// List lista tickets: los propios para un usuario normal, todos para un admin.
func (uc *TicketUseCase) List(userID, role string, limit, offset int) (*dto.TicketListResponse, error) {
	var (
		list []*entity.Ticket
		err  error
	)
	if role == entity.RoleAdmin {
		list, err = uc.ticketRepo.ListAll(limit, offset)
	} else {
		list, err = uc.ticketRepo.ListByUser(userID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTicketResponse(t, nil))
	}
	return &dto.TicketListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Reply añade una respuesta al hilo. Una respuesta de admin pasa el ticket a
// respondido; una respuesta del dueño sobre un ticket respondido lo reabre.
// Un ticket cerrado no admite respuestas.
func (uc *TicketUseCase) Reply(userID, role, ticketID string, in dto.ReplyTicketRequest) (*dto.TicketReplyResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	ticket, err := uc.ticketRepo.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if ticket.UserID != userID && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if ticket.Status == entity.TicketCerrado {
		return nil, domain.ErrConflict
	}
	reply := &entity.TicketReply{
		ID:        uuid.New().String(),
		TicketID:  ticketID,
		UserID:    userID,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.ticketRepo.AddReply(reply); err != nil {
		return nil, err
	}
	next := entity.TicketAbierto
	if role == entity.RoleAdmin {
		next = entity.TicketRespondido
	}
	if ticket.Status != next {
		if err := uc.ticketRepo.UpdateStatus(ticketID, next); err != nil {
			return nil, err
		}
	}
	return &dto.TicketReplyResponse{
		ID:        reply.ID,
		TicketID:  reply.TicketID,
		UserID:    reply.UserID,
		Message:   reply.Message,
		CreatedAt: reply.CreatedAt,
	}, nil
}

// Close cierra un ticket. Lo puede hacer el dueño o un admin.
func (uc *TicketUseCase) Close(userID, role, id string) error {
	ticket, err := uc.ticketRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.ErrNotFound
	}
	if ticket.UserID != userID && role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if ticket.Status == entity.TicketCerrado {
		return domain.ErrConflict
	}
	return uc.ticketRepo.UpdateStatus(id, entity.TicketCerrado)
}

func toTicketResponse(t *entity.Ticket, replies []*entity.TicketReply) *dto.TicketResponse {
	resp := &dto.TicketResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Subject:   t.Subject,
		Message:   t.Message,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	for _, r := range replies {
		resp.Replies = append(resp.Replies, dto.TicketReplyResponse{
			ID:        r.ID,
			TicketID:  r.TicketID,
			UserID:    r.UserID,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		})
	}
	return resp
}
