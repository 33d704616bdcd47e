package application

import (
	"errors"
	"fmt"

	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"gorm.io/gorm"
)

// TicketService owns the support-ticket lifecycle: open at creation,
// closed exactly when an admin stores a reply, terminal after that.
type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{Repos: repos}
}

func (s *TicketService) CreateTicket(userID uint, input dto.CreateTicketDTO) (models.SupportTicket, error) {
	ticket := models.SupportTicket{
		UserID:  userID,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.TicketStatusOpen,
	}
	if err := s.Repos.Ticket.CreateTicket(&ticket); err != nil {
		return models.SupportTicket{}, err
	}
	return ticket, nil
}

func (s *TicketService) ListMine(userID uint) ([]models.SupportTicket, error) {
	return s.Repos.Ticket.ListTicketsByUser(userID)
}

func (s *TicketService) ListAll() ([]models.SupportTicket, error) {
	return s.Repos.Ticket.ListAllTickets()
}

// Reply closes the ticket with the admin's answer. The close is a
// compare-and-set on status; replying to a closed ticket is a
// conflict, never an overwrite.
func (s *TicketService) Reply(adminID, ticketID uint, reply string) (models.SupportTicket, error) {
	ticket, err := s.Repos.Ticket.GetTicketByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SupportTicket{}, fmt.Errorf("%w: ticket %d", ErrNotFound, ticketID)
		}
		return models.SupportTicket{}, err
	}
	if ticket.Status == models.TicketStatusClosed {
		return models.SupportTicket{}, ErrTicketClosed
	}

	ok, err := s.Repos.Ticket.ReplyIfOpen(ticketID, reply)
	if err != nil {
		return models.SupportTicket{}, err
	}
	if !ok {
		return models.SupportTicket{}, ErrTicketClosed
	}

	utils.LogAuditWithConsole(adminID, "reply", "ticket", fmt.Sprint(ticketID), "", s.Repos.Audit)
	return s.Repos.Ticket.GetTicketByID(ticketID)
}

// Delete removes a ticket. The author may delete at any status; admins
// may delete anything.
func (s *TicketService) Delete(actorID uint, actorRole models.UserRole, ticketID uint) error {
	ticket, err := s.Repos.Ticket.GetTicketByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: ticket %d", ErrNotFound, ticketID)
		}
		return err
	}
	if ticket.UserID != actorID && actorRole != models.UserRoleAdmin {
		return fmt.Errorf("%w: not the ticket author", ErrForbidden)
	}
	return s.Repos.Ticket.DeleteTicket(ticketID)
}
