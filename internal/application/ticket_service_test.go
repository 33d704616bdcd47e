package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/internal/repository/mock"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupTicketServiceMocks(t *testing.T) (*TicketService, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Ticket: mockTicket,
		Audit:  mock.NewMockAuditRepo(ctrl),
	}

	oldAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(uint, string, string, string, string, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldAudit })

	return NewTicketService(repos), mockTicket
}

// --------------------- CreateTicket ---------------------
func TestCreateTicket_Success(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	mockTicket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *models.SupportTicket) error {
		assert.Equal(t, models.TicketStatusOpen, tk.Status)
		tk.ID = 7
		return nil
	})

	ticket, err := svc.CreateTicket(2, dto.CreateTicketDTO{Subject: "Login issue", Message: "Cannot log in"})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), ticket.ID)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
}

// --------------------- Reply ---------------------
func TestReply_ClosesTicket(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	open := models.SupportTicket{ID: 7, UserID: 2, Status: models.TicketStatusOpen}
	mockTicket.EXPECT().GetTicketByID(uint(7)).Return(open, nil)
	mockTicket.EXPECT().ReplyIfOpen(uint(7), "Resolved, please retry").Return(true, nil)

	reply := "Resolved, please retry"
	closed := open
	closed.Status = models.TicketStatusClosed
	closed.Reply = &reply
	mockTicket.EXPECT().GetTicketByID(uint(7)).Return(closed, nil)

	ticket, err := svc.Reply(1, 7, "Resolved, please retry")
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusClosed, ticket.Status)
	assert.Equal(t, "Resolved, please retry", *ticket.Reply)
}

func TestReply_ClosedTicketConflicts(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	reply := "first answer"
	mockTicket.EXPECT().GetTicketByID(uint(7)).Return(models.SupportTicket{
		ID: 7, Status: models.TicketStatusClosed, Reply: &reply,
	}, nil)

	_, err := svc.Reply(1, 7, "second answer")
	assert.ErrorIs(t, err, ErrTicketClosed)
}

func TestReply_RaceLoserGetsConflict(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	// Ticket was open at the read but another admin closed it first.
	mockTicket.EXPECT().GetTicketByID(uint(7)).Return(models.SupportTicket{ID: 7, Status: models.TicketStatusOpen}, nil)
	mockTicket.EXPECT().ReplyIfOpen(uint(7), "answer").Return(false, nil)

	_, err := svc.Reply(1, 7, "answer")
	assert.ErrorIs(t, err, ErrTicketClosed)
}

func TestReply_NotFound(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(99)).Return(models.SupportTicket{}, gorm.ErrRecordNotFound)

	_, err := svc.Reply(1, 99, "answer")
	assert.ErrorIs(t, err, ErrNotFound)
}

// --------------------- Delete ---------------------
func TestDeleteTicket_Author(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(7)).Return(models.SupportTicket{ID: 7, UserID: 2}, nil)
	mockTicket.EXPECT().DeleteTicket(uint(7)).Return(nil)

	err := svc.Delete(2, models.UserRoleCitizen, 7)
	assert.NoError(t, err)
}

func TestDeleteTicket_AdminMayDeleteAny(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(7)).Return(models.SupportTicket{ID: 7, UserID: 2}, nil)
	mockTicket.EXPECT().DeleteTicket(uint(7)).Return(nil)

	err := svc.Delete(1, models.UserRoleAdmin, 7)
	assert.NoError(t, err)
}

func TestDeleteTicket_StrangerForbidden(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(7)).Return(models.SupportTicket{ID: 7, UserID: 2}, nil)

	err := svc.Delete(9, models.UserRoleCitizen, 7)
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- Listing ---------------------
func TestListMineAndAll(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t)

	mockTicket.EXPECT().ListTicketsByUser(uint(2)).Return([]models.SupportTicket{{ID: 7}}, nil)
	mockTicket.EXPECT().ListAllTickets().Return([]models.SupportTicket{{ID: 7}, {ID: 8}}, nil)

	mine, err := svc.ListMine(2)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
