package handlers

import (
	"github.com/improvemycity/portal-go/internal/application"
	"github.com/improvemycity/portal-go/internal/events"
)

type Handlers struct {
	User      *UserHandler
	Staff     *StaffHandler
	Complaint *ComplaintHandler
	Category  *CategoryHandler
	Ticket    *TicketHandler
	Review    *ReviewHandler
	Audit     *AuditHandler
	WS        *WSHandler
}

func New(svc *application.Services, hub *events.Hub) *Handlers {
	return &Handlers{
		User:      NewUserHandler(svc.User),
		Staff:     NewStaffHandler(svc.Staff),
		Complaint: NewComplaintHandler(svc.Complaint),
		Category:  NewCategoryHandler(svc.Category),
		Ticket:    NewTicketHandler(svc.Ticket),
		Review:    NewReviewHandler(svc.Review),
		Audit:     NewAuditHandler(svc.Audit),
		WS:        NewWSHandler(svc.Complaint, hub),
	}
}
