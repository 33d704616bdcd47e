package application

import (
	"github.com/improvemycity/portal-go/internal/events"
	"github.com/improvemycity/portal-go/internal/otp"
	"github.com/improvemycity/portal-go/internal/repository"
)

type Services struct {
	User      *UserService
	Staff     *StaffService
	Complaint *ComplaintService
	Category  *CategoryService
	Ticket    *TicketService
	Review    *ReviewService
	Audit     *AuditService
}

func New(repos *repository.Repos, hub *events.Hub, otpStore otp.Store) *Services {
	return &Services{
		User:      NewUserService(repos, otpStore),
		Staff:     NewStaffService(repos),
		Complaint: NewComplaintService(repos, hub),
		Category:  NewCategoryService(repos),
		Ticket:    NewTicketService(repos),
		Review:    NewReviewService(repos),
		Audit:     NewAuditService(repos),
	}
}
