package repository

import "gorm.io/gorm"

type Repos struct {
	User        UserRepo
	Category    CategoryRepo
	SubCategory SubCategoryRepo
	Complaint   ComplaintRepo
	Ticket      TicketRepo
	Review      ReviewRepo
	Audit       AuditRepo
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:        NewUserRepo(db),
		Category:    NewCategoryRepo(db),
		SubCategory: NewSubCategoryRepo(db),
		Complaint:   NewComplaintRepo(db),
		Ticket:      NewTicketRepo(db),
		Review:      NewReviewRepo(db),
		Audit:       NewAuditRepo(db),
	}
}
