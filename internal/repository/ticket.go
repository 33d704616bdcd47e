package repository

import (
	"github.com/improvemycity/portal-go/models"
	"gorm.io/gorm"
)

type TicketRepo interface {
	CreateTicket(ticket *models.SupportTicket) error
	GetTicketByID(id uint) (models.SupportTicket, error)
	ListTicketsByUser(userID uint) ([]models.SupportTicket, error)
	ListAllTickets() ([]models.SupportTicket, error)
	ReplyIfOpen(id uint, reply string) (bool, error)
	DeleteTicket(id uint) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) CreateTicket(ticket *models.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *DBTicketRepo) GetTicketByID(id uint) (models.SupportTicket, error) {
	var ticket models.SupportTicket
	if err := r.db.Preload("User").First(&ticket, id).Error; err != nil {
		return ticket, err
	}
	return ticket, nil
}

func (r *DBTicketRepo) ListTicketsByUser(userID uint) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListAllTickets() ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.Preload("User").Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

// ReplyIfOpen stores the reply and closes the ticket in one guarded
// update; a ticket already closed leaves the row untouched and returns
// false.
func (r *DBTicketRepo) ReplyIfOpen(id uint, reply string) (bool, error) {
	res := r.db.Model(&models.SupportTicket{}).
		Where("id = ? AND status = ?", id, models.TicketStatusOpen).
		Updates(map[string]interface{}{
			"reply":  reply,
			"status": models.TicketStatusClosed,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&models.SupportTicket{}, id).Error
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
