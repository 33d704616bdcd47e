package models

import "time"

// TicketStatus is intentionally separate from ComplaintStatus; the two
// lifecycles never share vocabulary.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// SupportTicket is a user help request, independent of the complaint
// lifecycle. It closes exactly when an admin stores a reply.
type SupportTicket struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"userId"`
	User      *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subject   string       `gorm:"size:255;not null" json:"subject"`
	Message   string       `gorm:"type:text;not null" json:"message"`
	Status    TicketStatus `gorm:"size:20;default:'open';not null" json:"status"`
	Reply     *string      `gorm:"type:text" json:"reply"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
