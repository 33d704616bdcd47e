package repository

import (
	"time"

	"github.com/improvemycity/portal-go/models"
	"gorm.io/gorm"
)

// AuditQueryParams narrows an audit-log listing. Nil fields are ignored.
type AuditQueryParams struct {
	UserID       *uint
	ResourceType *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

func (p AuditQueryParams) apply(q *gorm.DB) *gorm.DB {
	if p.UserID != nil {
		q = q.Where("user_id = ?", *p.UserID)
	}
	if p.ResourceType != nil {
		q = q.Where("resource_type = ?", *p.ResourceType)
	}
	if p.Action != nil {
		q = q.Where("action = ?", *p.Action)
	}
	if p.StartTime != nil {
		q = q.Where("created_at >= ?", *p.StartTime)
	}
	if p.EndTime != nil {
		q = q.Where("created_at <= ?", *p.EndTime)
	}
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}
	return q
}

type AuditRepo interface {
	CreateAuditLog(entry *models.AuditLog) error
	GetAuditLogs(params AuditQueryParams) ([]models.AuditLog, error)
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) CreateAuditLog(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	q := params.apply(r.db.Model(&models.AuditLog{}).Order("created_at DESC"))
	return logs, q.Find(&logs).Error
}
