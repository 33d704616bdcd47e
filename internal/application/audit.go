package application

import (
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/models"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]models.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}
