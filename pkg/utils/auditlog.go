package utils

import (
	"log"

	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/models"
)

// LogAuditWithConsole records an audit entry and mirrors it to the
// console. Audit failures never fail the action that triggered them.
// Variable so tests can stub it.
var LogAuditWithConsole = func(userID uint, action, resourceType, resourceID, detail string, repo repository.AuditRepo) {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Detail:       detail,
	}
	if err := repo.CreateAuditLog(entry); err != nil {
		log.Printf("audit: failed to record %s %s/%s: %v", action, resourceType, resourceID, err)
		return
	}
	log.Printf("audit: user=%d %s %s/%s %s", userID, action, resourceType, resourceID, detail)
}
