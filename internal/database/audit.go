package database

import "gasops/internal/models"

// CreateAuditLog appends to the audit journal. Fire-and-forget: audit
// must never fail the request that triggered it.
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
