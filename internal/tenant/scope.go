package tenant

import "gorm.io/gorm"

// Scope filters a query down to one organization. Every tenant-scoped read
// and write must apply it; the organization id is the isolation boundary.
func Scope(organizationID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", organizationID)
	}
}
