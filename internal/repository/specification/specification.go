package specification

import "gorm.io/gorm"

// Specification composes query conditions without leaking gorm into services.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
