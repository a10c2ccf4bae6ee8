package database

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscaper makes LIKE wildcards in user input match literally.
// '!' is used as the escape character because it needs no quoting in
// MySQL, PostgreSQL or SQLite string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// OwnedBy restricts a query to rows owned by ownerID.
func OwnedBy(ownerID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// DescriptionContains matches descriptions containing term, ignoring case.
// Both sides are folded by the database so they always agree.
func DescriptionContains(term string) func(db *gorm.DB) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(description) LIKE LOWER(?) ESCAPE '!'", pattern)
	}
}
