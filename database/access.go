package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/personal-blog-backend/models"
)

// Access is the trust level a read runs under. The policy layer picks it
// before every data-access call: Privileged bypasses row restrictions and is
// only handed out after an explicit role check.
type Access int

const (
	// Restricted is subject to row-level visibility rules: only published
	// posts and approved comments.
	Restricted Access = iota
	// Privileged sees every row regardless of status.
	Privileged
)

func (a Access) String() string {
	if a == Privileged {
		return "privileged"
	}
	return "restricted"
}

// postScope narrows post queries to rows the access level may see.
func (a Access) postScope(db *gorm.DB) *gorm.DB {
	if a == Privileged {
		return db
	}
	return db.Where("status = ?", models.PostPublished)
}

// commentScope narrows comment queries to rows the access level may see.
func (a Access) commentScope(db *gorm.DB) *gorm.DB {
	if a == Privileged {
		return db
	}
	return db.Where("status = ?", models.CommentApproved)
}
