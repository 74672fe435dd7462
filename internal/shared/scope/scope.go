// Package scope holds the gorm scopes shared by the public read paths.
package scope

import (
	"math"

	"gorm.io/gorm"
)

func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func Featured(db *gorm.DB) *gorm.DB {
	return db.Where("is_featured = ?", true)
}

func Published(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}

func Public(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ?", true)
}

func Approved(db *gorm.DB) *gorm.DB {
	return db.Where("is_approved = ?", true)
}

// Limit applies a row cap when n is positive.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n > 0 {
			return db.Limit(n)
		}
		return db
	}
}

// Paginate applies offset/limit for a 1-based page. A page whose offset
// would not fit in an int32 matches nothing.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize > 0 && page-1 > math.MaxInt32/pageSize {
			return db.Where("1 = 0")
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// ExcludeID drops the row currently being viewed from "related" lists.
func ExcludeID(id any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id <> ?", id)
	}
}
