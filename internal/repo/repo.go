package repo

import "gorm.io/gorm"

// GormRepo is the persistence collaborator for all three entities. Every
// method is a single synchronous database call, there are no custom
// queries and no transactions spanning rows.
type GormRepo struct {
	DB *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
