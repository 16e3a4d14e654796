package gormrepo

import "gorm.io/gorm"

func orderedFieldTemplates(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func orderedDetails(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
