package models

import "gorm.io/gorm"

// ServiceCategory is a named group of maintenance actions (e.g. "Engine",
// "Hydraulics"). A category may declare zero or more sub-services; categories
// without sub-services are selectable on their own in a service record.
type ServiceCategory struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	SubServices []SubService `gorm:"foreignKey:CategoryID" json:"sub_services"`
}

// SubService is a specific task within a category.
type SubService struct {
	gorm.Model
	CategoryID   uint   `gorm:"index;not null" json:"category_id"`
	Name         string `gorm:"not null" json:"name"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}
