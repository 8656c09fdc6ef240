package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Phone       string `gorm:"uniqueIndex;not null" json:"phone"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	GSTNumber   string `gorm:"column:gst_number" json:"gst_number"`

	Address      string `gorm:"type:text" json:"address"`
	SiteLocation string `json:"site_location"`
	Notes        string `gorm:"type:text" json:"notes"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Quotations []Quotation `gorm:"foreignKey:CustomerID" json:"-"`
}
