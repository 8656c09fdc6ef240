package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceRecord is one maintenance event for one machine. Only categories that
// were performed (or have at least one performed sub-service) are persisted;
// untouched categories never produce rows.
type ServiceRecord struct {
	gorm.Model
	MachineID    uint      `gorm:"index;not null" json:"machine_id"`
	ServiceDate  time.Time `gorm:"not null" json:"service_date"`
	EngineHours  float64   `gorm:"default:0" json:"engine_hours"`
	SiteLocation string    `json:"site_location"`
	Operator     string    `gorm:"not null" json:"operator"`
	GeneralNotes string    `gorm:"type:text" json:"general_notes"`

	Machine    Machine                 `gorm:"foreignKey:MachineID" json:"machine"`
	Categories []ServiceRecordCategory `gorm:"foreignKey:ServiceRecordID" json:"services"`
}

type ServiceRecordCategory struct {
	gorm.Model
	ServiceRecordID uint   `gorm:"index;not null" json:"-"`
	CategoryID      uint   `gorm:"index;not null" json:"category_id"`
	WasPerformed    bool   `gorm:"default:false" json:"was_performed"`
	ServiceNotes    string `gorm:"type:text" json:"service_notes"`

	Category    ServiceCategory            `gorm:"foreignKey:CategoryID" json:"category"`
	SubServices []ServiceRecordSubService `gorm:"foreignKey:RecordCategoryID" json:"sub_services"`
}

type ServiceRecordSubService struct {
	gorm.Model
	RecordCategoryID uint   `gorm:"index;not null" json:"-"`
	SubServiceID     uint   `gorm:"index;not null" json:"id"`
	WasPerformed     bool   `gorm:"default:false" json:"was_performed"`
	SubServiceNotes  string `gorm:"type:text" json:"sub_service_notes"`

	SubService SubService `gorm:"foreignKey:SubServiceID" json:"sub_service"`
}
