package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Machine statuses
const (
	MachineAvailable   = "available"
	MachineRented      = "rented"
	MachineMaintenance = "maintenance"
)

// Quotation line-item duration types, priced off the machine rate table
const (
	DurationDay   = "day"
	DurationWeek  = "week"
	DurationMonth = "month"
)

type Machine struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	MachineModel string `gorm:"column:machine_model" json:"machine_model"`
	SerialNumber string `gorm:"uniqueIndex;not null" json:"serial_number"`
	Description  string `gorm:"type:text" json:"description"`

	DayRate   float64 `gorm:"type:decimal(10,2);default:0" json:"day_rate"`
	WeekRate  float64 `gorm:"type:decimal(10,2);default:0" json:"week_rate"`
	MonthRate float64 `gorm:"type:decimal(10,2);default:0" json:"month_rate"`

	Status   string `gorm:"type:varchar(20);default:'available'" json:"status"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	ServiceRecords []ServiceRecord `gorm:"foreignKey:MachineID" json:"-"`
}

// RateFor returns the rental rate for a quotation duration type.
func (m *Machine) RateFor(durationType string) (float64, error) {
	switch durationType {
	case DurationDay:
		return m.DayRate, nil
	case DurationWeek:
		return m.WeekRate, nil
	case DurationMonth:
		return m.MonthRate, nil
	default:
		return 0, fmt.Errorf("unknown duration type: %s", durationType)
	}
}
