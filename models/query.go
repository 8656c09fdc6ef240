package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerQuery statuses
const (
	QueryNew       = "new"
	QueryContacted = "contacted"
	QueryClosed    = "closed"
)

// CustomerQuery is a public rental inquiry submitted from the website.
type CustomerQuery struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`
	Name      string `gorm:"not null" json:"name"`
	Phone     string `gorm:"not null" json:"phone"`
	Email     string `json:"email"`
	MachineID *uint  `gorm:"index" json:"machine_id"`
	Message   string `gorm:"type:text;not null" json:"message"`
	Status    string `gorm:"type:varchar(20);default:'new'" json:"status"`

	Machine *Machine `gorm:"foreignKey:MachineID" json:"machine,omitempty"`
}

func (q *CustomerQuery) BeforeCreate(tx *gorm.DB) (err error) {
	if q.Reference == "" {
		q.Reference = uuid.NewString()
	}
	return
}
