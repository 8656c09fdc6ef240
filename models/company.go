package models

import "gorm.io/gorm"

// CompanyProfile holds the standing company details merged into quotation and
// service report PDFs. A single row is kept; it is seeded on first boot.
type CompanyProfile struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Address   string `gorm:"type:text" json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	GSTNumber string `gorm:"column:gst_number" json:"gst_number"`

	LogoPath      string `json:"logo_path"`
	SignaturePath string `json:"signature_path"`

	BankName      string `json:"bank_name"`
	BankAccountNo string `json:"bank_account_no"`
	BankIFSC      string `gorm:"column:bank_ifsc" json:"bank_ifsc"`
	BankBranch    string `json:"bank_branch"`
}
