package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Quotation statuses
const (
	QuotationDraft    = "draft"
	QuotationSent     = "sent"
	QuotationAccepted = "accepted"
	QuotationRejected = "rejected"
	QuotationExpired  = "expired"
)

// Quotation line-item types
const (
	ItemMachine          = "machine"
	ItemAdditionalCharge = "additional_charge"
)

type Quotation struct {
	gorm.Model
	QuotationNumber string    `gorm:"uniqueIndex;not null" json:"quotation_number"`
	CustomerID      uint      `gorm:"index;not null" json:"customer_id"`
	QuotationDate   time.Time `json:"quotation_date"`
	ValidUntil      time.Time `json:"valid_until"`
	Status          string    `gorm:"type:varchar(20);default:'draft'" json:"status"`

	// Stored totals are authoritative; the PDF renderer reads them verbatim
	// and never recomputes.
	Subtotal   float64 `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	TotalGst   float64 `gorm:"type:decimal(12,2);not null" json:"total_gst"`
	GrandTotal float64 `gorm:"type:decimal(12,2);not null" json:"grand_total"`

	Notes           string `gorm:"type:text" json:"notes"`
	TermsConditions string `gorm:"type:text" json:"terms_conditions"`

	Customer Customer        `gorm:"foreignKey:CustomerID" json:"customer"`
	Items    []QuotationItem `gorm:"foreignKey:QuotationID" json:"items"`
}

type QuotationItem struct {
	gorm.Model
	QuotationID uint   `gorm:"index;not null" json:"-"`
	ItemType    string `gorm:"type:varchar(20);not null" json:"item_type"`
	MachineID   *uint  `gorm:"index" json:"machine_id"`
	Description string `gorm:"not null" json:"description"`

	DurationType  string  `gorm:"type:varchar(10)" json:"duration_type"`
	Quantity      int     `gorm:"default:1" json:"quantity"`
	UnitPrice     float64 `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	GstPercentage float64 `gorm:"type:decimal(5,2);default:0" json:"gst_percentage"`

	Amount    float64 `gorm:"type:decimal(12,2);not null" json:"amount"`
	GstAmount float64 `gorm:"type:decimal(12,2);not null" json:"gst_amount"`
	Total     float64 `gorm:"type:decimal(12,2);not null" json:"total"`

	Position int `gorm:"default:0" json:"position"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals recalculates every item amount and the document totals from
// quantity, unit price and GST percentage. The server always runs this before
// persisting, regardless of what the client submitted.
func (q *Quotation) ComputeTotals() {
	var subtotal, totalGst float64
	for i := range q.Items {
		item := &q.Items[i]
		item.Amount = round2(float64(item.Quantity) * item.UnitPrice)
		item.GstAmount = round2(item.Amount * item.GstPercentage / 100)
		item.Total = round2(item.Amount + item.GstAmount)
		subtotal += item.Amount
		totalGst += item.GstAmount
	}
	q.Subtotal = round2(subtotal)
	q.TotalGst = round2(totalGst)
	q.GrandTotal = round2(q.Subtotal + q.TotalGst)
}
