// services/expiry_service.go
package services

import (
	"log"
	"time"

	"mixerrental-backend/models"
	"mixerrental-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ExpiryService moves quotations past their validity date to the expired
// status so the dashboard and list views stay honest.
type ExpiryService struct {
	db *gorm.DB
}

func NewExpiryService(db *gorm.DB) *ExpiryService {
	return &ExpiryService{db: db}
}

// StartScheduler runs the expiry pass once at boot and then daily at
// midnight.
func (s *ExpiryService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 0 * * *", s.ExpireQuotations)
	s.ExpireQuotations()

	c.Start()
	log.Println("Quotation expiry scheduler started")
}

func (s *ExpiryService) ExpireQuotations() {
	cutoff := utils.BeginningOfDay(time.Now())

	result := s.db.Model(&models.Quotation{}).
		Where("status IN ? AND valid_until < ?",
			[]string{models.QuotationDraft, models.QuotationSent}, cutoff).
		Update("status", models.QuotationExpired)
	if result.Error != nil {
		log.Printf("Failed to expire quotations: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d quotations as expired", result.RowsAffected)
	}
}
