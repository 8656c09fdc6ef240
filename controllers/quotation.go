// controllers/quotation.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mixerrental-backend/config"
	"mixerrental-backend/models"
	"mixerrental-backend/services"
	"mixerrental-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// pdfService renders quotation and service report PDFs. Templates are parsed
// once at startup.
var pdfService = services.NewPDFService()

// QuotationItemInput is one line item: a machine rental priced off the rate
// table for the chosen duration, or a free-form additional charge.
type QuotationItemInput struct {
	ItemType      string  `json:"item_type" binding:"required,oneof=machine additional_charge"`
	MachineID     *uint   `json:"machine_id"`
	Description   string  `json:"description"`
	DurationType  string  `json:"duration_type" binding:"omitempty,oneof=day week month"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	UnitPrice     *float64 `json:"unit_price" binding:"omitempty,min=0"`
	GstPercentage float64 `json:"gst_percentage" binding:"min=0,max=100"`
}

// QuotationInput defines the expected JSON structure for creating or
// replacing a quotation
type QuotationInput struct {
	CustomerID      uint                 `json:"customer_id" binding:"required"`
	QuotationDate   string               `json:"quotation_date"`
	ValidUntil      string               `json:"valid_until"`
	Status          string               `json:"status" binding:"omitempty,oneof=draft sent accepted rejected expired"`
	Notes           string               `json:"notes"`
	TermsConditions string               `json:"terms_conditions"`
	Items           []QuotationItemInput `json:"items" binding:"required,min=1,dive"`
}

// buildQuotationItems resolves machine line items against the rate table:
// description and unit price default from the machine and its day/week/month
// rate for the selected duration type; an explicit unit price wins.
func buildQuotationItems(db *gorm.DB, inputs []QuotationItemInput) ([]models.QuotationItem, error) {
	items := make([]models.QuotationItem, 0, len(inputs))
	for i, input := range inputs {
		item := models.QuotationItem{
			ItemType:      input.ItemType,
			Description:   input.Description,
			DurationType:  input.DurationType,
			Quantity:      input.Quantity,
			GstPercentage: input.GstPercentage,
			Position:      i,
		}

		switch input.ItemType {
		case models.ItemMachine:
			if input.MachineID == nil {
				return nil, fmt.Errorf("item %d: machine_id is required for machine items", i+1)
			}
			if input.DurationType == "" {
				return nil, fmt.Errorf("item %d: duration_type is required for machine items", i+1)
			}
			var machine models.Machine
			if err := db.First(&machine, *input.MachineID).Error; err != nil {
				return nil, fmt.Errorf("item %d: machine not found", i+1)
			}
			item.MachineID = input.MachineID
			if item.Description == "" {
				item.Description = fmt.Sprintf("%s (%s) - per %s rental",
					machine.Name, machine.MachineModel, input.DurationType)
			}
			if input.UnitPrice != nil {
				item.UnitPrice = *input.UnitPrice
			} else {
				rate, err := machine.RateFor(input.DurationType)
				if err != nil {
					return nil, fmt.Errorf("item %d: %v", i+1, err)
				}
				item.UnitPrice = rate
			}
		case models.ItemAdditionalCharge:
			if strings.TrimSpace(input.Description) == "" {
				return nil, fmt.Errorf("item %d: description is required for additional charges", i+1)
			}
			if input.UnitPrice == nil {
				return nil, fmt.Errorf("item %d: unit_price is required for additional charges", i+1)
			}
			item.UnitPrice = *input.UnitPrice
		}

		items = append(items, item)
	}
	return items, nil
}

func parseQuotationDates(input QuotationInput) (quotationDate, validUntil time.Time, err error) {
	quotationDate = utils.BeginningOfDay(time.Now())
	if input.QuotationDate != "" {
		quotationDate, err = utils.ParseDate(input.QuotationDate)
		if err != nil {
			return quotationDate, validUntil, errors.New("quotation_date must be in YYYY-MM-DD format")
		}
	}
	validUntil = quotationDate.AddDate(0, 0, 15)
	if input.ValidUntil != "" {
		validUntil, err = utils.ParseDate(input.ValidUntil)
		if err != nil {
			return quotationDate, validUntil, errors.New("valid_until must be in YYYY-MM-DD format")
		}
	}
	return quotationDate, validUntil, nil
}

// CreateQuotation creates a quotation with server-computed totals
func CreateQuotation(c *gin.Context) {
	var input QuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	quotationDate, validUntil, err := parseQuotationDates(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := buildQuotationItems(config.DB, input.Items)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	quotation := models.Quotation{
		QuotationNumber: "QT-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
		CustomerID:      input.CustomerID,
		QuotationDate:   quotationDate,
		ValidUntil:      validUntil,
		Status:          models.QuotationDraft,
		Notes:           input.Notes,
		TermsConditions: input.TermsConditions,
		Items:           items,
	}
	if input.Status != "" {
		quotation.Status = input.Status
	}
	quotation.ComputeTotals()

	if err := config.DB.Create(&quotation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create quotation")
		return
	}

	loaded, err := loadQuotation(config.DB, quotation.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load quotation")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, loaded, "Quotation created")
}

func loadQuotation(db *gorm.DB, id uint) (*models.Quotation, error) {
	var quotation models.Quotation
	err := db.
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		First(&quotation, id).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// GetQuotations lists quotations with optional status/customer filters
func GetQuotations(c *gin.Context) {
	page, limit, offset := paginationParams(c)

	query := config.DB.Model(&models.Quotation{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count quotations")
		return
	}

	var quotations []models.Quotation
	if err := query.
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		Order("quotation_date desc, id desc").
		Offset(offset).Limit(limit).
		Find(&quotations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve quotations")
		return
	}

	utils.RespondWithPagination(c, quotations, utils.NewPagination(page, limit, total))
}

// GetQuotation retrieves one quotation with items and customer
func GetQuotation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quotation ID")
		return
	}

	quotation, err := loadQuotation(config.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quotation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, quotation, "")
}

// UpdateQuotation replaces a quotation's fields and items, recomputing totals
func UpdateQuotation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quotation ID")
		return
	}

	var input QuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	quotationDate, validUntil, err := parseQuotationDates(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := buildQuotationItems(config.DB, input.Items)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var quotation models.Quotation
	if err := tx.First(&quotation, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quotation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("quotation_id = ?", quotation.ID).
		Delete(&models.QuotationItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
		return
	}

	quotation.CustomerID = input.CustomerID
	quotation.QuotationDate = quotationDate
	quotation.ValidUntil = validUntil
	quotation.Notes = input.Notes
	quotation.TermsConditions = input.TermsConditions
	if input.Status != "" {
		quotation.Status = input.Status
	}
	quotation.Items = items
	quotation.ComputeTotals()

	if err := tx.Save(&quotation).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update quotation")
		return
	}

	tx.Commit()

	loaded, err := loadQuotation(config.DB, quotation.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load quotation")
		return
	}

	utils.RespondWithData(c, http.StatusOK, loaded, "Quotation updated")
}

// DeleteQuotation removes a quotation and its items
func DeleteQuotation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quotation ID")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var quotation models.Quotation
	if err := tx.First(&quotation, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quotation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("quotation_id = ?", quotation.ID).
		Delete(&models.QuotationItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete quotation items")
		return
	}
	if err := tx.Delete(&quotation).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete quotation")
		return
	}

	tx.Commit()
	utils.RespondWithData(c, http.StatusOK, nil, "Quotation deleted successfully")
}

// ExportQuotationPDF renders the quotation document. Stored totals are used
// verbatim; nothing is recomputed at render time.
func ExportQuotationPDF(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quotation ID")
		return
	}

	quotation, err := loadQuotation(config.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quotation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	company, err := loadCompanyProfile(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load company profile")
		return
	}

	pdf, err := pdfService.QuotationPDF(quotation, company)
	if err != nil {
		utils.RespondWithServerError(c, err)
		return
	}

	filename := fmt.Sprintf("%s.pdf", quotation.QuotationNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
