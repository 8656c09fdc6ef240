package controllers

import (
	"net/http"
	"strings"
	"testing"

	"mixerrental-backend/models"

	"github.com/gin-gonic/gin"
)

func quotationRouter() *gin.Engine {
	r := gin.New()
	r.POST("/admin/quotations", CreateQuotation)
	return r
}

func TestCreateQuotationAutoPricesMachineItems(t *testing.T) {
	db := setupTestDB(t)
	machine, _, _ := seedRecordFixtures(t, db)
	customer := models.Customer{Name: "Sharma Constructions", Phone: "9876543210"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	router := quotationRouter()

	w := performJSON(t, router, http.MethodPost, "/admin/quotations", gin.H{
		"customer_id":    customer.ID,
		"quotation_date": "2026-08-30",
		"items": []gin.H{
			{
				"item_type":      "machine",
				"machine_id":     machine.ID,
				"duration_type":  "week",
				"quantity":       2,
				"gst_percentage": 18,
			},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var quotation models.Quotation
	if err := db.Preload("Items").First(&quotation).Error; err != nil {
		t.Fatalf("failed to reload quotation: %v", err)
	}

	if !strings.HasPrefix(quotation.QuotationNumber, "QT-") {
		t.Errorf("quotation number = %q, want QT- prefix", quotation.QuotationNumber)
	}
	if quotation.Status != models.QuotationDraft {
		t.Errorf("status = %q, want draft", quotation.Status)
	}
	if len(quotation.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(quotation.Items))
	}

	item := quotation.Items[0]
	if item.UnitPrice != machine.WeekRate {
		t.Errorf("unit price = %v, want week rate %v", item.UnitPrice, machine.WeekRate)
	}
	if !strings.Contains(item.Description, machine.Name) {
		t.Errorf("description = %q, want machine name included", item.Description)
	}
	if item.Amount != 54000 {
		t.Errorf("amount = %v, want 54000", item.Amount)
	}
	if item.GstAmount != 9720 {
		t.Errorf("gst amount = %v, want 9720", item.GstAmount)
	}
	if quotation.GrandTotal != 63720 {
		t.Errorf("grand total = %v, want 63720", quotation.GrandTotal)
	}
	if !quotation.ValidUntil.Equal(quotation.QuotationDate.AddDate(0, 0, 15)) {
		t.Errorf("valid until = %v, want 15 days after %v", quotation.ValidUntil, quotation.QuotationDate)
	}
}

func TestCreateQuotationExplicitPriceWins(t *testing.T) {
	db := setupTestDB(t)
	machine, _, _ := seedRecordFixtures(t, db)
	customer := models.Customer{Name: "Verma Infra", Phone: "9876500000"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	router := quotationRouter()

	w := performJSON(t, router, http.MethodPost, "/admin/quotations", gin.H{
		"customer_id": customer.ID,
		"items": []gin.H{
			{
				"item_type":      "machine",
				"machine_id":     machine.ID,
				"duration_type":  "day",
				"quantity":       1,
				"unit_price":     4000,
				"gst_percentage": 18,
			},
			{
				"item_type":      "additional_charge",
				"description":    "Transportation",
				"quantity":       1,
				"unit_price":     2500,
				"gst_percentage": 18,
			},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var quotation models.Quotation
	if err := db.Preload("Items", "item_type = ?", models.ItemMachine).First(&quotation).Error; err != nil {
		t.Fatalf("failed to reload quotation: %v", err)
	}
	if len(quotation.Items) != 1 || quotation.Items[0].UnitPrice != 4000 {
		t.Fatalf("expected explicit unit price 4000 to win over day rate, got %+v", quotation.Items)
	}
	if quotation.Subtotal != 6500 {
		t.Errorf("subtotal = %v, want 6500", quotation.Subtotal)
	}
}

func TestCreateQuotationRejectsAdditionalChargeWithoutDescription(t *testing.T) {
	db := setupTestDB(t)
	customer := models.Customer{Name: "Gupta Builders", Phone: "9876511111"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	router := quotationRouter()

	w := performJSON(t, router, http.MethodPost, "/admin/quotations", gin.H{
		"customer_id": customer.ID,
		"items": []gin.H{
			{
				"item_type":      "additional_charge",
				"quantity":       1,
				"unit_price":     500,
				"gst_percentage": 0,
			},
		},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Quotation{}).Count(&count)
	if count != 0 {
		t.Errorf("quotation count = %d, want 0", count)
	}
}
