package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"mixerrental-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func seedRecordFixtures(t *testing.T, db *gorm.DB) (machine models.Machine, engine models.ServiceCategory, inspection models.ServiceCategory) {
	t.Helper()

	machine = models.Machine{
		Name:         "Self Loading Mixer",
		MachineModel: "SLM-3500",
		SerialNumber: "SN-1001",
		DayRate:      4500,
		WeekRate:     27000,
		MonthRate:    95000,
	}
	if err := db.Create(&machine).Error; err != nil {
		t.Fatalf("failed to seed machine: %v", err)
	}

	engine = models.ServiceCategory{
		Name: "Engine Service",
		SubServices: []models.SubService{
			{Name: "Oil Change", DisplayOrder: 1},
			{Name: "Filter Replacement", DisplayOrder: 2},
		},
	}
	if err := db.Create(&engine).Error; err != nil {
		t.Fatalf("failed to seed engine category: %v", err)
	}

	inspection = models.ServiceCategory{Name: "General Inspection"}
	if err := db.Create(&inspection).Error; err != nil {
		t.Fatalf("failed to seed inspection category: %v", err)
	}

	return machine, engine, inspection
}

func recordRouter() *gin.Engine {
	r := gin.New()
	r.POST("/admin/service-records", CreateServiceRecord)
	r.PUT("/admin/service-records/:id", UpdateServiceRecord)
	return r
}

func TestCreateServiceRecordCollectsAllErrors(t *testing.T) {
	db := setupTestDB(t)
	seedRecordFixtures(t, db)
	router := recordRouter()

	w := performJSON(t, router, http.MethodPost, "/admin/service-records", gin.H{
		"service_date": "2026-08-30",
		"operator":     "",
		"services":     []gin.H{},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Success {
		t.Error("expected success=false")
	}
	if len(resp.Errors) != 3 {
		t.Fatalf("got %d errors %v, want 3", len(resp.Errors), resp.Errors)
	}
	for _, field := range []string{"machine_id", "operator", "services"} {
		if resp.Errors[field] == "" {
			t.Errorf("missing error for %s", field)
		}
	}

	var count int64
	db.Model(&models.ServiceRecord{}).Count(&count)
	if count != 0 {
		t.Errorf("record count = %d, want 0 after rejected submission", count)
	}
}

func TestCreateServiceRecordRequiresSubServiceSelection(t *testing.T) {
	db := setupTestDB(t)
	machine, engine, _ := seedRecordFixtures(t, db)
	router := recordRouter()

	w := performJSON(t, router, http.MethodPost, "/admin/service-records", gin.H{
		"machine_id":   machine.ID,
		"service_date": "2026-08-30",
		"operator":     "Ramesh",
		"services": []gin.H{
			{"category_id": engine.ID, "was_performed": true},
		},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeResponse(t, w)
	field := fmt.Sprintf("category_%d", engine.ID)
	if resp.Errors[field] == "" {
		t.Errorf("missing error for %s, got %v", field, resp.Errors)
	}
}

func TestCreateServiceRecordDropsUnselectedCategories(t *testing.T) {
	db := setupTestDB(t)
	machine, engine, inspection := seedRecordFixtures(t, db)
	router := recordRouter()

	oilChange := engine.SubServices[0]
	w := performJSON(t, router, http.MethodPost, "/admin/service-records", gin.H{
		"machine_id":   machine.ID,
		"service_date": "2026-08-30",
		"engine_hours": 1250.5,
		"operator":     "Ramesh",
		"services": []gin.H{
			{
				"category_id": engine.ID,
				"sub_services": []gin.H{
					{"id": oilChange.ID, "was_performed": true, "sub_service_notes": "Used 15W-40"},
				},
			},
			{"category_id": inspection.ID, "was_performed": false},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var record models.ServiceRecord
	if err := db.Preload("Categories.SubServices").First(&record).Error; err != nil {
		t.Fatalf("failed to reload record: %v", err)
	}

	if len(record.Categories) != 1 {
		t.Fatalf("stored categories = %d, want 1 (untouched category dropped)", len(record.Categories))
	}
	stored := record.Categories[0]
	if stored.CategoryID != engine.ID {
		t.Errorf("stored category = %d, want %d", stored.CategoryID, engine.ID)
	}
	if !stored.WasPerformed {
		t.Error("parent category should be marked performed when a sub-service is")
	}
	if len(stored.SubServices) != 1 {
		t.Fatalf("stored sub-services = %d, want 1", len(stored.SubServices))
	}
	if stored.SubServices[0].SubServiceID != oilChange.ID {
		t.Errorf("stored sub-service = %d, want %d", stored.SubServices[0].SubServiceID, oilChange.ID)
	}
	if stored.SubServices[0].SubServiceNotes != "Used 15W-40" {
		t.Errorf("sub-service notes = %q", stored.SubServices[0].SubServiceNotes)
	}
}

func TestCreateServiceRecordIndependentCategory(t *testing.T) {
	db := setupTestDB(t)
	machine, _, inspection := seedRecordFixtures(t, db)
	router := recordRouter()

	w := performJSON(t, router, http.MethodPost, "/admin/service-records", gin.H{
		"machine_id":   machine.ID,
		"service_date": "2026-08-30",
		"operator":     "Suresh",
		"services": []gin.H{
			{"category_id": inspection.ID, "was_performed": true, "service_notes": "All clear"},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var record models.ServiceRecord
	if err := db.Preload("Categories").First(&record).Error; err != nil {
		t.Fatalf("failed to reload record: %v", err)
	}
	if len(record.Categories) != 1 || !record.Categories[0].WasPerformed {
		t.Fatalf("expected one performed category, got %+v", record.Categories)
	}
}

func TestUpdateServiceRecordReplacesEntries(t *testing.T) {
	db := setupTestDB(t)
	machine, engine, inspection := seedRecordFixtures(t, db)
	router := recordRouter()

	record := models.ServiceRecord{
		MachineID:   machine.ID,
		ServiceDate: mustParseDate(t, "2026-08-01"),
		Operator:    "Ramesh",
		Categories: []models.ServiceRecordCategory{
			{
				CategoryID:   engine.ID,
				WasPerformed: true,
				SubServices: []models.ServiceRecordSubService{
					{SubServiceID: engine.SubServices[0].ID, WasPerformed: true},
				},
			},
		},
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed record: %v", err)
	}

	w := performJSON(t, router, http.MethodPut, fmt.Sprintf("/admin/service-records/%d", record.ID), gin.H{
		"machine_id":   machine.ID,
		"service_date": "2026-08-15",
		"operator":     "Suresh",
		"services": []gin.H{
			{"category_id": inspection.ID, "was_performed": true},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var reloaded models.ServiceRecord
	if err := db.Preload("Categories.SubServices").First(&reloaded, record.ID).Error; err != nil {
		t.Fatalf("failed to reload record: %v", err)
	}
	if reloaded.Operator != "Suresh" {
		t.Errorf("operator = %q, want Suresh", reloaded.Operator)
	}
	if len(reloaded.Categories) != 1 || reloaded.Categories[0].CategoryID != inspection.ID {
		t.Fatalf("expected entries replaced with inspection category, got %+v", reloaded.Categories)
	}

	var subCount int64
	db.Model(&models.ServiceRecordSubService{}).Where("deleted_at IS NULL").Count(&subCount)
	if subCount != 0 {
		t.Errorf("sub-service rows = %d, want 0 after replacement", subCount)
	}
}
