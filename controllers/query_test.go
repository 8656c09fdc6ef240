package controllers

import (
	"net/http"
	"testing"

	"mixerrental-backend/models"

	"github.com/gin-gonic/gin"
)

func queryRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/customer/query", SubmitQuery)
	r.PUT("/admin/queries/:id/status", UpdateQueryStatus)
	return r
}

func TestSubmitQueryAssignsReference(t *testing.T) {
	db := setupTestDB(t)
	router := queryRouter()

	w := performJSON(t, router, http.MethodPost, "/api/customer/query", gin.H{
		"name":    "Anil Kumar",
		"phone":   "+919876543210",
		"email":   "anil@example.com",
		"message": "Need a mixer for a two week project",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var query models.CustomerQuery
	if err := db.First(&query).Error; err != nil {
		t.Fatalf("failed to reload query: %v", err)
	}
	if query.Reference == "" {
		t.Error("expected a reference to be assigned")
	}
	if query.Status != models.QueryNew {
		t.Errorf("status = %q, want new", query.Status)
	}
}

func TestSubmitQueryRejectsBadPhone(t *testing.T) {
	db := setupTestDB(t)
	router := queryRouter()

	w := performJSON(t, router, http.MethodPost, "/api/customer/query", gin.H{
		"name":    "Anil Kumar",
		"phone":   "not-a-phone",
		"message": "Need a mixer",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var count int64
	db.Model(&models.CustomerQuery{}).Count(&count)
	if count != 0 {
		t.Errorf("query count = %d, want 0", count)
	}
}

func TestUpdateQueryStatus(t *testing.T) {
	db := setupTestDB(t)
	router := queryRouter()

	query := models.CustomerQuery{
		Name:    "Anil Kumar",
		Phone:   "9876543210",
		Message: "Need a mixer",
		Status:  models.QueryNew,
	}
	if err := db.Create(&query).Error; err != nil {
		t.Fatalf("failed to seed query: %v", err)
	}

	w := performJSON(t, router, http.MethodPut,
		"/admin/queries/1/status", gin.H{"status": "contacted"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var reloaded models.CustomerQuery
	if err := db.First(&reloaded, query.ID).Error; err != nil {
		t.Fatalf("failed to reload query: %v", err)
	}
	if reloaded.Status != models.QueryContacted {
		t.Errorf("status = %q, want contacted", reloaded.Status)
	}

	w = performJSON(t, router, http.MethodPut,
		"/admin/queries/1/status", gin.H{"status": "archived"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown status", w.Code)
	}
}
