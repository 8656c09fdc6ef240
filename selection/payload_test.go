package selection

import (
	"reflect"
	"testing"
)

func TestPayloadDropsUntouchedCategories(t *testing.T) {
	catalog := testCatalog()

	// Category 1: not selected itself, but one sub-service performed.
	// Category 2: no interaction at all.
	var state State
	state = state.ToggleSubService(catalog, 1, 10)
	state = state.SetCategoryNotes(2, "")

	payload := state.Payload()
	if len(payload) != 1 {
		t.Fatalf("expected 1 submitted category, got %d", len(payload))
	}
	entry := payload[0]
	if entry.CategoryID != 1 {
		t.Fatalf("expected category 1, got %d", entry.CategoryID)
	}
	if !entry.WasPerformed {
		t.Error("submitted category must carry was_performed=true when a sub-service is performed")
	}
	if len(entry.SubServices) != 1 || entry.SubServices[0].ID != 10 {
		t.Fatalf("expected sub-service 10 only, got %+v", entry.SubServices)
	}
}

func TestPayloadOmitsUnperformedSubServices(t *testing.T) {
	catalog := testCatalog()
	var state State
	state = state.ToggleSubService(catalog, 1, 10)
	state = state.ToggleSubService(catalog, 1, 11)
	state = state.ToggleSubService(catalog, 1, 11) // toggled back off

	payload := state.Payload()
	if len(payload) != 1 {
		t.Fatalf("expected 1 submitted category, got %d", len(payload))
	}
	if len(payload[0].SubServices) != 1 {
		t.Fatalf("unperformed sub-services must be dropped, got %+v", payload[0].SubServices)
	}
}

func TestRoundTripReproducesState(t *testing.T) {
	catalog := testCatalog()

	var state State
	state = state.ToggleCategory(catalog, 1)
	state = state.SetCategoryNotes(1, "engine serviced")
	state = state.SetSubServiceNotes(1, 10, "filter replaced")
	state = state.ToggleCategory(catalog, 2)
	state = state.SetCategoryNotes(2, "greased joints")

	// load -> transform-to-submit -> (server echo) -> reload
	submitted := state.Payload()
	reloaded := FromPayload(submitted)
	resubmitted := reloaded.Payload()

	if !reflect.DeepEqual(submitted, resubmitted) {
		t.Errorf("round trip not idempotent:\nfirst:  %+v\nsecond: %+v", submitted, resubmitted)
	}
	if !reflect.DeepEqual(state, reloaded) {
		t.Errorf("reloaded state differs:\nwant: %+v\ngot:  %+v", state, reloaded)
	}
}

func TestFromPayloadTranslatesNoteFields(t *testing.T) {
	payload := []CategoryPayload{
		{
			CategoryID:   3,
			WasPerformed: true,
			ServiceNotes: "hydraulics checked",
			SubServices: []SubServicePayload{
				{ID: 30, WasPerformed: true, SubServiceNotes: "seal swapped"},
			},
		},
	}

	state := FromPayload(payload)
	cat := state[3]
	if cat.Notes != "hydraulics checked" {
		t.Errorf("service_notes not translated, got %q", cat.Notes)
	}
	if cat.SubServices[30].Notes != "seal swapped" {
		t.Errorf("sub_service_notes not translated, got %q", cat.SubServices[30].Notes)
	}
}
