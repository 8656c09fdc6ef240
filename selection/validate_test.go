package selection

import "testing"

func TestValidateRequiresAnySelection(t *testing.T) {
	catalog := testCatalog()
	var state State
	state = state.SetCategoryNotes(1, "looked at it")

	errs := Validate(catalog, state)
	if errs == nil {
		t.Fatal("expected a validation error for empty selection")
	}
	if _, ok := errs["services"]; !ok {
		t.Errorf("expected services error, got %v", errs)
	}
}

func TestValidatePerformedCategoryNeedsSubService(t *testing.T) {
	catalog := testCatalog()

	// Force the flag on without selecting a sub-service; a loaded legacy
	// record can be in this shape.
	state := State{
		1: {Performed: true},
	}

	errs := Validate(catalog, state)
	if errs == nil {
		t.Fatal("expected a validation error")
	}
	if _, ok := errs["category_1"]; !ok {
		t.Errorf("expected category_1 error, got %v", errs)
	}
}

func TestValidatePassesForIndependentCategory(t *testing.T) {
	catalog := testCatalog()
	var state State
	state = state.ToggleCategory(catalog, 2)

	if errs := Validate(catalog, state); errs != nil {
		t.Errorf("category without declared sub-services should validate alone, got %v", errs)
	}
}

func TestValidatePassesWithSubServiceSelected(t *testing.T) {
	catalog := testCatalog()
	var state State
	state = state.ToggleSubService(catalog, 1, 11)

	if errs := Validate(catalog, state); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}
