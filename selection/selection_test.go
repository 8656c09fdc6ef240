package selection

import "testing"

// catalog: category 1 declares subs 10, 11; category 2 declares none;
// category 3 declares sub 30.
func testCatalog() Catalog {
	return Catalog{
		1: {10, 11},
		2: {},
		3: {30},
	}
}

func TestToggleCategoryCascadesToSubServices(t *testing.T) {
	catalog := testCatalog()
	var state State

	state = state.ToggleCategory(catalog, 1)
	cat := state[1]
	if !cat.Performed {
		t.Fatal("category should be performed after toggle")
	}
	for _, subID := range catalog[1] {
		if !cat.SubServices[subID].Performed {
			t.Errorf("sub-service %d should be performed after category toggle on", subID)
		}
	}

	state = state.ToggleCategory(catalog, 1)
	cat = state[1]
	if cat.Performed {
		t.Fatal("category should be cleared after second toggle")
	}
	for _, subID := range catalog[1] {
		if cat.SubServices[subID].Performed {
			t.Errorf("sub-service %d should be cleared after category toggle off", subID)
		}
	}
}

func TestToggleSubServiceSetsParentFlag(t *testing.T) {
	catalog := testCatalog()
	var state State

	state = state.ToggleSubService(catalog, 1, 10)
	if !state[1].Performed {
		t.Error("performing any sub-service must set the parent category flag")
	}

	state = state.ToggleSubService(catalog, 1, 11)
	state = state.ToggleSubService(catalog, 1, 10)
	if !state[1].Performed {
		t.Error("category flag must stay set while another sub-service is performed")
	}

	state = state.ToggleSubService(catalog, 1, 11)
	if state[1].Performed {
		t.Error("clearing the last performed sub-service must clear the parent flag")
	}
}

func TestCategoryWithoutSubServicesIsIndependent(t *testing.T) {
	catalog := testCatalog()
	var state State

	state = state.ToggleCategory(catalog, 2)
	if !state[2].Performed {
		t.Fatal("category without sub-services should toggle on")
	}

	// Sub-service logic on a different category never touches it
	state = state.ToggleSubService(catalog, 3, 30)
	state = state.ToggleSubService(catalog, 3, 30)
	if !state[2].Performed {
		t.Error("independent category must never be auto-cleared")
	}
}

func TestToggleDoesNotMutatePreviousSnapshot(t *testing.T) {
	catalog := testCatalog()
	var before State
	before = before.ToggleCategory(catalog, 1)

	after := before.ToggleSubService(catalog, 1, 10)

	if !before[1].SubServices[10].Performed {
		t.Error("previous snapshot was mutated by ToggleSubService")
	}
	if after[1].SubServices[10].Performed {
		t.Error("new snapshot should carry the flipped sub-service")
	}
}

func TestNotesDoNotCascade(t *testing.T) {
	catalog := testCatalog()
	var state State

	state = state.SetCategoryNotes(1, "checked belts")
	if state[1].Performed {
		t.Error("setting notes must not change the performed flag")
	}

	state = state.SetSubServiceNotes(1, 10, "replaced filter")
	if state[1].Performed || state[1].SubServices[10].Performed {
		t.Error("setting sub-service notes must not change any performed flag")
	}
	_ = catalog
}

func TestHasCategoryInteraction(t *testing.T) {
	catalog := testCatalog()
	var state State

	if state.HasInteraction(1) {
		t.Error("untouched category should have no interaction")
	}

	withNotes := state.SetCategoryNotes(1, "  ")
	if withNotes.HasInteraction(1) {
		t.Error("whitespace-only notes are not an interaction")
	}

	withNotes = state.SetCategoryNotes(1, "oil level low")
	if !withNotes.HasInteraction(1) {
		t.Error("category notes count as interaction")
	}

	withSub := state.SetSubServiceNotes(1, 10, "torn hose")
	if !withSub.HasInteraction(1) {
		t.Error("sub-service notes count as interaction")
	}

	selected := state.ToggleSubService(catalog, 1, 10)
	if !selected.HasInteraction(1) {
		t.Error("performed sub-service counts as interaction")
	}
}
