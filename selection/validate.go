package selection

import "fmt"

// Errors is a field-keyed validation error map. All violations are collected
// before submission is blocked; there is no partial submit.
type Errors map[string]string

// Validate checks the selection against the catalog:
//   - at least one category or sub-service must be selected ("services" key);
//   - a category that declares sub-services and is itself marked performed
//     must have at least one performed sub-service ("category_<id>" key).
func Validate(catalog Catalog, s State) Errors {
	errs := Errors{}

	selected := false
	for _, cat := range s {
		if cat.Performed || anyPerformed(cat.SubServices) {
			selected = true
			break
		}
	}
	if !selected {
		errs["services"] = "At least one service must be selected"
	}

	for catID, cat := range s {
		if !cat.Performed {
			continue
		}
		if len(catalog[catID]) == 0 {
			continue
		}
		if !anyPerformed(cat.SubServices) {
			errs[fmt.Sprintf("category_%d", catID)] = "Select at least one sub-service for this category"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
