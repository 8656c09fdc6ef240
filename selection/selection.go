// Package selection implements the service-record selection model: which
// maintenance categories and sub-services were performed, with cascading
// consistency between a category and its sub-services. All operations are
// pure functions over immutable snapshots so the cascade rules can be tested
// without any HTTP or database machinery.
package selection

import "strings"

// SubServiceSelection is the state of one sub-service within a category.
type SubServiceSelection struct {
	Performed bool
	Notes     string
}

// CategorySelection is the state of one category: its own performed flag,
// free-text notes, and the state of each touched sub-service keyed by ID.
type CategorySelection struct {
	Performed   bool
	Notes       string
	SubServices map[uint]SubServiceSelection
}

// State maps category ID to its selection. The zero value (nil map) is a
// valid empty state.
type State map[uint]CategorySelection

// Catalog declares which sub-service IDs each category defines. Categories
// with no declared sub-services keep independent selection: their performed
// flag is never auto-cleared by sub-service logic.
type Catalog map[uint][]uint

func (s State) clone() State {
	next := make(State, len(s)+1)
	for catID, cat := range s {
		copied := cat
		if cat.SubServices != nil {
			copied.SubServices = make(map[uint]SubServiceSelection, len(cat.SubServices))
			for subID, sub := range cat.SubServices {
				copied.SubServices[subID] = sub
			}
		}
		next[catID] = copied
	}
	return next
}

func anyPerformed(subs map[uint]SubServiceSelection) bool {
	for _, sub := range subs {
		if sub.Performed {
			return true
		}
	}
	return false
}

// ToggleCategory flips the category's performed flag and cascades the new
// value to every sub-service the catalog declares for it.
func (s State) ToggleCategory(catalog Catalog, categoryID uint) State {
	next := s.clone()
	cat := next[categoryID]
	cat.Performed = !cat.Performed

	declared := catalog[categoryID]
	if len(declared) > 0 && cat.SubServices == nil {
		cat.SubServices = make(map[uint]SubServiceSelection, len(declared))
	}
	for _, subID := range declared {
		sub := cat.SubServices[subID]
		sub.Performed = cat.Performed
		cat.SubServices[subID] = sub
	}

	next[categoryID] = cat
	return next
}

// ToggleSubService flips one sub-service's performed flag, then recomputes
// the parent category flag: any performed sub-service forces it true, and
// clearing the last performed sub-service clears it, but only when the
// catalog actually declares sub-services for the category.
func (s State) ToggleSubService(catalog Catalog, categoryID, subServiceID uint) State {
	next := s.clone()
	cat := next[categoryID]
	if cat.SubServices == nil {
		cat.SubServices = make(map[uint]SubServiceSelection, 1)
	}
	sub := cat.SubServices[subServiceID]
	sub.Performed = !sub.Performed
	cat.SubServices[subServiceID] = sub

	if anyPerformed(cat.SubServices) {
		cat.Performed = true
	} else if len(catalog[categoryID]) > 0 {
		cat.Performed = false
	}

	next[categoryID] = cat
	return next
}

// SetCategoryNotes replaces the category's notes. No cascading.
func (s State) SetCategoryNotes(categoryID uint, notes string) State {
	next := s.clone()
	cat := next[categoryID]
	cat.Notes = notes
	next[categoryID] = cat
	return next
}

// SetSubServiceNotes replaces one sub-service's notes. No cascading.
func (s State) SetSubServiceNotes(categoryID, subServiceID uint, notes string) State {
	next := s.clone()
	cat := next[categoryID]
	if cat.SubServices == nil {
		cat.SubServices = make(map[uint]SubServiceSelection, 1)
	}
	sub := cat.SubServices[subServiceID]
	sub.Notes = notes
	cat.SubServices[subServiceID] = sub
	next[categoryID] = cat
	return next
}

// HasInteraction reports whether the category has been touched at all:
// selected, has notes, or any sub-service selected or with notes.
func (s State) HasInteraction(categoryID uint) bool {
	cat, ok := s[categoryID]
	if !ok {
		return false
	}
	if cat.Performed || strings.TrimSpace(cat.Notes) != "" {
		return true
	}
	for _, sub := range cat.SubServices {
		if sub.Performed || strings.TrimSpace(sub.Notes) != "" {
			return true
		}
	}
	return false
}
