package selection

import "sort"

// SubServicePayload is the wire shape of one performed sub-service.
type SubServicePayload struct {
	ID              uint   `json:"id"`
	WasPerformed    bool   `json:"was_performed"`
	SubServiceNotes string `json:"sub_service_notes"`
}

// CategoryPayload is the wire shape of one submitted category entry.
type CategoryPayload struct {
	CategoryID   uint                `json:"category_id"`
	WasPerformed bool                `json:"was_performed"`
	ServiceNotes string              `json:"service_notes"`
	SubServices  []SubServicePayload `json:"sub_services"`
}

// Payload flattens the state into the submitted services array. Categories
// that are neither performed nor have any performed sub-service are dropped
// entirely; within a kept category only performed sub-services are emitted.
// Output is ordered by ID for deterministic persistence.
func (s State) Payload() []CategoryPayload {
	catIDs := make([]uint, 0, len(s))
	for catID := range s {
		catIDs = append(catIDs, catID)
	}
	sort.Slice(catIDs, func(i, j int) bool { return catIDs[i] < catIDs[j] })

	var out []CategoryPayload
	for _, catID := range catIDs {
		cat := s[catID]
		performed := cat.Performed || anyPerformed(cat.SubServices)
		if !performed {
			continue
		}

		entry := CategoryPayload{
			CategoryID:   catID,
			WasPerformed: performed,
			ServiceNotes: cat.Notes,
		}

		subIDs := make([]uint, 0, len(cat.SubServices))
		for subID := range cat.SubServices {
			subIDs = append(subIDs, subID)
		}
		sort.Slice(subIDs, func(i, j int) bool { return subIDs[i] < subIDs[j] })
		for _, subID := range subIDs {
			sub := cat.SubServices[subID]
			if !sub.Performed {
				continue
			}
			entry.SubServices = append(entry.SubServices, SubServicePayload{
				ID:              subID,
				WasPerformed:    true,
				SubServiceNotes: sub.Notes,
			})
		}

		out = append(out, entry)
	}
	return out
}

// FromPayload reconstitutes the keyed-map state from a persisted services
// array, translating service_notes/sub_service_notes back to plain notes.
func FromPayload(services []CategoryPayload) State {
	state := make(State, len(services))
	for _, entry := range services {
		cat := CategorySelection{
			Performed: entry.WasPerformed,
			Notes:     entry.ServiceNotes,
		}
		if len(entry.SubServices) > 0 {
			cat.SubServices = make(map[uint]SubServiceSelection, len(entry.SubServices))
			for _, sub := range entry.SubServices {
				cat.SubServices[sub.ID] = SubServiceSelection{
					Performed: sub.WasPerformed,
					Notes:     sub.SubServiceNotes,
				}
			}
		}
		state[entry.CategoryID] = cat
	}
	return state
}
