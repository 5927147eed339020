package query

import "github.com/oplcore/oplcore/store"

// applyResidualFilters applies the predicates the cache does not
// precompute — weight class bounds, age class, state, and
// single-federation identity — with a single linear scan over the
// already-intersected candidate set. Equipment and year are checked
// here too, since equipment categories and years without a dedicated
// cached slice reach this point unfiltered.
func applyResidualFilters(s *store.Store, f Filter, candidate []store.EntryID) []store.EntryID {
	needsScan := !f.AnyEquipment || !f.AnyYear ||
		f.WeightClass.Kind != 0 || !f.AnyState || f.AgeClass != 0 ||
		(!f.Federation.Any && !f.Federation.UseMeta)
	if !needsScan {
		return candidate
	}

	out := candidate[:0:0]
	for _, id := range candidate {
		e := s.Entry(id)

		if !f.AnyEquipment && e.Equipment != f.Equipment {
			continue
		}
		if !f.AnyYear && s.Meet(e.MeetID).Date.Year() != f.Year {
			continue
		}

		if f.WeightClass.Kind != 0 && !f.WeightClass.Matches(e.BodyweightKg) {
			continue
		}
		if f.AgeClass != 0 && e.AgeClass != f.AgeClass {
			continue
		}
		if !f.AnyState {
			state := e.State
			if state == "" {
				state = s.Meet(e.MeetID).State
			}
			if state != f.State {
				continue
			}
		}
		if !f.Federation.Any && !f.Federation.UseMeta {
			if s.Meet(e.MeetID).Federation != f.Federation.Federation {
				continue
			}
		}

		out = append(out, id)
	}
	return out
}
