package entity

// SelectionSet maps a modifier group id to the chosen option ids for that
// group, in selection order. Duplicates within a group are never stored.
type SelectionSet map[uint][]uint

// Clone deep-copies the set so a draft never aliases a committed line's
// selection sequences.
func (s SelectionSet) Clone() SelectionSet {
	out := make(SelectionSet, len(s))
	for gid, opts := range s {
		cp := make([]uint, len(opts))
		copy(cp, opts)
		out[gid] = cp
	}
	return out
}

// Has reports whether optionID is currently selected in groupID.
func (s SelectionSet) Has(groupID, optionID uint) bool {
	for _, id := range s[groupID] {
		if id == optionID {
			return true
		}
	}
	return false
}
