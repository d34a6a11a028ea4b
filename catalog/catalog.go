// Package catalog holds the static artist roster. The data is loaded
// wholesale at start and never mutated at runtime.
package catalog

import (
	artistModel "tattoo-booking/models/artist"
)

// ByID returns the artist with the given id, or nil if unknown.
func ByID(id string) *artistModel.Artist {
	for i := range Artists {
		if Artists[i].ID == id {
			return &Artists[i]
		}
	}
	return nil
}

// Visible returns the roster without hidden entries, in catalog order.
func Visible() []artistModel.Artist {
	out := make([]artistModel.Artist, 0, len(Artists))
	for _, a := range Artists {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}
