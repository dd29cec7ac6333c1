// Package contact defines the contact record and the pure domain logic
// around it: phone normalization, client-side id assignment, and display
// ordering. Everything in this package is side-effect free.
package contact

import "strconv"

// Contact is a single record in the remote sheet. The store owns the record;
// the client only ever holds verbatim copies from the most recent fetch.
type Contact struct {
	// ID is the record identifier. The backing store does not assign ids,
	// so the client computes one at creation time (see NextID). It is
	// stored as a string but treated as numeric when generating new ids.
	ID string `json:"id"`
	// FullName is the contact's display name. May be empty.
	FullName string `json:"fullName"`
	// Email may be empty. No format validation is applied.
	Email string `json:"email"`
	// Phone is exactly 10 digits with no separators once validated.
	Phone string `json:"phone"`
}

// NextID computes the id for a newly created contact: the maximum of all
// ids that parse as integers, plus one. Contacts with unparseable ids are
// skipped. With no contacts, or none with a numeric id, the first id is "0".
//
// This is a non-atomic client-side sequence: two clients creating at the
// same time can race to the same id. That matches the backing store's
// convention and is an accepted limitation.
func NextID(contacts []Contact) string {
	maxID := 0
	found := false
	for _, c := range contacts {
		n, err := strconv.Atoi(c.ID)
		if err != nil {
			continue
		}
		if !found || n > maxID {
			maxID = n
			found = true
		}
	}
	if !found {
		return "0"
	}
	return strconv.Itoa(maxID + 1)
}
