package services

import "github.com/google/uuid"

// validID reports whether id can name a stored row. Every key is a UUID, so
// anything else cannot exist and is answered without a store round-trip.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// canonicalID returns id in the lower-case hyphenated form the store hands
// out. Postgres reads uuid input case-insensitively, so comparisons made in
// Go must use this form too.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// sameID reports whether a and b name the same row.
func sameID(a, b string) bool {
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ua == ub
}
