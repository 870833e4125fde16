package timeutil

import "time"

// AgeAt returns the number of whole years between birth and now, compared
// as calendar dates. The count drops by one while now's month/day precedes
// birth's month/day, so a Feb 29 birthday is reached on Mar 1 in non-leap
// years. A birth date after now yields a negative age.
func AgeAt(birth, now time.Time) int {
	by, bm, bd := birth.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}
