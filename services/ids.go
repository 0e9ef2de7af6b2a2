package services

import "strconv"

// ParseID turns a path parameter into a record id. Anything that is not a
// positive integer cannot name a record and is reported as ErrNotFound.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrNotFound
	}
	return uint(id), nil
}
