package repository

// boolToInt converts a Go bool to 0/1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite 0/1 integer back to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
