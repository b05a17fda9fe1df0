package common

import "strconv"

// Location formats a file position as "path:row". A zero row yields just
// the path.
func Location(path string, row int) string {
	if row == 0 {
		return path
	}

	if path == "" {
		return strconv.Itoa(row)
	}

	return path + ":" + strconv.Itoa(row)
}
