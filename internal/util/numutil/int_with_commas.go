package numutil

import "strconv"

// IntWithCommas formats an integer with commas as thousands separators.
//
// Example:
//
//	12345 -> "12,345"
func IntWithCommas(i int) string {
	if i < 0 {
		return "-" + IntWithCommas(-i)
	}
	if i < 1000 {
		return strconv.Itoa(i)
	}
	return IntWithCommas(i/1000) + "," + pad3(i%1000)
}

func pad3(i int) string {
	s := strconv.Itoa(i)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
