package request

// URL part helpers used by the assembler to build a target from discrete
// segments without an intermediate allocation. Segments are joined with
// '&', i.e. they form a query string: part1&part2&...

const urlPartsSeparator = '&'

// URLPartsLength returns the number of bytes JoinURLParts will produce:
// the sum of segment lengths plus one separator per boundary.
func URLPartsLength(parts []string) int {
	if len(parts) == 0 {
		return 0
	}
	n := len(parts) - 1
	for _, p := range parts {
		n += len(p)
	}
	return n
}

// JoinURLParts appends the segments separated by '&' to dst.
func JoinURLParts(dst []byte, parts []string) []byte {
	for i, p := range parts {
		if i > 0 {
			dst = append(dst, urlPartsSeparator)
		}
		dst = append(dst, p...)
	}
	return dst
}

// WriteURLParts appends '?' followed by the joined segments to dst.
func WriteURLParts(dst []byte, parts []string) []byte {
	dst = append(dst, '?')
	return JoinURLParts(dst, parts)
}
