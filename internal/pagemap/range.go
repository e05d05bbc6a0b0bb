package pagemap

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedRangeError reports a page-range token that could not be parsed.
type MalformedRangeError struct {
	Token  string
	Reason string
}

func (e *MalformedRangeError) Error() string {
	return fmt.Sprintf("malformed page range %q: %s", e.Token, e.Reason)
}

// ParseRange parses a page-range token into an ascending, gap-free list of
// 1-based page numbers. "5" yields [5], "8-9" yields [8 9]. Whitespace around
// the token is ignored.
func ParseRange(token string) ([]int, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, &MalformedRangeError{Token: token, Reason: "empty token"}
	}

	first, rest, hyphenated := strings.Cut(trimmed, "-")
	start, err := parsePageNumber(token, first)
	if err != nil {
		return nil, err
	}
	if !hyphenated {
		return []int{start}, nil
	}

	end, err := parsePageNumber(token, rest)
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, &MalformedRangeError{Token: token, Reason: "range end precedes start"}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages, nil
}

func parsePageNumber(token, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &MalformedRangeError{Token: token, Reason: "not a number"}
	}
	if n < 1 {
		return 0, &MalformedRangeError{Token: token, Reason: "page numbers are 1-based"}
	}
	return n, nil
}
