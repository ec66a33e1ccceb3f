package utils

import "github.com/microcosm-cc/bluemonday"

// strictPolicy strips all HTML. Free-text fields (names, addresses,
// order notes) pass through here before they reach storage, since they
// are echoed back to API clients verbatim.
var strictPolicy = bluemonday.StrictPolicy()

func Sanitize(s string) string {
	return strictPolicy.Sanitize(s)
}
