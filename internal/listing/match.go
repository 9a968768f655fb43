package listing

import "strings"

// Matches reports whether keyword occurs in title, ignoring case. The test
// is a literal substring search: no trimming, tokenization or accent folding.
// An empty keyword matches everything.
func Matches(title, keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(keyword))
}
