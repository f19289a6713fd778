package systems

import "strings"

// MatchWord scans a retired drop's probe text against the dictionary
// Returns the first word, in dictionary order, that is a contiguous substring of probe
// and not yet claimed. At most one word is reported per call
func MatchWord(probe string, words []string, claimed func(string) bool) (string, bool) {
	if probe == "" {
		return "", false
	}
	for _, w := range words {
		if w == "" || claimed(w) {
			continue
		}
		if strings.Contains(probe, w) {
			return w, true
		}
	}
	return "", false
}
