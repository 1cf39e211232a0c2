package service

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultNegativeWords is the lexicon used when NEGATIVE_WORDS is not configured.
var DefaultNegativeWords = []string{
	"lazy", "disgusting", "hate", "terrible", "awful", "horrible", "stupid", "idiot",
	"worthless", "useless", "pathetic", "failure", "disgusted", "sick", "nasty", "gross",
	"filthy", "dirty", "embarrassed", "ashamed", "guilty", "hopeless", "helpless", "weak",
	"broken", "damaged", "ruined", "destroyed", "messed up",
}

type lexiconEntry struct {
	word    string
	pattern *regexp.Regexp
}

// NegativeWordDetector finds lexicon terms as whole words or phrases, ignoring case.
// It holds no mutable state and is safe for concurrent use.
type NegativeWordDetector struct {
	entries []lexiconEntry
}

func NewNegativeWordDetector(words []string) *NegativeWordDetector {
	if len(words) == 0 {
		words = DefaultNegativeWords
	}
	seen := make(map[string]struct{}, len(words))
	entries := make([]lexiconEntry, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		// Phrases match across any run of whitespace
		parts := strings.Fields(w)
		for i := range parts {
			parts[i] = regexp.QuoteMeta(parts[i])
		}
		entries = append(entries, lexiconEntry{
			word:    w,
			pattern: regexp.MustCompile(`(?i)\b` + strings.Join(parts, `\s+`) + `\b`),
		})
	}
	return &NegativeWordDetector{entries: entries}
}

// Find returns the matched lexicon terms sorted alphabetically.
func (d *NegativeWordDetector) Find(text string) []string {
	found := make([]string, 0)
	for _, e := range d.entries {
		if e.pattern.MatchString(text) {
			found = append(found, e.word)
		}
	}
	sort.Strings(found)
	return found
}
