package matcher

import "strings"

// DefaultSeparator splits an answer into sections
const DefaultSeparator = ","

// Policy selects how candidate sections are combined into a verdict
type Policy int

const (
	// AllSections requires every candidate section to appear in the reference
	AllSections Policy = iota
	// LastSection only considers the last candidate section. Kept for
	// compatibility with data checked by earlier versions.
	LastSection
)

// String returns the policy name used in configuration
func (p Policy) String() string {
	switch p {
	case AllSections:
		return "all"
	case LastSection:
		return "last"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a configuration value to a Policy
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AllSections, true
	case "last":
		return LastSection, true
	default:
		return AllSections, false
	}
}

// Matcher compares section lists
type Matcher struct {
	Policy    Policy
	Separator string
}

// DefaultMatcher uses AllSections and a comma separator
var DefaultMatcher = Matcher{Policy: AllSections, Separator: DefaultSeparator}

// SectionsMatch reports whether candidate matches reference using the
// default policy. An empty separator means DefaultSeparator.
func SectionsMatch(candidate, reference, separator string) bool {
	m := DefaultMatcher
	m.Separator = separator
	return m.Match(candidate, reference)
}

// Match reports whether the candidate sections are found in reference
func (m Matcher) Match(candidate, reference string) bool {
	sep := m.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	accepted := make(map[string]struct{})
	for _, section := range splitSections(reference, sep) {
		accepted[section] = struct{}{}
	}

	// strings.Split never returns an empty slice, so the loop runs at least once
	matched := false
	for _, section := range splitSections(candidate, sep) {
		_, found := accepted[section]
		if m.Policy == LastSection {
			matched = found
			continue
		}
		if !found {
			return false
		}
		matched = true
	}
	return matched
}

func splitSections(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
