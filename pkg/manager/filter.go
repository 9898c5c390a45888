package manager

import "strings"

// Filter accepts or rejects a release title on literal, case-sensitive
// substring matching. Every include entry must be present (logical AND); any
// exclude entry present rejects. An empty include list passes by default.
type Filter struct {
	include []string
	exclude []string
}

func NewFilter(include, exclude []string) Filter {
	return Filter{include: include, exclude: exclude}
}

func (f Filter) Accept(title string) bool {
	for _, sub := range f.include {
		if !strings.Contains(title, sub) {
			return false
		}
	}
	for _, sub := range f.exclude {
		if sub != "" && strings.Contains(title, sub) {
			return false
		}
	}
	return true
}
