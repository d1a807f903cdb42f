package common

import "strings"

// ContainsFold reports whether s contains sub, ignoring case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// AnyContainsFold reports whether any element of items contains sub, ignoring case.
func AnyContainsFold(items []string, sub string) bool {
	for _, item := range items {
		if ContainsFold(item, sub) {
			return true
		}
	}
	return false
}
