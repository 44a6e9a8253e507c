// Package condition maps internal condition grades to each platform's own
// grading vocabulary.
package condition

import (
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// Unsupported is returned by Label when a platform has no label for a grade.
const Unsupported = "unsupported"

// labels maps platform -> internal grade -> platform label.
var labels = map[domain.Platform]map[domain.Condition]string{
	domain.PlatformX: {
		domain.ConditionNew:   "New",
		domain.ConditionGood:  "Good",
		domain.ConditionScrap: "Scrap",
	},
	domain.PlatformY: {
		domain.ConditionNew:   "3 stars",
		domain.ConditionGood:  "2 stars",
		domain.ConditionScrap: "1 star",
	},
	domain.PlatformZ: {
		domain.ConditionNew:   "New",
		domain.ConditionGood:  "Good",
		domain.ConditionScrap: "As New",
	},
}

// Label returns the label platform p uses for grade c, or Unsupported when
// the pair is not in the table. It never panics.
func Label(p domain.Platform, c domain.Condition) string {
	if l, ok := labels[p][c]; ok {
		return l
	}
	return Unsupported
}

// Supports reports whether platform p has a label for grade c.
func Supports(p domain.Platform, c domain.Condition) bool {
	return Label(p, c) != Unsupported
}
