package store

import (
	"strings"

	"github.com/donaldgifford/phone-resale/pkg/condition"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

const maxLimit = 500

// PhoneQuery defines optional filters for phone queries. Set filters are
// combined with AND.
type PhoneQuery struct {
	// Search matches a case-insensitive substring of model or brand.
	Search string
	// Condition keeps phones with exactly this grade.
	Condition *domain.Condition
	// Platform keeps phones whose grade has a label on this platform.
	Platform *domain.Platform
	Limit    int // 0 or anything above 500 means 500
	Offset   int
}

// Matches reports whether p passes every filter set on q.
func (q *PhoneQuery) Matches(p *domain.Phone) bool {
	if q == nil {
		return true
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Model), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}

	if q.Condition != nil && p.Condition != *q.Condition {
		return false
	}

	if q.Platform != nil && !condition.Supports(*q.Platform, p.Condition) {
		return false
	}

	return true
}

// window returns the [start, end) slice bounds of a page over n matches.
// A nil query is not paginated.
func (q *PhoneQuery) window(n int) (start, end int) {
	if q == nil {
		return 0, n
	}

	limit := q.Limit
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	start = min(max(q.Offset, 0), n)
	end = min(start+limit, n)
	return start, end
}
