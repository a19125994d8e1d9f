// Package query holds shared query primitives for repositories.
package query

// Pagination describes limit/offset paging with a sort order.
type Pagination struct {
	Limit  *int
	Offset *int
	Order  string
}

// LimitOrDefault returns the requested limit, or def when unset.
func (p *Pagination) LimitOrDefault(def int) int {
	if p == nil || p.Limit == nil || *p.Limit < 1 {
		return def
	}
	return *p.Limit
}

// OffsetOrZero returns the requested offset, or 0 when unset.
func (p *Pagination) OffsetOrZero() int {
	if p == nil || p.Offset == nil || *p.Offset < 0 {
		return 0
	}
	return *p.Offset
}
