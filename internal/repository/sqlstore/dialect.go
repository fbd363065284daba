package sqlstore

import (
	"strconv"
	"strings"
)

// Dialect captures what differs between the SQL backends the repositories run on.
type Dialect struct {
	Name string
	// IDType and TimestampType are the column types used when creating tables.
	IDType        string
	TimestampType string
	// Placeholder returns the n-th (1-based) bind parameter. Nil keeps "?".
	Placeholder func(n int) string
	// IsUniqueViolation reports whether err is the driver's unique-constraint failure.
	IsUniqueViolation func(err error) bool
}

// Rebind rewrites the "?" placeholders of query into the dialect's form.
func (d Dialect) Rebind(query string) string {
	if d.Placeholder == nil {
		return query
	}

	var (
		b strings.Builder
		n int
	)
	b.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteString(d.Placeholder(n))
	}
	return b.String()
}

// DollarPlaceholder renders postgres style "$n" parameters.
func DollarPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}
