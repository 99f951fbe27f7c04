package builder

import (
	"errors"
	"strings"
)

// ErrIncompleteQuery is returned by Build when SELECT or FROM is missing.
var ErrIncompleteQuery = errors.New("query requires select and from")

// Query is an immutable SQL SELECT description.
type Query struct {
	Select  string `json:"select"`
	From    string `json:"from"`
	Join    string `json:"join,omitempty"`
	Where   string `json:"where,omitempty"`
	GroupBy string `json:"group_by,omitempty"`
	OrderBy string `json:"order_by,omitempty"`
}

// SQL renders the query with clauses in canonical order, omitting empty ones.
func (q Query) SQL() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(q.Select)
	sb.WriteString(" FROM ")
	sb.WriteString(q.From)
	if q.Join != "" {
		sb.WriteString(" JOIN ")
		sb.WriteString(q.Join)
	}
	if q.Where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(q.Where)
	}
	if q.GroupBy != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(q.GroupBy)
	}
	if q.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.OrderBy)
	}
	return sb.String()
}

// QueryBuilder accumulates the clauses of a Query.
type QueryBuilder struct {
	q Query
}

// NewQuery starts an empty query builder.
func NewQuery() *QueryBuilder { return &QueryBuilder{} }

func (b *QueryBuilder) Select(cols string) *QueryBuilder {
	b.q.Select = cols
	return b
}

func (b *QueryBuilder) From(table string) *QueryBuilder {
	b.q.From = table
	return b
}

func (b *QueryBuilder) Join(table string) *QueryBuilder {
	b.q.Join = table
	return b
}

func (b *QueryBuilder) Where(cond string) *QueryBuilder {
	b.q.Where = cond
	return b
}

func (b *QueryBuilder) GroupBy(cols string) *QueryBuilder {
	b.q.GroupBy = cols
	return b
}

func (b *QueryBuilder) OrderBy(cols string) *QueryBuilder {
	b.q.OrderBy = cols
	return b
}

// Build returns the query once SELECT and FROM are set.
func (b *QueryBuilder) Build() (Query, error) {
	if strings.TrimSpace(b.q.Select) == "" || strings.TrimSpace(b.q.From) == "" {
		return Query{}, ErrIncompleteQuery
	}
	return b.q, nil
}
