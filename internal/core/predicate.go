package core

import (
	"fmt"
	"strings"
	"time"
)

// condKind tags the comparison a condition compiles to.
type condKind int

const (
	condEqual condKind = iota
	condLike
	condGTE
	condLTE
)

// condition is one column comparison. Conditions are combined conjunctively.
type condition struct {
	column string
	kind   condKind
	value  string
}

// predicate is an ordered conjunction of conditions.
type predicate []condition

// compile renders the predicate as a WHERE clause with positional
// placeholders starting at $1, returning the clause (leading space included)
// and the bind arguments. An empty predicate compiles to an empty clause.
func (p predicate) compile() (string, []any) {
	if len(p) == 0 {
		return "", nil
	}
	clauses := make([]string, 0, len(p))
	args := make([]any, 0, len(p))
	for _, c := range p {
		args = append(args, c.arg())
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", c.column, c.operator(), len(args)))
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (c condition) operator() string {
	switch c.kind {
	case condLike:
		return "LIKE"
	case condGTE:
		return ">="
	case condLTE:
		return "<="
	default:
		return "="
	}
}

func (c condition) arg() any {
	if c.kind == condLike {
		return "%" + c.value + "%"
	}
	return c.value
}

// OrderFilters are the optional line-level filters accepted by FindAll.
// Empty (after trimming) means absent. ArrivalDate is shorthand for an
// equal lower and upper bound; explicit bounds win when both are supplied.
type OrderFilters struct {
	Division        string
	ItemDesc        string
	ArrivalDate     string // YYYY-MM-DD, both bounds at once
	ArrivalDateFrom string // YYYY-MM-DD
	ArrivalDateTo   string // YYYY-MM-DD
}

// predicate normalizes the filters into a condition list: exact division
// match, substring item description match, and an inclusive arrival date
// range. Swapped range bounds are corrected so from <= to always holds
// (YYYY-MM-DD strings order the same way the dates do).
func (f OrderFilters) predicate() predicate {
	var p predicate

	if v := strings.TrimSpace(f.Division); v != "" {
		p = append(p, condition{column: "division", kind: condEqual, value: v})
	}
	if v := strings.TrimSpace(f.ItemDesc); v != "" {
		p = append(p, condition{column: "item_desc", kind: condLike, value: v})
	}

	from := strings.TrimSpace(f.ArrivalDateFrom)
	to := strings.TrimSpace(f.ArrivalDateTo)
	if single := strings.TrimSpace(f.ArrivalDate); single != "" && from == "" && to == "" {
		from, to = single, single
	}
	if from != "" && to != "" && from > to {
		from, to = to, from
	}
	if from != "" {
		p = append(p, condition{column: "arrival_date", kind: condGTE, value: from})
	}
	if to != "" {
		p = append(p, condition{column: "arrival_date", kind: condLTE, value: to})
	}
	return p
}

// CalendarFilters scope the order calendar to one month.
type CalendarFilters struct {
	Month    int
	Year     int
	Division string
}

// predicate returns the inclusive UTC calendar-month window on arrival_date
// plus the optional division match. Month is clamped into [1,12]; Year is
// used as-is (the caller layer range-checks it).
func (f CalendarFilters) predicate() predicate {
	month := f.Month
	if month < 1 {
		month = 1
	}
	if month > 12 {
		month = 12
	}
	first, last := monthWindow(f.Year, month)

	p := predicate{
		{column: "arrival_date", kind: condGTE, value: first},
		{column: "arrival_date", kind: condLTE, value: last},
	}
	if v := strings.TrimSpace(f.Division); v != "" {
		p = append(p, condition{column: "division", kind: condEqual, value: v})
	}
	return p
}

// monthWindow returns the first and last day of the UTC calendar month as
// YYYY-MM-DD strings. Day 0 of the following month is the last day of this
// one, which keeps February and leap years correct.
func monthWindow(year, month int) (first, last string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start.Format(dateLayout), end.Format(dateLayout)
}
