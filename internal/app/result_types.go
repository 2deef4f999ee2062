package app

import "po-reporting/internal/core"

// OrderPageResult is returned by ListPurchaseOrders.
type OrderPageResult struct {
	Lines      []core.PurchaseOrderLine
	Pagination core.PaginationMeta
}

// DivisionListResult is returned by ListDivisions.
type DivisionListResult struct {
	Divisions []core.DivisionSummary
}

// CalendarListResult is returned by ListTodayOrders.
type CalendarListResult struct {
	Entries []core.CalendarEntry
}

// CalendarPageResult is returned by GetOrderCalendar.
type CalendarPageResult struct {
	Entries    []core.CalendarEntry
	Pagination core.PaginationMeta
}

// OrderLinesResult is returned by GetPurchaseOrder. Found is false when the
// order has no lines at all.
type OrderLinesResult struct {
	PoNo  string
	Lines []core.PurchaseOrderLine
}

// Found reports whether any line exists for the requested order.
func (r *OrderLinesResult) Found() bool {
	return len(r.Lines) > 0
}
