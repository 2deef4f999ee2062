package app

import (
	"context"

	"po-reporting/internal/core"
)

// ApplicationService is the single interface all adapters (web, CLI) call.
// It decouples presentation from the query engine: adapters pass raw
// numeric paging values, the facade normalizes them and delegates to core.
// Implementations contain no display logic.
type ApplicationService interface {
	// ListPurchaseOrders returns one page of raw purchase order lines.
	// page/perPage are the caller's raw values (NaN for absent); perPage 0
	// disables pagination.
	ListPurchaseOrders(ctx context.Context, page, perPage float64, filters core.OrderFilters) (*OrderPageResult, error)

	// ListDivisions returns per-division line counts for the whole table.
	ListDivisions(ctx context.Context) (*DivisionListResult, error)

	// ListTodayOrders returns today's orders (UTC calendar date) collapsed
	// to one entry per order, optionally narrowed to a division.
	ListTodayOrders(ctx context.Context, division string) (*CalendarListResult, error)

	// GetOrderCalendar returns one page of collapsed entries for the orders
	// arriving in the given month and year.
	GetOrderCalendar(ctx context.Context, page, perPage float64, filters core.CalendarFilters) (*CalendarPageResult, error)

	// GetPurchaseOrder returns every line of one order. An unknown order
	// yields a result with zero lines, not an error.
	GetPurchaseOrder(ctx context.Context, poNo string) (*OrderLinesResult, error)

	// AuthenticateUser verifies credentials. A nil result with nil error is
	// the uniform invalid-credentials signal.
	AuthenticateUser(ctx context.Context, userID, password string) (*core.LoginResult, error)
}
