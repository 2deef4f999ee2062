package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire form of every calendar date in this package.
const dateLayout = "2006-01-02"

// PurchaseOrderLine is one row of the purchase order line table. A logical
// order is the set of lines sharing PoNo; (PoNo, PoRow) is the composite
// key. Every column except the key is nullable and carried as a pointer.
// Calendar dates are YYYY-MM-DD strings with no time-of-day component.
type PurchaseOrderLine struct {
	PoNo  string `json:"po_no"`
	PoRow int    `json:"po_row"`

	PoDate      *string `json:"po_date"`
	ArrivalDate *string `json:"arrival_date"`
	RateDate    *string `json:"rate_date"`

	Division *string `json:"division"`
	Status   *int    `json:"status"`
	ItemDesc *string `json:"item_desc"`
	ItemNo   *string `json:"item_no"`

	VendorID   *string `json:"vendor_id"`
	VendorName *string `json:"vendor_name"`

	TaxBase       *decimal.Decimal `json:"tax_base"`
	Tax           *decimal.Decimal `json:"tax"`
	Total         *decimal.Decimal `json:"total"`
	Amount        *decimal.Decimal `json:"amount"`
	AfterDiscount *decimal.Decimal `json:"after_discount"`
	UnitCost      *decimal.Decimal `json:"unit_cost"`

	QtyOrder      *decimal.Decimal `json:"qty_order"`
	OqOutstanding *decimal.Decimal `json:"oq_outstanding"`
	OqOrdered     *decimal.Decimal `json:"oq_ordered"`

	CreateDate *time.Time `json:"create_date"`
	UserCreate *string    `json:"user_create"`
	EditDate   *time.Time `json:"edit_date"`
	UserEdit   *string    `json:"user_edit"`
}

// DivisionSummary is one group of ListDivisions: the division value (nil for
// lines with no division) and its line count. Computed on demand, never stored.
type DivisionSummary struct {
	Division    *string `json:"division"`
	TotalOrders int     `json:"totalOrders"`
}

// CalendarEntry is one logical order collapsed to a representative row:
// each field is the MIN over the order's lines, so the result is
// reproducible across re-runs regardless of physical row order.
type CalendarEntry struct {
	PoNo        string  `json:"po_no"`
	PoDate      *string `json:"po_date"`
	Division    *string `json:"division"`
	Status      *int    `json:"status"`
	ArrivalDate *string `json:"arrival_date"`
}

// OrderPage is one page of line-level results.
type OrderPage struct {
	Lines      []PurchaseOrderLine
	Pagination PaginationMeta
}

// CalendarPage is one page of collapsed calendar entries. Pagination.Total
// counts distinct logical orders, not raw lines.
type CalendarPage struct {
	Entries    []CalendarEntry
	Pagination PaginationMeta
}

// OrderService is the read-only query engine over the purchase order line
// table. Implementations open no transactions: every operation is a single
// statement or an independently consistent count+fetch pair. Datastore
// errors propagate to the caller; empty results are not errors.
type OrderService interface {
	// FindAll returns one page of raw lines matching the filters, ordered by
	// po_date descending (po_no, po_row pin the order within equal dates).
	// Pagination counts lines, not logical orders.
	FindAll(ctx context.Context, pr PageRequest, filters OrderFilters) (*OrderPage, error)

	// ListDivisions groups all lines by division and counts them, ordered by
	// division ascending with NULL divisions first. Not paginated.
	ListDivisions(ctx context.Context) ([]DivisionSummary, error)

	// FindTodayOrders returns the collapsed entries for orders whose po_date
	// is the current UTC calendar date, optionally narrowed to one division.
	// Ordered by representative po_date descending, then po_no. Not paginated.
	FindTodayOrders(ctx context.Context, division string) ([]CalendarEntry, error)

	// GetCalendarEntries returns one page of collapsed entries for orders
	// whose arrival_date falls inside the requested calendar month, ordered
	// by representative po_date ascending, then po_no.
	GetCalendarEntries(ctx context.Context, pr PageRequest, filters CalendarFilters) (*CalendarPage, error)

	// FindOneByPoNo returns every raw line of one logical order, ordered by
	// po_row. A missing order yields an empty slice and no error.
	FindOneByPoNo(ctx context.Context, poNo string) ([]PurchaseOrderLine, error)
}
