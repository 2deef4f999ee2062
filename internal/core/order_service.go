package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// lineColumns is the full select list for PurchaseOrderLine. Date columns
// are cast to text so they scan as plain YYYY-MM-DD strings.
const lineColumns = `po_no, po_row,
	po_date::text, arrival_date::text, rate_date::text,
	division, status, item_desc, item_no, vendor_id, vendor_name,
	tax_base, tax, total, amount, after_discount, unit_cost,
	qty_order, oq_outstanding, oq_ordered,
	create_date, user_create, edit_date, user_edit`

// calendarColumns collapses a logical order to its representative row.
// MIN over each column keeps the result deterministic when an order spans
// multiple lines; MIN ignores NULLs, so the representative is the smallest
// non-null value per column.
const calendarColumns = `po_no,
	MIN(po_date)::text, MIN(division), MIN(status), MIN(arrival_date)::text`

type orderService struct {
	pool *pgxpool.Pool
}

// NewOrderService constructs an OrderService backed by PostgreSQL.
func NewOrderService(pool *pgxpool.Pool) OrderService {
	return &orderService{pool: pool}
}

// ── FindAll ───────────────────────────────────────────────────────────────────

func (s *orderService) FindAll(ctx context.Context, pr PageRequest, filters OrderFilters) (*OrderPage, error) {
	where, args := filters.predicate().compile()

	var total int
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM z_po_pl_po"+where, args...,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count purchase order lines: %w", err)
	}

	q := "SELECT " + lineColumns + " FROM z_po_pl_po" + where +
		" ORDER BY po_date DESC, po_no ASC, po_row ASC"
	q, args = applyPaging(q, args, pr)

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase order lines: %w", err)
	}
	defer rows.Close()

	lines := make([]PurchaseOrderLine, 0, pr.PerPage)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purchase order row iteration error: %w", err)
	}

	return &OrderPage{Lines: lines, Pagination: newPaginationMeta(total, pr)}, nil
}

// ── ListDivisions ─────────────────────────────────────────────────────────────

func (s *orderService) ListDivisions(ctx context.Context) ([]DivisionSummary, error) {
	// NULLS FIRST is spelled out: PostgreSQL would otherwise sort NULL
	// divisions last on ASC, and callers rely on the null group leading.
	rows, err := s.pool.Query(ctx, `
		SELECT division, COUNT(po_no)
		FROM z_po_pl_po
		GROUP BY division
		ORDER BY division ASC NULLS FIRST`)
	if err != nil {
		return nil, fmt.Errorf("failed to query division summary: %w", err)
	}
	defer rows.Close()

	summaries := make([]DivisionSummary, 0, 8)
	for rows.Next() {
		var ds DivisionSummary
		if err := rows.Scan(&ds.Division, &ds.TotalOrders); err != nil {
			return nil, fmt.Errorf("failed to scan division summary: %w", err)
		}
		summaries = append(summaries, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("division summary iteration error: %w", err)
	}
	return summaries, nil
}

// ── FindTodayOrders ───────────────────────────────────────────────────────────

func (s *orderService) FindTodayOrders(ctx context.Context, division string) ([]CalendarEntry, error) {
	p := predicate{{column: "po_date", kind: condEqual, value: todayUTC()}}
	if v := strings.TrimSpace(division); v != "" {
		p = append(p, condition{column: "division", kind: condEqual, value: v})
	}
	where, args := p.compile()

	rows, err := s.pool.Query(ctx,
		"SELECT "+calendarColumns+" FROM z_po_pl_po"+where+
			" GROUP BY po_no ORDER BY MIN(po_date) DESC, po_no ASC",
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query today's orders: %w", err)
	}
	defer rows.Close()

	return collectCalendarEntries(rows)
}

// ── GetCalendarEntries ────────────────────────────────────────────────────────

func (s *orderService) GetCalendarEntries(ctx context.Context, pr PageRequest, filters CalendarFilters) (*CalendarPage, error) {
	where, args := filters.predicate().compile()

	// Total counts distinct logical orders, not raw lines: page boundaries
	// follow the collapsed granularity the caller actually receives.
	var total int
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(DISTINCT po_no) FROM z_po_pl_po"+where, args...,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count calendar orders: %w", err)
	}

	q := "SELECT " + calendarColumns + " FROM z_po_pl_po" + where +
		" GROUP BY po_no ORDER BY MIN(po_date) ASC, po_no ASC"
	q, args = applyPaging(q, args, pr)

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar entries: %w", err)
	}
	defer rows.Close()

	entries, err := collectCalendarEntries(rows)
	if err != nil {
		return nil, err
	}
	return &CalendarPage{Entries: entries, Pagination: newPaginationMeta(total, pr)}, nil
}

// ── FindOneByPoNo ─────────────────────────────────────────────────────────────

func (s *orderService) FindOneByPoNo(ctx context.Context, poNo string) ([]PurchaseOrderLine, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+lineColumns+" FROM z_po_pl_po WHERE po_no = $1 ORDER BY po_row ASC",
		poNo)
	if err != nil {
		return nil, fmt.Errorf("failed to query order %q: %w", poNo, err)
	}
	defer rows.Close()

	lines := make([]PurchaseOrderLine, 0, 4)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order %q row iteration error: %w", poNo, err)
	}
	return lines, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// applyPaging appends LIMIT/OFFSET placeholders for a paginated request and
// leaves unpaginated requests untouched.
func applyPaging(q string, args []any, pr PageRequest) (string, []any) {
	if !pr.Paginated() {
		return q, args
	}
	args = append(args, pr.PerPage)
	q += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, pr.Offset())
	q += fmt.Sprintf(" OFFSET $%d", len(args))
	return q, args
}

func scanLine(rows pgx.Rows) (PurchaseOrderLine, error) {
	var l PurchaseOrderLine
	if err := rows.Scan(
		&l.PoNo, &l.PoRow,
		&l.PoDate, &l.ArrivalDate, &l.RateDate,
		&l.Division, &l.Status, &l.ItemDesc, &l.ItemNo, &l.VendorID, &l.VendorName,
		&l.TaxBase, &l.Tax, &l.Total, &l.Amount, &l.AfterDiscount, &l.UnitCost,
		&l.QtyOrder, &l.OqOutstanding, &l.OqOrdered,
		&l.CreateDate, &l.UserCreate, &l.EditDate, &l.UserEdit,
	); err != nil {
		return PurchaseOrderLine{}, fmt.Errorf("failed to scan purchase order line: %w", err)
	}
	return l, nil
}

func collectCalendarEntries(rows pgx.Rows) ([]CalendarEntry, error) {
	entries := make([]CalendarEntry, 0, 16)
	for rows.Next() {
		var e CalendarEntry
		if err := rows.Scan(&e.PoNo, &e.PoDate, &e.Division, &e.Status, &e.ArrivalDate); err != nil {
			return nil, fmt.Errorf("failed to scan calendar entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("calendar entry iteration error: %w", err)
	}
	return entries, nil
}

// todayUTC is the server's current calendar date in UTC.
func todayUTC() string {
	return time.Now().UTC().Format(dateLayout)
}
