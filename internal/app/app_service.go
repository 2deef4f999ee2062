package app

import (
	"context"

	"po-reporting/internal/core"
)

type appService struct {
	orders core.OrderService
	users  core.UserService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(orders core.OrderService, users core.UserService) ApplicationService {
	return &appService{orders: orders, users: users}
}

func (s *appService) ListPurchaseOrders(ctx context.Context, page, perPage float64, filters core.OrderFilters) (*OrderPageResult, error) {
	pr := core.NormalizePaging(page, perPage)
	result, err := s.orders.FindAll(ctx, pr, filters)
	if err != nil {
		return nil, err
	}
	return &OrderPageResult{Lines: result.Lines, Pagination: result.Pagination}, nil
}

func (s *appService) ListDivisions(ctx context.Context) (*DivisionListResult, error) {
	divisions, err := s.orders.ListDivisions(ctx)
	if err != nil {
		return nil, err
	}
	return &DivisionListResult{Divisions: divisions}, nil
}

func (s *appService) ListTodayOrders(ctx context.Context, division string) (*CalendarListResult, error) {
	entries, err := s.orders.FindTodayOrders(ctx, division)
	if err != nil {
		return nil, err
	}
	return &CalendarListResult{Entries: entries}, nil
}

func (s *appService) GetOrderCalendar(ctx context.Context, page, perPage float64, filters core.CalendarFilters) (*CalendarPageResult, error) {
	pr := core.NormalizePaging(page, perPage)
	result, err := s.orders.GetCalendarEntries(ctx, pr, filters)
	if err != nil {
		return nil, err
	}
	return &CalendarPageResult{Entries: result.Entries, Pagination: result.Pagination}, nil
}

func (s *appService) GetPurchaseOrder(ctx context.Context, poNo string) (*OrderLinesResult, error) {
	lines, err := s.orders.FindOneByPoNo(ctx, poNo)
	if err != nil {
		return nil, err
	}
	return &OrderLinesResult{PoNo: poNo, Lines: lines}, nil
}

func (s *appService) AuthenticateUser(ctx context.Context, userID, password string) (*core.LoginResult, error) {
	return s.users.Login(ctx, userID, password)
}
