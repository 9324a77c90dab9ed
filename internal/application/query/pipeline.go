// Package query implements the in-memory order listing pipeline:
// search, filtering, ordering and pagination over loaded orders.
package query

import (
	"sort"
	"strings"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/enum"
	"github.com/dromero-dev/comanda-api/pkg/pagination"
)

// TypeFilter selects orders by how they are served.
type TypeFilter string

const (
	TypeFilterAll     TypeFilter = ""
	TypeFilterDineIn  TypeFilter = "En Mesa"
	TypeFilterTakeout TypeFilter = "Para llevar"
)

// SortDirection overrides the default status ordering with a plain
// lexicographic ordering on the order number.
type SortDirection string

const (
	SortDefault SortDirection = ""
	SortAsc     SortDirection = "asc"
	SortDesc    SortDirection = "desc"
)

// Filters narrows the order listing. Zero values leave each axis open.
type Filters struct {
	Status    *enum.OrderStatus
	OrderType TypeFilter
	Sort      SortDirection
}

// Run applies search, filters and ordering over orders and returns a new
// slice. It never fails: nil input and malformed records simply produce
// fewer rows. The input slice is left untouched.
func Run(orders []entity.Order, search string, filters Filters) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	term := strings.ToLower(strings.TrimSpace(search))

	for _, o := range orders {
		if term != "" && !matchesSearch(&o, term) {
			continue
		}
		if filters.Status != nil && o.Status != *filters.Status {
			continue
		}
		if !matchesType(&o, filters.OrderType) {
			continue
		}
		out = append(out, o)
	}

	sortOrders(out, filters.Sort)
	return out
}

// Page runs the pipeline and windows the result to a single page.
func Page(orders []entity.Order, search string, filters Filters, page int) *pagination.Result[entity.Order] {
	filtered := Run(orders, search, filters)
	params := &pagination.Params{Page: page, PerPage: pagination.DefaultPageSize}
	params.Validate()
	items := pagination.Window(filtered, params.Page, params.PerPage)
	return pagination.NewResult(items, pagination.New(params.Page, params.PerPage, int64(len(filtered))))
}

func matchesSearch(o *entity.Order, term string) bool {
	return strings.Contains(strings.ToLower(o.OrderNo()), term) ||
		strings.Contains(strings.ToLower(o.ClientName), term) ||
		strings.Contains(strings.ToLower(o.TableName), term)
}

func matchesType(o *entity.Order, tf TypeFilter) bool {
	switch tf {
	case TypeFilterDineIn:
		return o.IsDineIn()
	case TypeFilterTakeout:
		return o.IsTakeout()
	default:
		return true
	}
}

func sortOrders(orders []entity.Order, dir SortDirection) {
	switch dir {
	case SortAsc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].OrderNo() < orders[j].OrderNo()
		})
	case SortDesc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].OrderNo() > orders[j].OrderNo()
		})
	default:
		// Active statuses first, then by order number descending so the
		// newest orders within each group lead.
		sort.SliceStable(orders, func(i, j int) bool {
			pi, pj := orders[i].Status.ListPriority(), orders[j].Status.ListPriority()
			if pi != pj {
				return pi < pj
			}
			return orders[i].OrderNo() > orders[j].OrderNo()
		})
	}
}
