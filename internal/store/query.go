package store

import (
	"fmt"
	"strings"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// priorityOrdinal ranks severity tiers numerically so ORDER BY never sorts them alphabetically.
const priorityOrdinal = `CASE priority
		WHEN 'critical' THEN 4
		WHEN 'high' THEN 3
		WHEN 'medium' THEN 2
		ELSE 1
	END`

const baseAlertsSelect = `SELECT ` + alertColumns + `
FROM alerts`

// filterConditions maps each alert filter to its SQL predicates. Dismissed
// alerts are never listed.
var filterConditions = map[domain.AlertFilter][]string{
	domain.FilterAll:          nil,
	domain.FilterUnread:       {"NOT is_read"},
	domain.FilterHighPriority: {"NOT is_read", "priority IN ('high', 'critical')"},
	domain.FilterRankAlerts:   {"currency = 'RANK'"},
	domain.FilterPriceAlerts:  {"currency <> 'RANK'"},
}

// AlertQuery is the typed filter for alert listings.
type AlertQuery struct {
	Filter    domain.AlertFilter
	ASIN      *string
	AlertType *domain.AlertType
	Limit     int // default 50
	Offset    int
}

// ToSQL builds the data query for an alert listing and its positional parameters.
func (q *AlertQuery) ToSQL() (dataSQL string, args []any) {
	conditions := []string{"NOT is_dismissed"}
	paramIdx := 1

	filter := q.Filter
	if !filter.Valid() {
		filter = domain.FilterAll
	}
	conditions = append(conditions, filterConditions[filter]...)

	if q.ASIN != nil {
		conditions = append(conditions, fmt.Sprintf("asin = $%d", paramIdx))
		args = append(args, *q.ASIN)
		paramIdx++
	}

	if q.AlertType != nil {
		conditions = append(conditions, fmt.Sprintf("alert_type = $%d", paramIdx))
		args = append(args, string(*q.AlertType))
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s WHERE %s ORDER BY %s DESC, created_at DESC LIMIT %d OFFSET %d",
		baseAlertsSelect, strings.Join(conditions, " AND "), priorityOrdinal, limit, offset,
	)

	return dataSQL, args
}

// selectionSQL renders a product selection as an additional predicate on the
// given ASIN and SKU columns. When both lists are set a row must match both.
// An empty selection renders nothing.
func selectionSQL(
	sel domain.ProductSelection,
	asinCol, skuCol string,
	paramIdx int,
) (clause string, args []any) {
	var parts []string

	if len(sel.ASINs) > 0 {
		parts = append(parts, fmt.Sprintf("%s = ANY($%d)", asinCol, paramIdx))
		args = append(args, sel.ASINs)
		paramIdx++
	}

	if len(sel.SellerSKUs) > 0 {
		parts = append(parts, fmt.Sprintf("%s = ANY($%d)", skuCol, paramIdx))
		args = append(args, sel.SellerSKUs)
	}

	if len(parts) == 0 {
		return "", nil
	}

	return " AND (" + strings.Join(parts, " AND ") + ")", args
}
