package stats

// Snapshot is the read-only aggregate consumed by the statistics view.
// Its JSON shape is a fixed external contract, so field names stay camelCase
// and the payload is served without the usual response envelope.
type Snapshot struct {
	TotalOrders         int64        `json:"totalOrders"`
	TopEmployee         TopEmployee  `json:"topEmployee"`
	OrderStatusCounts   []NameValue  `json:"orderStatusCounts"`
	PaymentStatusCounts []NameValue  `json:"paymentStatusCounts"`
	OrdersByMonth       []MonthTotal `json:"ordersByMonth"`
	BusiestDay          BusiestDay   `json:"busiestDay"`
}

// TopEmployee is the employee with the most assignments. Name is "N/A" when
// nothing is assigned yet.
type TopEmployee struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// NameValue is one pie-chart slice.
type NameValue struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// MonthTotal is one bar of the monthly chart; Name is "YYYY-MM".
type MonthTotal struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// BusiestDay is the calendar date with the most jobs. Date is "N/A" when
// there are no jobs at all.
type BusiestDay struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
