package domain

const AnalyticsSlots = 36

// AnalyticsSnapshot is the persisted and served form of the usage counters.
type AnalyticsSnapshot struct {
	VendorMonthly []int64 `json:"vendorMonthly"`
	RawMonthly    []int64 `json:"rawMonthly"`
}

func (s AnalyticsSnapshot) Valid() bool {
	return len(s.VendorMonthly) == AnalyticsSlots && len(s.RawMonthly) == AnalyticsSlots
}
