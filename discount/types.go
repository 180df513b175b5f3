package discount

// Discount mirrors the backend discount entity.
type Discount struct {
	DiscountID string  `json:"discountId"`
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TypeID     string  `json:"typeId"`
	ChannelID  *string `json:"channelId,omitempty"`
}

// CreateRequest corresponds to "Create discount" (POST /v4/discounts).
// Dates are backend-formatted strings (YYYY-MM-DD).
type CreateRequest struct {
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TypeID     string  `json:"typeId"`
}

// ApplyRequest corresponds to "Apply discount to cart"
// (POST /v4/carts/{cartId}/discounts).
type ApplyRequest struct {
	Code string `json:"code"`
}
