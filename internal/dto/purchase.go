package dto

// CreatePurchaseRequest matches the original frontend payload. Amount
// is a pointer so a missing field is distinguishable from zero.
type CreatePurchaseRequest struct {
	Date        string   `json:"date"`
	VendorName  string   `json:"vendor_name"`
	Amount      *float64 `json:"amount"`
	TaxAmount   *float64 `json:"tax_amount"`
	PaidTax     *bool    `json:"paid_tax"`
	Description string   `json:"description"`
}

// UpdatePurchaseRequest carries a partial merge; nil fields are left
// untouched on the stored record.
type UpdatePurchaseRequest struct {
	Date        *string  `json:"date"`
	VendorName  *string  `json:"vendor_name"`
	Amount      *float64 `json:"amount"`
	TaxAmount   *float64 `json:"tax_amount"`
	RealAmount  *float64 `json:"real_amount"`
	PaidTax     *bool    `json:"paid_tax"`
	Description *string  `json:"description"`
}
