package models

import (
	"time"
)

// Purchase is one recorded expense. Email is the owner and the key for
// every access filter; it never changes after creation.
type Purchase struct {
	ID          string    `firestore:"id" json:"id"`
	Email       string    `firestore:"email" json:"email"`
	TransDate   string    `firestore:"transDate" json:"trans_date"` // YYYY-MM-DD
	Vendor      string    `firestore:"vendor" json:"vendor"`
	TotAmount   float64   `firestore:"totAmount" json:"tot_amount"`
	TaxAmount   float64   `firestore:"taxAmount" json:"tax_amount"`
	RealAmount  *float64  `firestore:"realAmount" json:"real_amount,omitempty"` // nil means tot + tax
	PaidTax     bool      `firestore:"paidTax" json:"paid_tax"`
	Description string    `firestore:"description" json:"description,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Total is the row total: the stored real amount when present,
// otherwise amount plus tax.
func (p *Purchase) Total() float64 {
	if p.RealAmount != nil {
		return *p.RealAmount
	}
	return p.TotAmount + p.TaxAmount
}
