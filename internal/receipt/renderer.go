package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/SolarGUY14/EasyCeipt/internal/errs"
	"github.com/SolarGUY14/EasyCeipt/internal/models"
)

const attribution = "Generated by EasyCeipt"

var columns = []string{"Date", "Vendor", "Amount", "Tax", "Total"}

// Renderer turns purchases and a team profile into receipt bytes. All
// content and totals come out of this package; the layout engine only
// typesets them, so swapping engines never touches the numbers.
type Renderer struct {
	newBuilder func() DocumentBuilder
}

func NewRenderer(newBuilder func() DocumentBuilder) *Renderer {
	return &Renderer{newBuilder: newBuilder}
}

// Render produces the receipt document. Purchases are laid out in the
// order given; the caller controls ordering.
func (r *Renderer) Render(ctx context.Context, purchases []*models.Purchase, profile *models.TeamProfile, generatedAt time.Time) ([]byte, error) {
	if len(purchases) == 0 {
		return nil, errs.NewEmptyInputError("no purchases to render")
	}

	b := r.newBuilder()
	b.AddHeader(Header{
		TeamName:    orPlaceholder(profile.TeamName),
		TeamNumber:  orPlaceholder(profile.TeamNumber),
		CoachName:   orPlaceholder(profile.CoachName),
		Email:       orPlaceholder(profile.Email),
		GeneratedAt: generatedAt.Format("January 2, 2006 3:04 PM"),
	})

	rows := make([][]string, 0, len(purchases)+3)
	var subtotal, taxTotal, grandTotal float64
	for _, p := range purchases {
		date, err := displayDate(p.TransDate)
		if err != nil {
			return nil, err
		}
		total := p.Total()
		rows = append(rows, []string{date, p.Vendor, currency(p.TotAmount), taxCell(p.TaxAmount), currency(total)})

		// summed from raw values, not the rounded row strings
		subtotal += p.TotAmount
		taxTotal += p.TaxAmount
		grandTotal += total
	}

	rows = append(rows,
		[]string{"", "", "", "", ""},
		[]string{"", "", currency(subtotal), currency(taxTotal), currency(grandTotal)},
		[]string{"", "", "Subtotal", "Total Tax", "Grand Total"},
	)

	b.AddTable(columns, rows)
	b.AddFooter(attribution)

	out, err := b.Output(ctx)
	if err != nil {
		return nil, errs.NewRenderError("failed to render receipt document", err)
	}
	return out, nil
}

func currency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// taxCell shows a dash for tax-free rows.
func taxCell(v float64) string {
	if v > 0 {
		return currency(v)
	}
	return "-"
}

// displayDate reformats a stored ISO date for display. Stored dates
// were validated on write, but malformed data must not crash a render.
func displayDate(isoDate string) (string, error) {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return "", errs.NewFormatError(fmt.Sprintf("invalid transaction date %q", isoDate))
	}
	return t.Format("01/02/2006"), nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
