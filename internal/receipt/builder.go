package receipt

import (
	"context"
)

// Header carries the preformatted strings shown above the purchase
// table.
type Header struct {
	TeamName    string
	TeamNumber  string
	CoachName   string
	Email       string
	GeneratedAt string
}

// DocumentBuilder is the narrow surface of the layout engine: content
// goes in as structured sections, paginated document bytes come out.
// Pagination and page breaks are the engine's business.
type DocumentBuilder interface {
	AddHeader(h Header)
	AddTable(columns []string, rows [][]string)
	AddFooter(text string)
	Output(ctx context.Context) ([]byte, error)
}
