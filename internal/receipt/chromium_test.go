package receipt

import (
	"strings"
	"testing"
)

func TestChromiumBuilderHTML(t *testing.T) {
	b := NewChromiumBuilder("", 0)
	b.AddHeader(Header{
		TeamName:    "Robo Raiders",
		TeamNumber:  "1234",
		CoachName:   "Pat Smith",
		Email:       "team@example.com",
		GeneratedAt: "March 20, 2024 2:30 PM",
	})
	b.AddTable([]string{"Date", "Vendor", "Amount", "Tax", "Total"}, [][]string{
		{"03/15/2024", "Acme", "$100.00", "$8.00", "$108.00"},
	})
	b.AddFooter("Generated by EasyCeipt")

	html, err := b.renderHTML()
	if err != nil {
		t.Fatalf("renderHTML error: %v", err)
	}

	for _, want := range []string{
		"Robo Raiders",
		"#1234",
		"Pat Smith",
		"March 20, 2024 2:30 PM",
		"<th>Vendor</th>",
		"<td>$108.00</td>",
		"Generated by EasyCeipt",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}

func TestChromiumBuilderHTMLEscapes(t *testing.T) {
	b := NewChromiumBuilder("", 0)
	b.AddTable([]string{"Vendor"}, [][]string{{"<script>alert(1)</script>"}})

	html, err := b.renderHTML()
	if err != nil {
		t.Fatalf("renderHTML error: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("vendor text not escaped")
	}
}
