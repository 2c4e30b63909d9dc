package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PurchasesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "easyceipt_purchases_created_total",
			Help: "Number of purchases created",
		},
	)

	ReceiptsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "easyceipt_receipts_generated_total",
			Help: "Number of PDF receipts generated",
		},
	)

	ReceiptRenderTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "easyceipt_receipt_render_seconds",
			Help: "Time taken to render a PDF receipt",
		},
	)
)

func Register() {
	prometheus.MustRegister(PurchasesCreated, ReceiptsGenerated, ReceiptRenderTime)
}
