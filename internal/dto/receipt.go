package dto

type GenerateReceiptRequest struct {
	PurchaseIDs []string `json:"purchase_ids"`
}
