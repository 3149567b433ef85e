package models

// Receipt represents a submitted purchase receipt.
// Monetary amounts and the purchase date/time are kept as the raw strings the
// client sent; the points engine parses them tolerantly at scoring time.
type Receipt struct {
	ID           string `json:"id,omitempty"`
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"` // YYYY-MM-DD
	PurchaseTime string `json:"purchaseTime"` // HH:MM, 24-hour clock
	Items        []Item `json:"items"`
	Total        string `json:"total"`
}

// Item represents one purchased line on a receipt.
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// ProcessResponse represents the response to POST /receipts/process.
type ProcessResponse struct {
	ID string `json:"id"`
}

// PointsResponse represents the response to GET /receipts/{id}/points.
type PointsResponse struct {
	Points int `json:"points"`
}
