package integration

import (
	"github.com/rewardworks/receipt-points/internal/models"
)

// ReceiptBuilder provides helper methods for building test receipts.
type ReceiptBuilder struct {
	receipt models.Receipt
}

// NewReceiptBuilder creates a new ReceiptBuilder.
func NewReceiptBuilder() *ReceiptBuilder {
	return &ReceiptBuilder{}
}

// WithRetailer sets the retailer name.
func (b *ReceiptBuilder) WithRetailer(retailer string) *ReceiptBuilder {
	b.receipt.Retailer = retailer
	return b
}

// WithPurchaseDate sets the purchase date.
func (b *ReceiptBuilder) WithPurchaseDate(date string) *ReceiptBuilder {
	b.receipt.PurchaseDate = date
	return b
}

// WithPurchaseTime sets the purchase time.
func (b *ReceiptBuilder) WithPurchaseTime(time string) *ReceiptBuilder {
	b.receipt.PurchaseTime = time
	return b
}

// WithItem appends one line item.
func (b *ReceiptBuilder) WithItem(description, price string) *ReceiptBuilder {
	b.receipt.Items = append(b.receipt.Items, models.Item{
		ShortDescription: description,
		Price:            price,
	})
	return b
}

// WithTotal sets the total amount.
func (b *ReceiptBuilder) WithTotal(total string) *ReceiptBuilder {
	b.receipt.Total = total
	return b
}

// Build returns the assembled receipt.
func (b *ReceiptBuilder) Build() models.Receipt {
	return b.receipt
}

// TargetReceipt returns the five-item Target receipt worth 28 points.
func TargetReceipt() models.Receipt {
	return NewReceiptBuilder().
		WithRetailer("Target").
		WithPurchaseDate("2022-01-01").
		WithPurchaseTime("12:00").
		WithItem("Mountain Dew 12PK", "6.49").
		WithItem("Emils Cheese Pizza", "12.25").
		WithItem("Knorr Creamy Chicken", "1.26").
		WithItem("Doritos Nacho Cheese", "3.35").
		WithItem("   Klarbrunn 12-PK 12 FL OZ  ", "12.00").
		WithTotal("35.35").
		Build()
}

// CornerMarketReceipt returns the four-Gatorade receipt worth 109 points.
func CornerMarketReceipt() models.Receipt {
	b := NewReceiptBuilder().
		WithRetailer("M&M Corner Market").
		WithPurchaseDate("2022-03-20").
		WithPurchaseTime("14:33").
		WithTotal("9.00")
	for i := 0; i < 4; i++ {
		b.WithItem("Gatorade", "2.25")
	}
	return b.Build()
}
