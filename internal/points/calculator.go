// Package points implements the reward points engine. A receipt's score is the
// sum of six independent rules over the retailer name, total amount, line items
// and purchase date/time. Every rule parses its own fields and maps any
// malformed or missing input to a zero contribution, so scoring a receipt never
// fails: the result is always a non-negative integer.
package points

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/rewardworks/receipt-points/internal/models"
)

var (
	one     = decimal.NewFromInt(1)
	quarter = decimal.RequireFromString("0.25")

	// descriptionRate is the per-item multiplier applied to the price when the
	// trimmed description length is a multiple of three.
	descriptionRate = decimal.RequireFromString("0.2")
)

const dateLayout = "2006-01-02"

// timeLayout accepts both "9:33" and "09:33".
const timeLayout = "15:04"

// Calculate returns the total reward points for a receipt.
// A nil receipt scores 0.
func Calculate(r *models.Receipt) int {
	if r == nil {
		return 0
	}

	points := 0
	points += retailerPoints(r.Retailer)
	points += totalPoints(r.Total)
	points += itemCountPoints(r.Items)
	points += itemDescriptionPoints(r.Items)
	points += purchaseDatePoints(r.PurchaseDate)
	points += purchaseTimePoints(r.PurchaseTime)

	return points
}

// retailerPoints awards one point per letter or digit in the retailer name.
// Classification follows Unicode, not ASCII.
func retailerPoints(retailer string) int {
	points := 0
	for _, c := range retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			points++
		}
	}
	return points
}

// totalPoints awards 50 points for a whole-dollar total and 25 points for a
// total that is a multiple of 0.25. Both checks may fire. An unparseable total
// awards nothing.
func totalPoints(total string) int {
	amount, ok := parseAmount(total)
	if !ok {
		return 0
	}

	points := 0
	if amount.Mod(one).IsZero() {
		points += 50
	}
	if amount.Mod(quarter).IsZero() {
		points += 25
	}
	return points
}

// itemCountPoints awards 5 points for every complete pair of items.
// An item still counts toward pairing even when its fields are empty.
func itemCountPoints(items []models.Item) int {
	return (len(items) / 2) * 5
}

// itemDescriptionPoints awards ceil(price * 0.2) points for every item whose
// trimmed description length is non-zero and divisible by three. Length is
// counted in characters, not bytes. Items with an unparseable price are
// skipped.
func itemDescriptionPoints(items []models.Item) int {
	points := 0
	for _, item := range items {
		desc := strings.TrimSpace(item.ShortDescription)
		length := utf8.RuneCountInString(desc)
		if length == 0 || length%3 != 0 {
			continue
		}

		price, ok := parseAmount(item.Price)
		if !ok {
			continue
		}

		points += int(price.Mul(descriptionRate).Ceil().IntPart())
	}
	return points
}

// purchaseDatePoints awards 6 points when the day of the month is odd.
func purchaseDatePoints(purchaseDate string) int {
	date, err := time.Parse(dateLayout, purchaseDate)
	if err != nil {
		return 0
	}

	if date.Day()%2 != 0 {
		return 6
	}
	return 0
}

// purchaseTimePoints awards 10 points for a purchase strictly after 14:00 and
// strictly before 16:00. The boundaries themselves do not qualify.
func purchaseTimePoints(purchaseTime string) int {
	t, err := time.Parse(timeLayout, purchaseTime)
	if err != nil {
		return 0
	}

	minutes := t.Hour()*60 + t.Minute()
	if minutes > 14*60 && minutes < 16*60 {
		return 10
	}
	return 0
}

// parseAmount parses a decimal money string. Empty or malformed input reports
// !ok rather than an error; the rules treat an unparseable amount as a zero
// contribution.
func parseAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
