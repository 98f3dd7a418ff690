package pdf

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"eticket-invoice/model"
)

const (
	emailMaxLen     = 25
	orderIdTailLen  = 7
	zoneSuffix      = "EST"
	shortDateLayout = "Jan 2"
	clockLayout     = "03:04 PM"
	slashDateLayout = "1/2/2006"
)

// FormatCurrency renders a price as "$" plus two-decimal fixed formatting.
// Non-finite input collapses to zero, so a missing price prints "$0.00".
func FormatCurrency(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		price = 0
	}
	return fmt.Sprintf("$%.2f", price)
}

// LineTotal multiplies price by quantity, defaulting quantity to one.
func LineTotal(price, quantity int64) int64 {
	if quantity == 0 {
		quantity = 1
	}
	return price * quantity
}

// TruncateEmail cuts emails longer than 25 characters down to 25 plus an
// ellipsis; shorter emails pass through unmodified.
func TruncateEmail(email string) string {
	if len(email) > emailMaxLen {
		return email[:emailMaxLen] + "..."
	}
	return email
}

// ShortOrderId keeps the last 7 characters of an order id.
func ShortOrderId(id string) string {
	if len(id) <= orderIdTailLen {
		return id
	}
	return id[len(id)-orderIdTailLen:]
}

// formatDateTime renders "Aug 9 at 05:16 AM EST" in the engine's zone.
func formatDateTime(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return t.Format(shortDateLayout) + " at " + t.Format(clockLayout) + " " + zoneSuffix
}

// formatSlashDate renders "8/9/2024" in the engine's zone.
func formatSlashDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(slashDateLayout)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// orBlank matches the item block's behavior of printing nothing for zero.
func orBlank(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

func epochOrNA(sec int64) string {
	if sec == 0 {
		return "N/A"
	}
	return strconv.FormatInt(sec, 10)
}

func partyOrNA(party *int64) string {
	if party == nil {
		return "N/A"
	}
	return strconv.FormatInt(*party, 10)
}

// hasOptionResponses reports whether any option carries a response, which
// gates the "Responses" sub-section of a ticket block.
func hasOptionResponses(options []model.TicketOption) bool {
	for _, opt := range options {
		if opt.Response != nil {
			return true
		}
	}
	return false
}
