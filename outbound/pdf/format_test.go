package pdf

import (
	"math"
	"testing"
	"time"

	"eticket-invoice/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected string
	}{
		{name: "whole dollars", price: 6000, expected: "$6000.00"},
		{name: "cents", price: 1234.5, expected: "$1234.50"},
		{name: "zero", price: 0, expected: "$0.00"},
		{name: "nan collapses to zero", price: math.NaN(), expected: "$0.00"},
		{name: "positive infinity collapses to zero", price: math.Inf(1), expected: "$0.00"},
		{name: "negative infinity collapses to zero", price: math.Inf(-1), expected: "$0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCurrency(tc.price))
		})
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		quantity int64
		expected int64
	}{
		{name: "price times quantity", price: 3000, quantity: 2, expected: 6000},
		{name: "zero quantity defaults to one", price: 4500, quantity: 0, expected: 4500},
		{name: "zero price", price: 0, quantity: 3, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LineTotal(tc.price, tc.quantity))
		})
	}
}

func TestTruncateEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "short email passes through", email: "a@b.co", expected: "a@b.co"},
		{name: "exactly 25 chars passes through", email: "abcdefghijklmnop@test.com", expected: "abcdefghijklmnop@test.com"},
		{name: "26 chars gets ellipsis", email: "abcdefghijklmnopq@test.com", expected: "abcdefghijklmnopq@test.co..."},
		{name: "empty", email: "", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TruncateEmail(tc.email))
		})
	}
}

func TestShortOrderId(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{name: "long id keeps tail", id: "ord_2024_0000123456789", expected: "3456789"},
		{name: "exactly 7 chars", id: "1234567", expected: "1234567"},
		{name: "short id passes through", id: "42", expected: "42"},
		{name: "empty", id: "", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ShortOrderId(tc.id))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	ts := time.Date(2024, time.August, 9, 10, 16, 0, 0, time.UTC)

	assert.Equal(t, "Aug 9 at 05:16 AM EST", formatDateTime(ts, loc))
	assert.Equal(t, "8/9/2024", formatSlashDate(ts, loc))
}

func TestOrHelpers(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "Main Hall", orNA("Main Hall"))

	assert.Equal(t, "", orBlank(0))
	assert.Equal(t, "1500", orBlank(1500))

	assert.Equal(t, "N/A", epochOrNA(0))
	assert.Equal(t, "1723190400", epochOrNA(1723190400))

	party := int64(4)
	assert.Equal(t, "N/A", partyOrNA(nil))
	assert.Equal(t, "4", partyOrNA(&party))
}

func TestHasOptionResponses(t *testing.T) {
	response := "yes"

	assert.False(t, hasOptionResponses(nil))
	assert.False(t, hasOptionResponses([]model.TicketOption{{Title: "Meal"}}))
	assert.True(t, hasOptionResponses([]model.TicketOption{
		{Title: "Meal"},
		{Title: "Seat", Response: &response},
	}))
}
