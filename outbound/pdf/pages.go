package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"eticket-invoice/common/constant"
	"eticket-invoice/model"
)

// recordHeader draws the event-or-product identity block at the top of an
// iteration page.
func (e *Engine) recordHeader(ctx context.Context, d *doc, rv recordView, header model.Header) {
	startX := constant.PageMargin * 1.2
	contentWidth := 300.0

	d.setTextColor(constant.ColorText)
	d.setFont("B", 15)
	d.writeAt(startX, d.pdf.GetY(), contentWidth, "L", rv.name)
	d.moveDown(1)

	d.setFont("", 9)
	addr := rv.location.Address
	for _, line := range []string{
		"City: " + addr.City,
		"Address Line: " + addr.LineOne,
		"Postal Code: " + addr.PostalCode,
		"State: " + addr.State,
		"Location Name: " + rv.location.Name,
	} {
		d.writeAt(startX, d.pdf.GetY(), contentWidth, "L", line)
	}

	d.moveDown(1)
	e.showDate(ctx, d, header, startX)

	d.setFont("", 9)
	d.writeAt(startX, d.pdf.GetY(), contentWidth, "L", "Start Date                       End Date")
}

// ticketBlock draws one ticket's detail lines. An out-of-range index is
// logged and skipped so the rest of the page still renders.
func (d *doc) ticketBlock(ctx context.Context, tickets []model.Ticket, index int) {
	if index < 0 || index >= len(tickets) {
		slog.ErrorContext(ctx, "invalid ticket index", slog.Int("index", index), slog.Int("tickets", len(tickets)))
		return
	}

	ticket := tickets[index]

	d.setFont("", 12)
	d.write("Name: " + orNA(ticket.Name))

	d.setFont("", 8)
	d.write("Details: " + orNA(ticket.Details))
	d.write("ID: " + orNA(ticket.Id))
	d.write("Party: " + partyOrNA(ticket.Party))
	d.write("Price: " + strconv.FormatInt(ticket.Price, 10))
	d.write("Quantity: " + strconv.FormatInt(ticket.Quantity, 10))
	d.write("Sale Start: " + epochOrNA(ticket.SaleStart))

	if hasOptionResponses(ticket.Options) {
		d.setFont("", 10)
		d.write("Responses")

		for _, opt := range ticket.Options {
			if opt.Response == nil {
				continue
			}

			d.setFont("", 9)
			d.write("Title: " + orNA(opt.Title))
			d.write("Responses: " + orNA(*opt.Response))
		}
	}

	d.moveDown(0.3)
}

// itemBlock draws one purchased item and its title/response pairs. Unlike
// tickets, a zero price or quantity prints as blank rather than "N/A".
func (d *doc) itemBlock(item model.Item, index int) {
	d.moveDown(1)

	d.setTextColor(constant.ColorText)
	d.setFont("", 12)
	d.write(fmt.Sprintf("Item %d: %s", index+1, item.Name))

	d.setFont("", 10)
	d.write("Price: $" + orBlank(item.Price))
	d.write("Quantity: " + orBlank(item.Quantity))
	d.write("Type: " + item.Type)
	d.write("Details: " + item.Details)

	d.moveDown(1)

	for _, resp := range item.Responses {
		d.setFont("", 10)
		d.write("Title: " + resp.Title)
		d.write("Response: " + resp.Response)
		d.moveDown(1)
	}

	d.moveDown(1)
}
