package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"eticket-invoice/common/constant"
	"eticket-invoice/model"
)

// summaryPage emits the first page: business header, optional event summary
// with its image, the customer block, the invoice table and the footer line.
func (e *Engine) summaryPage(ctx context.Context, d *doc, order model.Order) {
	e.summaryHeader(ctx, d, order.Header)

	if order.Event != nil {
		d.moveDown(3)
		e.eventSummary(ctx, d, order)
		e.drawEventImage(ctx, d, order.Event)
		d.moveDown(5)
	}

	e.customerInformation(ctx, d, order)
	d.invoiceTable(order)
	d.summaryFooter()
}

func (e *Engine) summaryHeader(ctx context.Context, d *doc, header model.Header) {
	d.drawImageFile(ctx, e.logoPath, constant.HeaderLogoX, constant.HeaderLogoY, constant.HeaderLogoSize, 0)

	d.setTextColor(constant.ColorText)
	d.setFont("", 20)
	d.writeAt(constant.HeaderTitleX, constant.HeaderTitleY, 300, "L", header.Application)

	d.setFont("", 10)
	d.writeAt(200, 50, 345, "R", header.Business)
	d.writeAt(200, 65, 345, "R", header.BusinessCity)
	d.writeAt(200, 80, 345, "R", header.BusinessWebsite)

	d.moveDown(1)
}

// eventSummary draws the wide event block used only on the summary page.
func (e *Engine) eventSummary(ctx context.Context, d *doc, order model.Order) {
	ev := order.Event
	startX := constant.PageMargin * 0.3
	contentWidth := 500.0

	d.setTextColor(constant.ColorText)
	d.setFont("B", 15)
	d.writeAt(startX, d.pdf.GetY(), contentWidth, "L", "Event Name: "+ev.Name)
	d.moveDown(1)

	d.setFont("", 9)
	addr := ev.Location.Address
	for _, line := range []string{
		"City: " + addr.City,
		"Address Line: " + addr.LineOne,
		"Postal Code: " + addr.PostalCode,
		"State: " + addr.State,
		"Location Name: " + ev.Location.Name,
	} {
		d.writeAt(startX, d.pdf.GetY(), contentWidth, "L", line)
	}

	d.moveDown(1)
	e.showDate(ctx, d, order.Header, startX)

	d.setFont("", 9)
	d.writeAt(startX, d.pdf.GetY(), contentWidth, "L", "Start Date                       End Date")

	d.moveDown(2)
}

func (e *Engine) drawEventImage(ctx context.Context, d *doc, ev *model.Event) {
	if len(ev.Images) == 0 || ev.Images[0] == "" {
		return
	}

	pageW, _ := d.pageSize()
	x := pageW - constant.RepImageWidth - constant.RepImageRightMargin

	e.fetchAndDraw(ctx, d, ev.Images[0], x, constant.EventImageY, constant.RepImageWidth, 0)
}

// customerInformation draws the "Order Confirmation" block: order id tail,
// localized order date, truncated email, seller, and event name/date.
func (e *Engine) customerInformation(ctx context.Context, d *doc, order model.Order) {
	top := d.pdf.GetY() + 20

	d.setTextColor(constant.ColorText)
	d.setFont("", 20)
	d.writeAt(53, top, 300, "L", "Order Confirmation")

	d.hr(top + 25)
	top += 40

	orderDate := e.parseDate(ctx, order.Header.OrderDate)
	orderDateTime := formatDateTime(orderDate, e.loc)

	var eventName, eventDateTime string
	if order.Event != nil {
		eventName = order.Event.Name
		eventDateTime = formatDateTime(time.Unix(order.Event.Start, 0), e.loc)
	}

	d.setFont("", 10)
	d.writeAt(50, top, 100, "L", "Order Id:")
	d.setFont("B", 10)
	d.writeAt(150, top, 140, "L", ShortOrderId(order.Header.OrderId))
	d.setFont("", 10)
	d.writeAt(50, top+15, 100, "L", "Order Date:")
	d.writeAt(150, top+15, 140, "L", orderDateTime)
	d.writeAt(50, top+30, 100, "L", "Email:")
	d.writeAt(150, top+30, 140, "L", TruncateEmail(order.Header.CustomerEmail))

	d.setFont("B", 10)
	d.writeAt(300, top, 245, "L", order.Header.Seller)
	d.setFont("", 10)
	d.writeAt(300, top+15, 245, "L", eventName)
	d.writeAt(300, top+30, 245, "L", eventDateTime)

	d.hr(top + 52)
	d.pdf.SetY(top + 54)
}

// parseDate falls back to the current clock when the value does not parse;
// the anomaly is logged and rendering continues.
func (e *Engine) parseDate(ctx context.Context, value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		slog.ErrorContext(ctx, "invalid date in order header",
			slog.String("value", value),
			slog.Any(constant.LogFieldErr, err))
		return e.TimeNow()
	}
	return t
}

// showDate renders "8/9/2024   >    8/9/2024" from the order and end dates.
func (e *Engine) showDate(ctx context.Context, d *doc, header model.Header, leftX float64) {
	orderDate := formatSlashDate(e.parseDate(ctx, header.OrderDate), e.loc)
	endDate := formatSlashDate(e.parseDate(ctx, header.End), e.loc)

	const spaceBetween = "   "

	d.moveDown(0.3)
	d.setFont("", 15)
	d.writeAt(leftX, d.pdf.GetY(), 300, "L", fmt.Sprintf("%s%s>%s %s", orderDate, spaceBetween, spaceBetween, endDate))
	d.moveDown(0.2)
}

// invoiceTable draws the line-item table with a running subtotal and the
// Subtotal/Tax/Total footer rows. Tax defaults to zero when absent.
func (d *doc) invoiceTable(order model.Order) {
	tableTop := d.pdf.GetY() + 20

	d.setFont("B", 10)
	d.tableRow(tableTop, "Item", "Unit Cost", "Quantity", "Line Total")

	var subtotal int64
	d.setFont("", 10)

	for idx, item := range order.Items {
		pos := tableTop + float64(idx+1)*constant.TableRowHeight
		lineTotal := LineTotal(item.Price, item.Quantity)
		subtotal += lineTotal

		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}

		d.tableRow(pos, item.Name,
			FormatCurrency(float64(item.Price)),
			strconv.FormatInt(quantity, 10),
			FormatCurrency(float64(lineTotal)))

		d.hr(pos + 20)
	}

	tax := order.Tax
	total := subtotal + tax

	subtotalPos := tableTop + float64(len(order.Items)+1)*constant.TableRowHeight
	d.tableRow(subtotalPos, "", "", "Subtotal", FormatCurrency(float64(subtotal)))
	d.tableRow(subtotalPos+30, "", "", "Tax", FormatCurrency(float64(tax)))
	d.tableRow(subtotalPos+60, "", "", "Total", FormatCurrency(float64(total)))

	d.pdf.SetY(subtotalPos + 90)
}

func (d *doc) tableRow(y float64, itemName, unitCost, quantity, lineTotal string) {
	startX := constant.TableStartX
	spacing := constant.TableColSpacing

	d.writeAt(startX, y, spacing, "L", itemName)
	d.writeAt(startX+spacing, y, spacing, "C", unitCost)
	d.writeAt(startX+2*spacing, y, spacing, "C", quantity)
	d.writeAt(startX+3*spacing, y, 140, "R", lineTotal)
}

func (d *doc) summaryFooter() {
	d.setFont("", 10)
	d.writeAt(constant.PageMargin, constant.SummaryFooterY, 500, "C", "Thank you for your business.")
}
