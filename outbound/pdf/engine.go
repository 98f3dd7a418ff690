package pdf

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"eticket-invoice/common"
	"eticket-invoice/common/constant"
	"eticket-invoice/common/contract"
	"eticket-invoice/common/otel"
	"eticket-invoice/model"

	"github.com/spf13/viper"
)

// Engine assembles the invoice document: one summary page, then one tall page
// per ticket/product/item index. Rendering is strictly sequential; image
// fetches are the only blocking points and each failure is contained to the
// element it would have drawn.
type Engine struct {
	Fetcher contract.ImageFetcher
	QR      contract.QRGenerator

	TimeNow func() time.Time

	loc              *time.Location
	logoPath         string
	iosBadgePath     string
	androidBadgePath string
	qrPayload        string
	iosStoreUrl      string
	androidStoreUrl  string
	appLineOne       string
	appLineTwo       string
}

func NewEngine(cfg *viper.Viper, fetcher contract.ImageFetcher, qr contract.QRGenerator) *Engine {
	e := &Engine{
		Fetcher: fetcher,
		QR:      qr,
		TimeNow: time.Now,

		logoPath:         stringOr(cfg, "assets.logo", "logo.png"),
		iosBadgePath:     stringOr(cfg, "assets.ios_badge", "ios.png"),
		androidBadgePath: stringOr(cfg, "assets.android_badge", "android.png"),
		qrPayload:        stringOr(cfg, "qr.payload", "https://google.com"),
		iosStoreUrl:      stringOr(cfg, "app.ios_url", "https://apps.apple.com/us/genre/ios/id36"),
		androidStoreUrl:  stringOr(cfg, "app.android_url", "https://play.google.com/store/apps"),
		appLineOne:       stringOr(cfg, "app.strip_line_one", "This piece of paper will not give you tasty love"),
		appLineTwo:       stringOr(cfg, "app.strip_line_two", "The Yurplan app does"),
	}

	zone := stringOr(cfg, "render.timezone", "America/New_York")
	loc, err := time.LoadLocation(zone)
	if err != nil {
		slog.Warn("failed to load render timezone, using fixed EST offset",
			slog.String("timezone", zone), slog.Any(constant.LogFieldErr, err))
		loc = time.FixedZone(zoneSuffix, -5*60*60)
	}
	e.loc = loc

	return e
}

func stringOr(cfg *viper.Viper, key, fallback string) string {
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return fallback
}

// recordView is the single source a ticket/product page renders from; it
// replaces the former near-clone event and product drawing paths.
type recordView struct {
	name     string
	location model.Location
	tickets  []model.Ticket
	images   []string
}

func viewFromEvent(ev *model.Event) recordView {
	return recordView{name: ev.Name, location: ev.Location, tickets: ev.Tickets, images: ev.Images}
}

func viewFromProduct(p *model.Product) recordView {
	return recordView{name: p.Name, location: p.Location, tickets: p.Tickets, images: p.Images}
}

// Render writes the paginated invoice for order to w. Per-element failures
// (images, QR, bad indices, unparseable dates) are logged and skipped; the
// document is always finalized. The returned error covers only a cancelled
// context or a sink that cannot be written.
func (e *Engine) Render(ctx context.Context, order model.Order, w io.Writer) error {
	ctx, span := otel.Tracer.Start(ctx, "Engine.Render")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	var tickets, product []model.Ticket
	if order.Event != nil {
		tickets = order.Event.Tickets
	}
	if order.Product != nil {
		product = order.Product.Tickets
	}
	items := order.Items

	available := tickets
	if len(available) == 0 {
		available = product
	}

	maxLength := len(available)
	if len(items) > maxLength {
		maxLength = len(items)
	}

	eventCheck := order.Event != nil && len(order.Event.Tickets) > 0
	productsCheck := order.Product != nil && len(order.Product.Tickets) > 0

	slog.InfoContext(ctx, "rendering invoice", traceIdAttr,
		slog.Bool("event_available", eventCheck),
		slog.Bool("products_available", productsCheck),
		slog.Int("pages", 1+maxLength))

	d := newDoc()

	e.summaryPage(ctx, d, order)

	d.addTallPage()

	for i := 0; i < maxLength; i++ {
		if err := ctx.Err(); err != nil {
			common.UtilSpanError(span, err)
			return err
		}

		if eventCheck && i < len(tickets) {
			e.recordBlock(ctx, d, viewFromEvent(order.Event), order, i)
		}

		if productsCheck && i < len(product) {
			e.recordBlock(ctx, d, viewFromProduct(order.Product), order, i)
		}

		if i < len(items) {
			d.itemBlock(items[i], i)
		}

		e.drawQRCode(ctx, d)
		e.drawSellerImage(ctx, d)
		e.staticTerms(ctx, d, order)

		if i < maxLength-1 {
			d.addTallPage()
		}
	}

	if err := d.pdf.Output(w); err != nil {
		slog.ErrorContext(ctx, "failed to write invoice document", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	slog.InfoContext(ctx, "invoice rendered", traceIdAttr)

	return nil
}

// recordBlock draws the event-or-product header, the representative image,
// and the indexed ticket detail, separated by thin rules.
func (e *Engine) recordBlock(ctx context.Context, d *doc, rv recordView, order model.Order, i int) {
	e.recordHeader(ctx, d, rv, order.Header)

	e.drawRepresentativeImage(ctx, d, order)

	d.moveDown(0.3)
	d.thinRule()
	d.moveDown(0.3)

	d.ticketBlock(ctx, rv.tickets, i)

	d.moveDown(0.3)
	d.thinRule()
	d.moveDown(0.3)
}

// drawRepresentativeImage places items[0].image in the top-right corner of
// the page. The first item is used for every iteration, matching the
// upstream behavior; representativeImageURL is the single place to change
// if this ever becomes per-ticket.
func (e *Engine) drawRepresentativeImage(ctx context.Context, d *doc, order model.Order) {
	url := representativeImageURL(order)
	if url == "" {
		return
	}

	pageW, _ := d.pageSize()
	x := pageW - constant.RepImageWidth - constant.RepImageRightMargin

	e.fetchAndDraw(ctx, d, url, x, constant.RepImageY, constant.RepImageWidth, 0)
}

func representativeImageURL(order model.Order) string {
	if len(order.Items) == 0 {
		return ""
	}
	return order.Items[0].Image
}

// fetchAndDraw downloads url to a temp file, draws it, and deletes the file.
// Cleanup runs even when drawing fails; fetch or draw errors are logged and
// the page continues without the image.
func (e *Engine) fetchAndDraw(ctx context.Context, d *doc, url string, x, y, w, h float64) {
	path, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		slog.ErrorContext(ctx, "failed to download image",
			slog.String(constant.LogFieldUrl, url),
			slog.Any(constant.LogFieldErr, err))
		return
	}

	defer func() {
		if _, statErr := os.Stat(path); statErr == nil {
			if removeErr := os.Remove(path); removeErr != nil {
				slog.WarnContext(ctx, "failed to remove temp image", slog.Any(constant.LogFieldErr, removeErr))
			}
		}
	}()

	d.drawImageFile(ctx, path, x, y, w, h)
}

// drawQRCode centers the code horizontally at the current cursor.
func (e *Engine) drawQRCode(ctx context.Context, d *doc) {
	raster, err := e.QR.Generate(e.qrPayload, 256)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate qr code", slog.Any(constant.LogFieldErr, err))
		return
	}

	pageW, _ := d.pageSize()
	x := (pageW - constant.QrImageSize) / 2

	d.drawImageBytes(ctx, "qr-code", raster, x, d.pdf.GetY(), constant.QrImageSize, constant.QrImageSize)
}

// drawSellerImage draws the circular-clipped seller badge to the right of
// the QR code.
func (e *Engine) drawSellerImage(ctx context.Context, d *doc) {
	pageW, _ := d.pageSize()
	diameter := constant.SellerCircleDiameter
	x := (pageW-diameter)/2 + constant.SellerCircleOffsetX
	y := d.pdf.GetY()
	cx, cy, r := x+diameter/2, y+diameter/2, diameter/2

	d.pdf.SetFillColor(constant.ColorSellerCircle[0], constant.ColorSellerCircle[1], constant.ColorSellerCircle[2])
	d.pdf.Circle(cx, cy, r, "FD")

	d.pdf.ClipCircle(cx, cy, r, false)
	d.drawImageFile(ctx, e.logoPath, x, y, diameter, diameter)
	d.pdf.ClipEnd()
}
