package http

import (
	"bytes"
	"encoding/json"
	"eticket-invoice/common"
	"eticket-invoice/common/constant"
	"eticket-invoice/common/contract"
	"eticket-invoice/common/errs"
	"eticket-invoice/common/otel"
	"eticket-invoice/model"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
	"log/slog"
	"net/http"
)

type InvoiceHttp struct {
	Renderer             contract.InvoiceRenderer
	Validate             *validator.Validate
	UsdCurrencyFormatter *message.Printer

	maxBodyBytes int64
}

func RegisterInvoiceHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	renderer contract.InvoiceRenderer,
	validate *validator.Validate,
	usdCurrencyFormatter *message.Printer,
) *InvoiceHttp {
	in := &InvoiceHttp{
		Renderer:             renderer,
		Validate:             validate,
		UsdCurrencyFormatter: usdCurrencyFormatter,

		maxBodyBytes: cfg.GetInt64("http.max_body_bytes"),
	}

	mux.HandleFunc("POST /api/invoices", in.render)

	return in
}

func (in InvoiceHttp) render(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	if in.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, in.maxBodyBytes)
	}

	var req model.RenderInvoiceRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "InvoiceHttp.render")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "render invoice receive request",
		slog.String(constant.LogFieldPayload, req.Order.Header.OrderId), traceIdAttr)

	var buf bytes.Buffer
	if err := in.Renderer.Render(ctx, *req.Order, &buf); err != nil {
		slog.ErrorContext(ctx, "failed to render invoice", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = "invoice.pdf"
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Invoice-Total", in.UsdCurrencyFormatter.Sprintf("$%d", req.Order.Total))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.ErrorContext(ctx, "failed to write invoice response", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	slog.InfoContext(ctx, "render invoice success", traceIdAttr,
		slog.Int(constant.LogFieldResponse, buf.Len()))
}
