package model

type ErrorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

type RenderInvoiceRequest struct {
	Order    *Order `json:"order" validate:"required"`
	Filename string `json:"filename,omitempty" validate:"omitempty,max=100"`
}
