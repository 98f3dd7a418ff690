package constant

const (
	LogFieldErr      = "error"
	LogFieldTraceId  = "trace_id"
	LogFieldPayload  = "payload"
	LogFieldResponse = "response"
	LogFieldUrl      = "url"
)
