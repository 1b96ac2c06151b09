package common

// CommonResponse is a lightweight response wrapper used by HTTP handlers.
// The HTTP status is always 200; Code carries the outcome.
type CommonResponse struct {
	Code  int         `json:"code"`
	Msg   string      `json:"msg,omitempty"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// OK wraps data in a successful response.
func OK(data interface{}) CommonResponse {
	return CommonResponse{Code: 200, Msg: "success", Data: data}
}
