package dto

// Response is the envelope every endpoint answers with. Data carries the
// payload on success, Count accompanies list payloads, and Errors carries
// per-field validation failures.
type Response struct {
	Success bool         `json:"success"`
	Count   *int         `json:"count,omitempty"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func List(data any, count int) Response {
	return Response{Success: true, Count: &count, Data: data}
}

func Msg(message string) Response {
	return Response{Success: true, Message: message}
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

func Invalid(errs []FieldError) Response {
	return Response{Success: false, Errors: errs}
}
