package dto

// Response envelope uniforme del API: {success, data?, message}.
// Todos los endpoints (éxito y error) responden con esta forma.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// OK construye un envelope de éxito.
func OK(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// Fail construye un envelope de error (solo mensaje, sin data).
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
