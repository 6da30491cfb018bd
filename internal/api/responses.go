package api

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty" example:"something went wrong"`
}

func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func Err(msg string) Response {
	return Response{Success: false, Error: msg}
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
