package models

type LoadResponse struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type RewriteResponse struct {
	RewrittenResume string `json:"rewritten_resume"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
