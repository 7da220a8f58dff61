package models

// ModelRegistryBody is the envelope every BFF response is wrapped in
type ModelRegistryBody[T any] struct {
	Data T `json:"data"`
}

// ErrorEnvelope is the body of a failed BFF response
type ErrorEnvelope struct {
	Error HTTPError `json:"error"`
}

// HTTPError describes a failed request
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// List is a page of registry entities
type List[T any] struct {
	Items         []T    `json:"items"`
	Size          int    `json:"size"`
	PageSize      int    `json:"pageSize"`
	NextPageToken string `json:"nextPageToken"`
}
