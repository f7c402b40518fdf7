package models

// Meta carries the status code and human-readable message repeated in the
// body of every response. The HTTP status line always matches Meta.Status.
type Meta struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Envelope is the uniform response shape of the API:
//
//	{ "meta": { "status": 200, "message": "Success" }, "data": ... }
//
// Data is omitted for responses that carry no payload.
type Envelope struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data,omitempty"`
}
