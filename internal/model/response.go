package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CountResponse is the /cars-count payload.
type CountResponse struct {
	Count int `json:"count"`
}

// MutationResult mirrors the datastore acknowledgement the original API
// returned for inserts, updates and deletes.
type MutationResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	InsertedID    string `json:"inserted_id,omitempty"`
	MatchedCount  int64  `json:"matched_count,omitempty"`
	ModifiedCount int64  `json:"modified_count,omitempty"`
	DeletedCount  int64  `json:"deleted_count,omitempty"`
}
