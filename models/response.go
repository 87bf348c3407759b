package models

// Response is the envelope of the users API. Data holds the RecordCollection
// on success, and ErrorCode names the failure kind otherwise
// (resource_read_error, parse_error, internal_error).
type Response struct {
	Success      int         `json:"success"`
	ErrorCode    string      `json:"error_code,omitempty"`
	ErrorDetails string      `json:"error_details,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}
