package models

// User is a single entry of the users resource. Its fields are not validated
// and are handed to the views as they were read.
type User map[string]interface{}

// RecordCollection is the parsed content of the users resource.
type RecordCollection struct {
	Users []User `json:"users"`
}
