package models

import (
	"encoding/json"
	"fmt"
)

// CommentIDUpperBound is the exclusive upper bound of comment identifiers requested upstream.
const CommentIDUpperBound = 500

// Comment is the subset of an upstream comment the aggregation needs.
type Comment struct {
	Email string `json:"email"`
}

// UnmarshalJSON rejects payloads that do not carry an "email" string.
// Any other field of the upstream comment is ignored.
func (c *Comment) UnmarshalJSON(data []byte) error {
	var aux struct {
		Email *string `json:"email"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Email == nil {
		return &MissingFieldError{Field: "email"}
	}
	c.Email = *aux.Email
	return nil
}

// MissingFieldError is returned when a required field is absent from an upstream payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}
