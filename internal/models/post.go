package models

import "encoding/json"

// PostIDUpperBound is the exclusive upper bound of post identifiers requested upstream.
const PostIDUpperBound = 100

// Post is the subset of an upstream post the aggregation needs.
type Post struct {
	Title string `json:"title"`
}

// UnmarshalJSON rejects payloads that do not carry a "title" string.
func (p *Post) UnmarshalJSON(data []byte) error {
	var aux struct {
		Title *string `json:"title"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Title == nil {
		return &MissingFieldError{Field: "title"}
	}
	p.Title = *aux.Title
	return nil
}
