package models

// CombinedResult joins one field of a comment with one field of a post.
// It only exists when both upstream fetches succeeded.
type CombinedResult struct {
	FirstField  string `json:"firstField" yaml:"firstField"`   // Email of the comment
	SecondField string `json:"secondField" yaml:"secondField"` // Title of the post
}

// NewCombinedResult builds the joined value from both upstream resources.
func NewCombinedResult(comment Comment, post Post) CombinedResult {
	return CombinedResult{
		FirstField:  comment.Email,
		SecondField: post.Title,
	}
}
