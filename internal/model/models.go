package model

// Source encodings a submission body can arrive in.
const (
	SourceJSON = "json"
	SourceForm = "form"
)

// Submission is the record persisted for one accepted lead. Optional
// fields are pointers so absent values are omitted from the stored item
// instead of being written as nulls.
type Submission struct {
	UserID     string  `json:"userId" dynamodbav:"userId"`
	Name       string  `json:"name" dynamodbav:"name"`
	Email      string  `json:"email" dynamodbav:"email"`
	Message    *string `json:"message,omitempty" dynamodbav:"message,omitempty"`
	Phone      *string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	SourceType string  `json:"sourceType" dynamodbav:"sourceType"`
	CreatedAt  string  `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt  string  `json:"updatedAt" dynamodbav:"updatedAt"`
}
