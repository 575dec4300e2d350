package openai

// Ptr returns a pointer to v, for optional request fields.
func Ptr[T any](v T) *T { return &v }
