package utils

// Value dereferences v, returning the zero value for nil.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// Ptr returns a pointer to a copy of v. Used for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}

// NonEmpty returns a pointer to s, or nil when s is empty so the field is
// omitted from partial updates.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
