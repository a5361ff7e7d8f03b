package ptr

func To[T any](v T) *T {
	return &v
}

// Deref returns the zero value for a nil pointer.
func Deref[T any](p *T) T {
	var zero T
	return Or(p, zero)
}

// Or returns *p, or fallback when p is nil. Optional request fields use it
// to fall back to caller defaults.
func Or[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
