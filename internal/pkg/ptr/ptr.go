package ptr

func To[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value, or fallback when ptr is nil. Upstream
// payloads leave most nested fields optional, so this shows up at every
// normalization site.
func Deref[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
