package patch

// Differs reports whether a proposed value would change the current one.
// A nil proposal never changes anything.
func Differs[T comparable](current *T, proposed *T) bool {
	if proposed == nil {
		return false
	}
	if current == nil {
		return true
	}
	return *current != *proposed
}
