// Package objects holds small generic value helpers.
package objects

// DefaultIf returns def when cond(value) holds, and value otherwise.
//
//	port := objects.DefaultIf(cfg.Port, 8080, func(p int) bool { return p <= 0 })
func DefaultIf[T any](value, def T, cond func(T) bool) T {
	if cond(value) {
		return def
	}
	return value
}

// DefaultIfZero returns def when value is the zero value of T.
func DefaultIfZero[T comparable](value, def T) T {
	var zero T
	return DefaultIf(value, def, func(v T) bool { return v == zero })
}
