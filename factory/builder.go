package factory

// Factory builds values of T on demand.
type Factory[T any] interface {
	Build() T
	BuildMany(n int) []T
}
