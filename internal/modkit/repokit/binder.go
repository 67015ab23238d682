package repokit

// Binder is a tiny factory that binds a domain repo to a specific Queryer.
// Binding the same repo inside a Tx is what lets the pipeline compose
// incident writes and processed-flag flips into one atomic commit.
type Binder[T any] interface {
	Bind(Queryer) T
}
