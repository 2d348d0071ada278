package connectivity

// Signal adapts the platform's online/offline notification primitive.
type Signal interface {
	// IsOnline reads the live connectivity state.
	IsOnline() bool

	// OnRestored registers a one-shot callback invoked the next time the
	// state transitions from offline to online. Callbacks registered after a
	// transition wait for the following one; independently registered
	// callbacks never cancel each other. The returned func deregisters the
	// callback if it has not fired yet.
	OnRestored(fn func()) (cancel func())
}
