package session

type (
	// LifetimeHandler is called when a Session is removed from its Store,
	// e.g. to release agent-side bookkeeping that lives outside the
	// session/resource stores (metrics, external registries).
	LifetimeHandler func(*Session)

	lifetime struct {
		onClosed []LifetimeHandler
	}
)

// Lifetime is the process-wide container of session-removal callbacks.
var Lifetime = &lifetime{}

// OnClosed registers h to run whenever a session is removed from a Store.
func (lt *lifetime) OnClosed(h LifetimeHandler) {
	lt.onClosed = append(lt.onClosed, h)
}

// Close runs every registered callback for s. Called by Store.Remove once
// the session has already been deleted from the store.
func (lt *lifetime) Close(s *Session) {
	for _, h := range lt.onClosed {
		h(s)
	}
}
