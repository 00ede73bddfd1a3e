package session

// Wallet receives the session reward. Credit is called exactly once, on
// the transition to Won, and never on Lost.
type Wallet interface {
	Credit(amount int) error
}

// SkinProvider supplies the cosmetic sprite of the player token.
// It is consulted only when the token is created during setup.
type SkinProvider interface {
	CurrentTokenSpriteID() string
}

// DefaultSpriteID is used when no skin provider is configured.
const DefaultSpriteID = "player_plane"

// EventKind identifies a notification emitted by the session.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventTokenMoved
	EventMistake
	EventShake
	EventRevealShown
	EventRevealHidden
)

// Event is delivered to the Notifier hook. Only the fields relevant to the
// kind are set.
type Event struct {
	Kind  EventKind
	From  State // EventStateChanged
	To    State // EventStateChanged
	Cell  Cell  // EventTokenMoved, EventMistake
	Lives int   // EventMistake, EventShake
}

// Notifier is the render/notify hook. It is called synchronously from the
// session's own timeline and must not call back into the session.
type Notifier func(Event)
