package delivery

// Actor identifies which side of the negotiation performed a transition
type Actor string

const (
	ActorBuyer  Actor = "buyer"
	ActorSeller Actor = "seller"
)

// IsValid checks if the actor is a known negotiation role
func (a Actor) IsValid() bool {
	return a == ActorBuyer || a == ActorSeller
}

// String returns the string representation of the actor
func (a Actor) String() string {
	return string(a)
}

// Counterpart returns the other side of the negotiation
func (a Actor) Counterpart() Actor {
	if a == ActorBuyer {
		return ActorSeller
	}
	return ActorBuyer
}
