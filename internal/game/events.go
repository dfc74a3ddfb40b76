package game

// EventType names a discrete engine event that presentation or audio layers
// may consume or ignore. Engine correctness never depends on delivery.
type EventType string

const (
	EventDeal        EventType = "deal"
	EventWin         EventType = "win"
	EventLoss        EventType = "loss"
	EventPush        EventType = "push"
	EventAchievement EventType = "achievement"
)

// Event is emitted by the round state machine at deal time and at resolution.
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message,omitempty"`
}

// EventFunc receives engine events. Subscribers must not block; the engine
// fires and forgets.
type EventFunc func(Event)

// Emitter fans events out to subscribers in registration order.
type Emitter struct {
	subs []EventFunc
}

// Subscribe registers fn to receive all subsequent events.
func (e *Emitter) Subscribe(fn EventFunc) {
	e.subs = append(e.subs, fn)
}

// Emit delivers ev to every subscriber.
func (e *Emitter) Emit(ev Event) {
	for _, fn := range e.subs {
		fn(ev)
	}
}
