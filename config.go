package depot

const defaultInitialCapacity = 64

// Config holds global configuration read when worlds and sets are created
var Config config = config{initialCapacity: defaultInitialCapacity}

type config struct {
	events          Events
	initialCapacity int
}

// Events are invoked after the matching mutation has completed.
// Nil callbacks are skipped.
type Events struct {
	OnCreate  func(EntityID)
	OnDestroy func(EntityID)
	OnAdd     func(EntityID, string)
	OnRemove  func(EntityID, string)
}

// SetEvents configures the world event callbacks
func (c *config) SetEvents(e Events) {
	c.events = e
}

// SetInitialCapacity sets how many entity slots new sets and worlds preallocate
func (c *config) SetInitialCapacity(n int) {
	if n < 0 {
		n = 0
	}
	c.initialCapacity = n
}

func (e Events) created(id EntityID) {
	if e.OnCreate != nil {
		e.OnCreate(id)
	}
}

func (e Events) destroyed(id EntityID) {
	if e.OnDestroy != nil {
		e.OnDestroy(id)
	}
}

func (e Events) added(id EntityID, component string) {
	if e.OnAdd != nil {
		e.OnAdd(id, component)
	}
}

func (e Events) removed(id EntityID, component string) {
	if e.OnRemove != nil {
		e.OnRemove(id, component)
	}
}
