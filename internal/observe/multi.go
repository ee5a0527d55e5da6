package observe

// Multi fans out notifications to several observers in order.
type Multi struct {
	observers []Observer
}

// NewMulti creates a Multi that forwards to all non-nil observers.
func NewMulti(observers ...Observer) *Multi {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &Multi{observers: filtered}
}

func (m *Multi) Compare(i, j int) {
	for _, obs := range m.observers {
		obs.Compare(i, j)
	}
}

func (m *Multi) Swap(i, j int) {
	for _, obs := range m.observers {
		obs.Swap(i, j)
	}
}

func (m *Multi) Set(index, value int) {
	for _, obs := range m.observers {
		obs.Set(index, value)
	}
}
