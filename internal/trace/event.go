package trace

import (
	"encoding/json"
	"fmt"
)

// Kind is the discriminant tag of an Event. The string values are the wire
// representation and must not change.
type Kind string

const (
	KindCompare Kind = "COMPARE"
	KindSwap    Kind = "SWAP"
	KindSet     Kind = "SET"
	KindDone    Kind = "DONE"
)

// ValidKinds lists the tags in declaration order.
var ValidKinds = []Kind{KindCompare, KindSwap, KindSet, KindDone}

// Event is a sealed interface over the four step types.
type Event interface {
	fmt.Stringer
	Kind() Kind
	event() // Sealed - only the types below implement it
}

// Compare records that positions I and J were compared. It causes no mutation.
type Compare struct {
	I int
	J int
}

// Swap records that positions I and J were exchanged.
type Swap struct {
	I int
	J int
}

// Set records a single write of Value at Index.
type Set struct {
	Index int
	Value int
}

// Done is the terminal marker of a finished sequence.
type Done struct{}

func (Compare) Kind() Kind { return KindCompare }
func (Swap) Kind() Kind    { return KindSwap }
func (Set) Kind() Kind     { return KindSet }
func (Done) Kind() Kind    { return KindDone }

func (Compare) event() {}
func (Swap) event()    {}
func (Set) event()     {}
func (Done) event()    {}

// NewCompare creates a COMPARE event.
func NewCompare(i, j int) Event { return Compare{I: i, J: j} }

// NewSwap creates a SWAP event.
func NewSwap(i, j int) Event { return Swap{I: i, J: j} }

// NewSet creates a SET event.
func NewSet(index, value int) Event { return Set{Index: index, Value: value} }

// NewDone creates the DONE event.
func NewDone() Event { return Done{} }

// String renders the event the way the step printer shows it.
func (e Compare) String() string { return fmt.Sprintf("COMPARE i=%d j=%d", e.I, e.J) }
func (e Swap) String() string    { return fmt.Sprintf("SWAP    i=%d j=%d", e.I, e.J) }
func (e Set) String() string     { return fmt.Sprintf("SET     index=%d value=%d", e.Index, e.Value) }
func (Done) String() string      { return "DONE" }

// Wire shapes. Field order is part of the contract: type first, then the
// payload fields of that tag only.
type pairWire struct {
	Type Kind `json:"type"`
	I    int  `json:"i"`
	J    int  `json:"j"`
}

type writeWire struct {
	Type  Kind `json:"type"`
	Index int  `json:"index"`
	Value int  `json:"value"`
}

type doneWire struct {
	Type Kind `json:"type"`
}

// MarshalJSON implements json.Marshaler.
func (e Compare) MarshalJSON() ([]byte, error) {
	return json.Marshal(pairWire{Type: KindCompare, I: e.I, J: e.J})
}

// MarshalJSON implements json.Marshaler.
func (e Swap) MarshalJSON() ([]byte, error) {
	return json.Marshal(pairWire{Type: KindSwap, I: e.I, J: e.J})
}

// MarshalJSON implements json.Marshaler.
func (e Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(writeWire{Type: KindSet, Index: e.Index, Value: e.Value})
}

// MarshalJSON implements json.Marshaler.
func (Done) MarshalJSON() ([]byte, error) {
	return json.Marshal(doneWire{Type: KindDone})
}
