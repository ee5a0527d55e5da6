// Package observe defines the contract through which sorting algorithms
// report the operations they perform.
//
// Calls are notifications, not commands: an observer never vetoes or alters
// an operation. Swap and Set are reported strictly after the mutation;
// Compare is reported at the comparison point and implies no mutation.
package observe

// Observer receives operation notifications from an algorithm.
type Observer interface {
	Compare(i, j int)
	Swap(i, j int)
	Set(index, value int)
}

// NoOp discards every notification. It is the observer used when an
// algorithm runs unobserved.
type NoOp struct{}

func (NoOp) Compare(i, j int)     {}
func (NoOp) Swap(i, j int)        {}
func (NoOp) Set(index, value int) {}

// OrNoOp returns o, or NoOp when o is nil.
func OrNoOp(o Observer) Observer {
	if o == nil {
		return NoOp{}
	}
	return o
}
