package dyneq

// Transferable is a type trait marking values that may be handed off
// between goroutines. It carries no behavior; it exists so that abstract
// interfaces additionally bounded by transferability still receive
// generated equality operators. dyneq-gen expands every interface across
// the four combinations of Transferable and Sharable.
type Transferable interface {
	Transferable()
}

// Sharable is a type trait marking values that may be used from several
// goroutines concurrently, typically because they are immutable. Like
// Transferable it is pure bookkeeping; comparisons are read-only and need
// no synchronization either way.
type Sharable interface {
	Sharable()
}

// IsTransferable grants the Transferable trait by embedding.
type IsTransferable struct{}

// Transferable implements the marker.
func (IsTransferable) Transferable() {}

// IsSharable grants the Sharable trait by embedding.
type IsSharable struct{}

// Sharable implements the marker.
func (IsSharable) Sharable() {}
