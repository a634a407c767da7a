package dyneq

// Total records, as a zero-size declaration, that equality over the
// interface I is a total equivalence relation rather than a partial one.
// It carries no behavior: instantiating it is a compile-time statement,
// and the instantiation only succeeds when I carries the Eq capability.
//
// dyneq-gen emits one Total declaration per marker combination:
//
//	var _ dyneq.Total[Shape]
//
// The restriction to total equality is deliberate; there is no partial
// counterpart.
type Total[I Eq] struct{}
