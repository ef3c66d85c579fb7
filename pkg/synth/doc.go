// Package synth manufactures structurally valid placeholder values for
// arbitrary Go types.
//
// A Chain is an ordered list of Creator values; the first creator whose
// CanHandle reports true produces the value. Container creators ask the same
// chain for their element values, so nested types such as
// map[string][]*Config are synthesised depth-first without extra wiring.
//
// The Default chain handles:
//
//   - slices, arrays, maps and channels – one valid element (or pair)
//   - iter.Seq / iter.Seq2 shaped funcs – one valid step
//   - interfaces – registered stubs, standard library stand-ins, or the
//     string sentinel for the empty interface
//   - other funcs – no-ops returning zero values
//   - pointers – a pointer to a valid pointee
//   - strings – the sentinel "SomeValue"; booleans, numbers and structs – zero
//
// Synthesis is deterministic: the same chain produces equal values for the
// same type on every call.
//
// # Usage
//
//	chain := synth.Default(
//	    synth.WithStub(func() Store { return nopStore{} }),
//	    synth.WithCreators(synth.CreatorFunc(func() Clock { return fixedClock })),
//	)
//	v, err := chain.Create(reflect.TypeFor[[]Store]())
//
// # Error Handling
//
// A type no creator handles yields *NoCreatorError (matches ErrNoCreator).
// Register a stub or a custom creator for it, or supply its value explicitly.
package synth
