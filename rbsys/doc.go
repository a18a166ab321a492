// Package rbsys is the raw runtime surface garnet binds against.
//
// It provides a small in-process object space shaped like the Ruby C API:
// tagged VALUE words with Ruby's 64-bit immediate encoding, a heap arena of
// typed object headers, classes with method tables, protected execution
// (Protect, Raise, JumpTag and the errinfo slot), numeric conversion
// primitives, and a mark/sweep/compact collector with root registration
// and typed-data callbacks.
//
// There is no parser and no interpreter. Methods are Go functions with one
// of three shapes (FixedFunc, CArgsFunc, AryFunc), and non-local exits are
// Go panics carrying a *Jump that only the owning VM recovers.
//
// Collection runs only at explicit safepoints (GC, Compact, GC.start).
// Go stacks are not scanned: a VALUE held only in a Go variable survives a
// collection only if it is reachable from a frame, a registered address, a
// RootSet or another live object.
package rbsys
