// Package garnet binds Go code to a garbage-collected Ruby-style object
// space without letting either memory manager corrupt the other's view of
// live objects.
//
// # Values
//
// A Value is one machine word. Its bit pattern alone says whether it is an
// immediate (nil, true, false, undef, Fixnum, StaticSymbol, Flonum) or a
// reference to a heap object owned by the runtime's collector. Immediates
// are never collected. References are transient views: a Value held only in
// a Go variable survives a collection only while it is reachable from an
// active method frame, a BoxValue, a GCRegistry entry, a leaked root or
// another live object. The runtime never scans Go stacks.
//
// Heap wrappers (RArray, RHash, RString, ...) embed NonZeroValue and add no
// storage; their FromValue constructors check the header type tag and read
// nothing past it.
//
// # Protected calls
//
// Ruby.Protect runs a closure and turns any raise, break or throw that
// escapes it into a *State. A State must be consumed exactly once: Exception
// reads and clears the pending exception, Resume re-raises it and Release
// drops it. Higher-level calls (Funcall, TryConvert, container accessors)
// return *Error instead.
//
// # Native methods
//
// NewMethod, Method0..Method16, MethodCArgs and MethodAryArgs adapt Go
// functions into methods the runtime can dispatch to. Arguments are
// converted left to right and the first failure raises TypeError before the
// function runs. A Go panic inside a method never unwinds into the runtime:
// it is raised as the fatal class.
//
// A *Ruby is not safe for concurrent use. Use a Worker to serialize access
// from many goroutines.
package garnet
