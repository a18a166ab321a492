// Package dump snapshots plain value graphs as canonical CBOR.
//
// Only data survives a dump: nil, booleans, integers of any size, floats,
// rationals, symbols, strings, arrays and hashes. Objects, typed data and
// procs are rejected, as are cyclic graphs. Each snapshot records the id
// of the runtime that wrote it.
package dump

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/chazu/garnet"
	"github.com/chazu/garnet/rbsys"
)

// Version is the snapshot format written by Dump.
const Version = 1

// MaxDepth bounds nesting on both Dump and Load.
const MaxDepth = 512

var (
	// ErrUnsupported is returned for values that have no snapshot form.
	ErrUnsupported = errors.New("dump: unsupported value")
	// ErrCycle is returned when a container reaches itself.
	ErrCycle = errors.New("dump: cyclic value")
	// ErrFormat is returned by Load for malformed snapshots.
	ErrFormat = errors.New("dump: malformed snapshot")
)

var log = commonlog.GetLogger("garnet.dump")

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("dump: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Kind tags a node.
type Kind uint8

// Node kinds
const (
	KindNil Kind = iota
	KindFalse
	KindTrue
	KindInt
	KindBig
	KindFloat
	KindRational
	KindSymbol
	KindString
	KindArray
	KindHash
)

// Node is one value of a snapshot. Which fields are set depends on Kind.
type Node struct {
	Kind   Kind     `cbor:"1,keyasint"`
	Int    int64    `cbor:"2,keyasint,omitempty"`
	Big    *big.Int `cbor:"3,keyasint,omitempty"`
	Float  float64  `cbor:"4,keyasint,omitempty"`
	Bytes  []byte   `cbor:"5,keyasint,omitempty"`
	Elems  []Node   `cbor:"6,keyasint,omitempty"`
	Frozen bool     `cbor:"7,keyasint,omitempty"`
}

// Snapshot is the top level of a dump.
type Snapshot struct {
	Version int       `cbor:"1,keyasint"`
	Runtime uuid.UUID `cbor:"2,keyasint"`
	Root    Node      `cbor:"3,keyasint"`
}

// Dump encodes the graph rooted at v.
func Dump(r *garnet.Ruby, v garnet.ReprValue) ([]byte, error) {
	d := dumper{r: r, seen: make(map[garnet.Value]bool)}
	root, err := d.node(v.AsValue(), 0)
	if err != nil {
		return nil, err
	}
	data, err := encMode.Marshal(Snapshot{Version: Version, Runtime: r.ID(), Root: root})
	if err != nil {
		return nil, fmt.Errorf("dump: marshal: %w", err)
	}
	log.Debugf("dumped %d nodes (%d bytes) from runtime %s", d.count, len(data), r.ID())
	return data, nil
}

type dumper struct {
	r     *garnet.Ruby
	seen  map[garnet.Value]bool
	count int
}

func (d *dumper) node(v garnet.Value, depth int) (Node, error) {
	if depth > MaxDepth {
		return Node{}, fmt.Errorf("dump: nesting deeper than %d", MaxDepth)
	}
	d.count++
	r := d.r
	switch t := r.Classify(v); t {
	case rbsys.TNil:
		return Node{Kind: KindNil}, nil
	case rbsys.TFalse:
		return Node{Kind: KindFalse}, nil
	case rbsys.TTrue:
		return Node{Kind: KindTrue}, nil
	case rbsys.TFixnum:
		f, _ := garnet.FixnumFromValue(v)
		return Node{Kind: KindInt, Int: f.ToInt64()}, nil
	case rbsys.TBignum:
		b, _ := garnet.RBignumFromValue(r, v)
		return Node{Kind: KindBig, Big: b.BigInt(r)}, nil
	case rbsys.TFloat:
		f, _ := garnet.FloatFromValue(r, v)
		return Node{Kind: KindFloat, Float: f.ToF64(r)}, nil
	case rbsys.TRational:
		q, _ := garnet.RRationalFromValue(r, v)
		rat := q.Rat(r)
		return Node{Kind: KindRational, Elems: []Node{
			{Kind: KindBig, Big: rat.Num()},
			{Kind: KindBig, Big: rat.Denom()},
		}}, nil
	case rbsys.TSymbol:
		s, ok := garnet.StaticSymbolFromValue(v)
		if !ok {
			return Node{}, fmt.Errorf("%w: dynamic symbol", ErrUnsupported)
		}
		return Node{Kind: KindSymbol, Bytes: []byte(s.Name(r))}, nil
	case rbsys.TString:
		s, _ := garnet.RStringFromValue(r, v)
		return Node{Kind: KindString, Bytes: s.Bytes(r), Frozen: v.IsFrozen(r)}, nil
	case rbsys.TArray:
		a, _ := garnet.RArrayFromValue(r, v)
		return d.container(v, KindArray, a.Slice(r), depth)
	case rbsys.THash:
		h, _ := garnet.RHashFromValue(r, v)
		pairs := h.ToPairs(r)
		flat := make([]garnet.Value, 0, 2*len(pairs))
		for _, kv := range pairs {
			flat = append(flat, kv[0], kv[1])
		}
		return d.container(v, KindHash, flat, depth)
	default:
		return Node{}, fmt.Errorf("%w: %s (%s)", ErrUnsupported, v.ClassName(r), t)
	}
}

func (d *dumper) container(v garnet.Value, kind Kind, elems []garnet.Value, depth int) (Node, error) {
	if d.seen[v] {
		return Node{}, fmt.Errorf("%w: %s", ErrCycle, v.ClassName(d.r))
	}
	d.seen[v] = true
	defer delete(d.seen, v)

	n := Node{Kind: kind, Elems: make([]Node, len(elems)), Frozen: v.IsFrozen(d.r)}
	for i, e := range elems {
		c, err := d.node(e, depth+1)
		if err != nil {
			return Node{}, err
		}
		n.Elems[i] = c
	}
	return n, nil
}

// Decode parses a snapshot without building values.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrFormat, s.Version, Version)
	}
	return &s, nil
}

// Load rebuilds a dumped graph in r. Shared substructure in the original
// comes back as separate copies.
func Load(r *garnet.Ruby, data []byte) (garnet.Value, error) {
	s, err := Decode(data)
	if err != nil {
		return garnet.Nil, err
	}
	if s.Runtime != r.ID() {
		log.Debugf("loading snapshot from runtime %s into %s", s.Runtime, r.ID())
	}
	return build(r, &s.Root, 0)
}

func build(r *garnet.Ruby, n *Node, depth int) (garnet.Value, error) {
	if depth > MaxDepth {
		return garnet.Nil, fmt.Errorf("%w: nesting deeper than %d", ErrFormat, MaxDepth)
	}
	switch n.Kind {
	case KindNil:
		return garnet.Nil, nil
	case KindFalse:
		return garnet.False, nil
	case KindTrue:
		return garnet.True, nil
	case KindInt:
		return r.IntegerFromI64(n.Int).AsValue(), nil
	case KindBig:
		if n.Big == nil {
			return garnet.Nil, fmt.Errorf("%w: big integer without a value", ErrFormat)
		}
		return r.IntegerFromBig(n.Big).AsValue(), nil
	case KindFloat:
		return r.NewFloat(n.Float).AsValue(), nil
	case KindRational:
		if len(n.Elems) != 2 || n.Elems[0].Big == nil || n.Elems[1].Big == nil {
			return garnet.Nil, fmt.Errorf("%w: rational needs two integers", ErrFormat)
		}
		q, err := r.NewRational(r.IntegerFromBig(n.Elems[0].Big), r.IntegerFromBig(n.Elems[1].Big))
		if err != nil {
			return garnet.Nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		return q.AsValue(), nil
	case KindSymbol:
		return r.NewSymbol(string(n.Bytes)).AsValue(), nil
	case KindString:
		v := r.NewStringBytes(n.Bytes).AsValue()
		if n.Frozen {
			v.Freeze(r)
		}
		return v, nil
	case KindArray:
		a := r.NewArray()
		for i := range n.Elems {
			e, err := build(r, &n.Elems[i], depth+1)
			if err != nil {
				return garnet.Nil, err
			}
			if err := a.Push(r, e); err != nil {
				return garnet.Nil, err
			}
		}
		return finish(r, a.AsValue(), n.Frozen), nil
	case KindHash:
		if len(n.Elems)%2 != 0 {
			return garnet.Nil, fmt.Errorf("%w: hash with %d elements", ErrFormat, len(n.Elems))
		}
		h := r.NewHash()
		for i := 0; i < len(n.Elems); i += 2 {
			k, err := build(r, &n.Elems[i], depth+1)
			if err != nil {
				return garnet.Nil, err
			}
			v, err := build(r, &n.Elems[i+1], depth+1)
			if err != nil {
				return garnet.Nil, err
			}
			if err := h.Aset(r, k, v); err != nil {
				return garnet.Nil, err
			}
		}
		return finish(r, h.AsValue(), n.Frozen), nil
	}
	return garnet.Nil, fmt.Errorf("%w: unknown kind %d", ErrFormat, n.Kind)
}

func finish(r *garnet.Ruby, v garnet.Value, frozen bool) garnet.Value {
	if frozen {
		v.Freeze(r)
	}
	return v
}
