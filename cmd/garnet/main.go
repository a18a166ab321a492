// garnet - exercises a runtime from the command line
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/garnet"
	"github.com/chazu/garnet/config"
	"github.com/chazu/garnet/dump"
)

var log = commonlog.GetLogger("garnet.cli")

type point struct {
	garnet.DataTypeDefaults
	X, Y float64
}

func (p *point) Inspect() string    { return fmt.Sprintf("#<Point (%g, %g)>", p.X, p.Y) }
func (p *point) Eql(o *point) bool  { return *p == *o }
func (p *point) Hash() uint64       { return math.Float64bits(p.X) ^ math.Float64bits(p.Y)<<1 }
func (p *point) Size() int          { return 16 }
func (p *point) Dup() *point        { c := *p; return &c }
func (p *point) norm() float64      { return math.Hypot(p.X, p.Y) }
func (p *point) Cmp(o *point) int   { return cmpFloat(p.norm(), o.norm()) }
func (p *point) add(o *point) point { return point{X: p.X + o.X, Y: p.Y + o.Y} }

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func definePoint(r *garnet.Ruby) (garnet.RClass, error) {
	c, err := garnet.DefineDataClass(r, r.Object().AsModule(), "Point",
		garnet.NewDataType[point]("point", garnet.WithSize()))
	if err != nil {
		return garnet.RClass{}, err
	}
	defs := []struct {
		name      string
		singleton bool
		m         *garnet.Method
	}{
		{"new", true, garnet.Function2(func(x, y float64) (*point, error) {
			return &point{X: x, Y: y}, nil
		})},
		{"x", false, garnet.Method0(func(p *point) (float64, error) { return p.X, nil })},
		{"y", false, garnet.Method0(func(p *point) (float64, error) { return p.Y, nil })},
		{"norm", false, garnet.Method0(func(p *point) (float64, error) { return p.norm(), nil })},
		{"+", false, garnet.Method1(func(p, o *point) (point, error) {
			if o == nil {
				return point{}, r.NewError(r.TypeError(), "nil can't be coerced into Point")
			}
			return p.add(o), nil
		})},
		{"each_coord", false, garnet.Method0(func(p *point) (garnet.Yield[float64], error) {
			return garnet.YieldIter(func(yield func(float64) bool) {
				_ = yield(p.X) && yield(p.Y)
			}), nil
		})},
	}
	for _, d := range defs {
		if d.singleton {
			err = c.DefineSingletonMethod(r, d.name, d.m)
		} else {
			err = c.DefineMethod(r, d.name, d.m)
		}
		if err != nil {
			return garnet.RClass{}, fmt.Errorf("define Point#%s: %w", d.name, err)
		}
	}
	return c, nil
}

// demo builds a few points, sorts them with <=> and returns a hash
// describing the result.
func demo(r *garnet.Ruby, n int) (garnet.Value, error) {
	c, err := definePoint(r)
	if err != nil {
		return garnet.Nil, err
	}
	points := r.NewArray()
	for i := range n {
		p, err := c.New(r, float64(n-i), float64(i))
		if err != nil {
			return garnet.Nil, err
		}
		if err := points.Push(r, p); err != nil {
			return garnet.Nil, err
		}
	}
	sorted := points.Slice(r)
	var cmpErr error
	slices.SortStableFunc(sorted, func(a, b garnet.Value) int {
		c, err := garnet.Funcall[int](r, a, "<=>", b)
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		return c
	})
	if cmpErr != nil {
		return garnet.Nil, cmpErr
	}
	sum, err := garnet.Funcall[*point](r, points.Entry(r, 0), "+", points.Entry(r, -1))
	if err != nil {
		return garnet.Nil, err
	}

	var coords []float64
	_, err = points.Entry(r, 0).BlockCall(r, "each_coord", nil, func(args []garnet.Value) (garnet.Value, error) {
		f, err := garnet.TryConvert[float64](r, args[0])
		coords = append(coords, f)
		return garnet.Nil, err
	})
	if err != nil {
		return garnet.Nil, err
	}

	out := r.NewHash()
	norms := r.NewArray()
	for _, p := range sorted {
		f, err := garnet.Funcall[float64](r, p, "norm")
		if err != nil {
			return garnet.Nil, err
		}
		norms.Push(r, math.Round(f*1000)/1000)
	}
	out.Aset(r, r.NewSymbol("norms"), norms)
	out.Aset(r, r.NewSymbol("sum"), []float64{sum.X, sum.Y})
	out.Aset(r, r.NewSymbol("first_coords"), coords)
	out.Aset(r, r.NewSymbol("runtime"), r.ID().String())
	return out.AsValue(), nil
}

func main() {
	count := flag.Int("n", 4, "Number of points to build")
	dumpPath := flag.String("dump", "", "Write the demo result as a CBOR snapshot to this file")
	loadPath := flag.String("load", "", "Load a CBOR snapshot and print it instead of running the demo")
	showGC := flag.Bool("gc", false, "Run a compacting collection and print heap statistics")
	configDir := flag.String("config", ".", "Directory to search upwards for garnet.toml")
	verbose := flag.Int("v", -1, "Log verbosity (overrides garnet.toml)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: garnet [options]\n\n")
		fmt.Fprintf(os.Stderr, "Starts a runtime, defines a Point data class and prints what it computes.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  garnet -n 8 -gc             # Bigger demo, then compact\n")
		fmt.Fprintf(os.Stderr, "  garnet -dump out.cbor       # Save the result\n")
		fmt.Fprintf(os.Stderr, "  garnet -load out.cbor       # Print a saved result\n")
	}
	flag.Parse()

	cfg, err := config.FindAndLoad(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *verbose >= 0 {
		cfg.Log.Verbosity = *verbose
	}
	cfg.Apply()
	if cfg.Dir != "" {
		log.Infof("using %s/%s", cfg.Dir, config.FileName)
	}

	w := garnet.NewWorker(garnet.WithConfig(cfg))
	defer w.Stop()

	out, err := w.Do(context.Background(), func(r *garnet.Ruby) (any, error) {
		var v garnet.Value
		if *loadPath != "" {
			data, err := os.ReadFile(*loadPath)
			if err != nil {
				return nil, err
			}
			if v, err = dump.Load(r, data); err != nil {
				return nil, err
			}
		} else {
			var err error
			if v, err = demo(r, *count); err != nil {
				return nil, err
			}
		}

		var b strings.Builder
		b.WriteString(v.Inspect(r))
		b.WriteByte('\n')
		if *dumpPath != "" {
			data, err := dump.Dump(r, v)
			if err != nil {
				return nil, err
			}
			if err := os.WriteFile(*dumpPath, data, 0o644); err != nil {
				return nil, err
			}
			fmt.Fprintf(&b, "wrote %d bytes to %s\n", len(data), *dumpPath)
		}
		if *showGC {
			box := r.NewBox(v)
			defer box.Close()
			st := r.GCCompact()
			fmt.Fprintf(&b, "gc: live=%d freed=%d moved=%d memsize=%d slots=%d\n",
				st.Live, st.Freed, st.Moved, st.Memsize, st.Slots)
		}
		return b.String(), nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
