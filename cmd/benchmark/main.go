package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotgraph/expr"
	"github.com/delaneyj/slotgraph/slot"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkChains(true)
	benchmarkFanOut(true)
}

var (
	ww    = []int{1, 10, 100}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

// relay mimics a graph operator: one input tree, one output tree, and a
// recompute that forwards the resolved input value on invalidation.
type relay struct {
	in, out *slot.Slot
}

func (r *relay) OnSlotInvalidated(s *slot.Slot, cause slot.InvalidationCause) {
	if err := r.out.SetExpression(r.in.OutExpression()); err != nil {
		log.Panic(err)
	}
}

func newRelay(key string) *relay {
	prop := slot.Property{Name: "v", Type: expr.Float3}
	r := &relay{}
	var err error
	if r.in, err = slot.NewTree(prop, slot.Input, slot.WithTreeKey(key+".in"), slot.WithOwner(r)); err != nil {
		log.Panic(err)
	}
	if r.out, err = slot.NewTree(prop, slot.Output, slot.WithTreeKey(key+".out")); err != nil {
		log.Panic(err)
	}
	return r
}

// benchmarkChains drives w parallel chains of h linked relays from one
// source and measures the end-to-end propagation latency.
func benchmarkChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Slot Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "slots", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			if w*h > 10_000 {
				continue
			}
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src, err := slot.NewTree(
				slot.Property{Name: "src", Type: expr.Float3},
				slot.Output,
			)
			if err != nil {
				log.Panic(err)
			}

			var tails []*slot.Slot
			nodes := 4
			for i := 0; i < w; i++ {
				prev := src
				for j := 0; j < h; j++ {
					r := newRelay(fmt.Sprintf("chain%d_%d", i, j))
					if !slot.Link(r.in, prev) {
						log.Panicf("link failed at %d,%d", i, j)
					}
					nodes += 8 // two float3 trees
					prev = r.out
				}
				tails = append(tails, prev)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.SetFloats(float32(i), float32(i+1), float32(i+2)); err != nil {
					log.Panic(err)
				}
				tach.AddTime(time.Since(start))
			}

			// sanity: the last relay of each chain saw the final value
			for _, tail := range tails {
				vs, err := tail.Floats()
				if err != nil {
					log.Panic(err)
				}
				if vs[0] != float32(iters-1) {
					log.Panicf("chain tail out of sync: %v", vs)
				}
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate %d * %d", w, h),
					humanize.Comma(int64(nodes)),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkFanOut links many input trees to a single output slot and
// measures one set rippling to every dependent.
func benchmarkFanOut(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Slot Fan-Out")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "slots", "avg", "min", "p75", "p99", "max"})

	for _, w := range []int{1, 10, 100, 1_000} {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		g := slot.NewGraph()
		src, err := g.AddTree("src", slot.Property{Name: "src", Type: expr.Float}, slot.Output)
		if err != nil {
			log.Panic(err)
		}
		for i := 0; i < w; i++ {
			in, err := g.AddTree(
				fmt.Sprintf("in%d", i),
				slot.Property{Name: "v", Type: expr.Float},
				slot.Input,
			)
			if err != nil {
				log.Panic(err)
			}
			if !slot.Link(src, in) {
				log.Panicf("fan-out link %d failed", i)
			}
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			if err := src.SetFloat(float32(i)); err != nil {
				log.Panic(err)
			}
			g.ConsumeDirty()
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("fan-out %d", w),
				humanize.Comma(int64(w + 1)),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
