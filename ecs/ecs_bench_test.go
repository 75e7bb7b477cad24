package ecs

import (
	"context"
	"fmt"
	"testing"
)

type benchPos struct{ X, Y, Z float64 }
type benchVel struct{ X, Y, Z float64 }

func BenchmarkFilter2Iterate(b *testing.B) {
	for _, size := range []int{1000, 10000, 100000} {
		b.Run(fmt.Sprintf("%dK", size/1000), func(b *testing.B) {
			w := NewWorld(size)
			pos := NewBuilder[benchPos](w)
			for _, e := range pos.NewEntities(size) {
				SetComponent(w, e, benchVel{X: 1})
			}
			f := NewFilter2[benchPos, benchVel](w)
			b.ReportAllocs()
			for b.Loop() {
				f.Reset()
				for f.Next() {
					p, v := f.Get()
					p.X += v.X
				}
			}
		})
	}
}

func BenchmarkBuilderGet(b *testing.B) {
	w := NewWorld(1024)
	pos := NewBuilder[benchPos](w)
	ents := pos.NewEntities(1024)
	b.ReportAllocs()
	for b.Loop() {
		for _, e := range ents {
			pos.Get(e).X++
		}
	}
}

func BenchmarkAppGroupedUpdate(b *testing.B) {
	for _, groups := range []int{100, 2000} {
		b.Run(fmt.Sprintf("%dgroups", groups), func(b *testing.B) {
			w := NewWorld(groups)
			pos := NewBuilder[benchPos](w)
			app := NewApp(w)
			for g := range groups {
				e := pos.NewEntity()
				w.Tag(e, g)
				app.AddSystem(NewSystem("move", func(w *World) {
					for _, e := range w.Tagged(g) {
						pos.Get(e).X++
					}
				}).InGroup(g))
			}
			ctx := context.Background()
			b.ReportAllocs()
			for b.Loop() {
				if err := app.Update(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
