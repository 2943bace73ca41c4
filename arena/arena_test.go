package arena_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/keyspace/art/arena"
)

type widget struct {
	ID   int
	Name string
}

func TestArena(t *testing.T) {
	Convey("Given an Arena", t, func() {
		a := &arena.Arena{}

		Convey("New tracks live allocations", func() {
			p := arena.New(a, widget{ID: 1, Name: "one"})

			So(p.ID, ShouldEqual, 1)
			So(a.Live(), ShouldEqual, 1)

			arena.Free(a, p)

			So(a.Live(), ShouldEqual, 0)
		})

		Convey("Reset forgets all outstanding allocations", func() {
			arena.New(a, widget{ID: 1})
			arena.New(a, widget{ID: 2})

			a.Reset()

			So(a.Live(), ShouldEqual, 0)
		})
	})
}

func TestRecycled(t *testing.T) {
	Convey("Given a Recycled allocator", t, func() {
		r := &arena.Recycled{}

		Convey("Free makes storage available to a later New of the same type", func() {
			p1 := arena.New(r, widget{ID: 1, Name: "first"})
			arena.Free(r, p1)

			p2 := arena.New(r, widget{ID: 2, Name: "second"})

			So(p2, ShouldEqual, p1)
			So(p2.ID, ShouldEqual, 2)
			So(p2.Name, ShouldEqual, "second")
			So(r.Live(), ShouldEqual, 1)
		})

		Convey("Reset clears both accounting and free lists", func() {
			p := arena.New(r, widget{ID: 1})
			arena.Free(r, p)

			r.Reset()

			So(r.Live(), ShouldEqual, 0)
		})
	})
}

func TestBytes(t *testing.T) {
	Convey("Given an allocator", t, func() {
		a := &arena.Arena{}

		Convey("Bytes copies the input so callers can reuse their buffer", func() {
			src := []byte("hello")
			out := arena.Bytes(a, src)

			So(out, ShouldResemble, src)

			src[0] = 'H'

			So(out[0], ShouldEqual, byte('h'))
		})

		Convey("Bytes of an empty slice returns nil", func() {
			So(arena.Bytes(a, nil), ShouldBeNil)
		})
	})
}
