package art_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/keyspace/art"
	"github.com/keyspace/art/arena"
)

func TestTree(t *testing.T) {
	Convey("Given a new Tree", t, func() {
		tr := New()

		Convey("Scenario 1: a single insert is retrievable", func() {
			tr.Insert([]byte("abc"), []byte("1"))

			v, ok := tr.Search([]byte("abc"))
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []byte("1"))
		})

		Convey("Scenario 2: a key that extends another stays distinct", func() {
			tr.Insert([]byte("abc"), []byte("1"))
			tr.Insert([]byte("abcd"), []byte("2"))

			v, ok := tr.Search([]byte("abc"))
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []byte("1"))

			v, ok = tr.Search([]byte("abcd"))
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []byte("2"))
		})

		Convey("Scenario 3: a chain of extending keys resolves to the deepest", func() {
			tr.Insert([]byte("abc"), []byte("1"))
			tr.Insert([]byte("abcd"), []byte("2"))
			tr.Insert([]byte("abcde"), []byte("3"))
			tr.Insert([]byte("abcdf"), []byte("4"))

			v, ok := tr.Search([]byte("abcdf"))
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []byte("4"))
		})

		Convey("Scenario 4: 5 single-byte keys grow the root to Inner-16", func() {
			for _, k := range []byte("abcde") {
				tr.Insert([]byte{k}, []byte{k})
			}

			v, ok := tr.Search([]byte("c"))
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []byte("c"))
		})

		Convey("Scenario 5: 17 single-byte keys are all retrievable", func() {
			for i := 0; i < 17; i++ {
				tr.Insert([]byte{byte(i)}, []byte{byte(i)})
			}

			for i := 0; i < 17; i++ {
				v, ok := tr.Search([]byte{byte(i)})
				So(ok, ShouldBeTrue)
				So(v, ShouldResemble, []byte{byte(i)})
			}
		})

		Convey("Scenario 6: 49 single-byte keys are all retrievable", func() {
			for i := 0; i < 49; i++ {
				tr.Insert([]byte{byte(i)}, []byte{byte(i)})
			}

			for i := 0; i < 49; i++ {
				v, ok := tr.Search([]byte{byte(i)})
				So(ok, ShouldBeTrue)
				So(v, ShouldResemble, []byte{byte(i)})
			}
		})

		Convey("Scenario 7: re-inserting a key overwrites its value", func() {
			tr.Insert([]byte("a"), []byte("1"))
			tr.Insert([]byte("a"), []byte("2"))

			v, ok := tr.Search([]byte("a"))
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []byte("2"))
		})

		Convey("Searching a never-inserted key reports absence", func() {
			tr.Insert([]byte("abc"), []byte("1"))

			_, ok := tr.Search([]byte("xyz"))
			So(ok, ShouldBeFalse)
		})

		Convey("A key containing a zero byte is not confused with a terminal match", func() {
			tr.Insert([]byte("a\x00b"), []byte("1"))
			tr.Insert([]byte("a"), []byte("2"))

			v, ok := tr.Search([]byte("a\x00b"))
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []byte("1"))

			v, ok = tr.Search([]byte("a"))
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []byte("2"))
		})

		Convey("Release tears the tree down without panicking", func() {
			for i := 0; i < 64; i++ {
				tr.Insert([]byte{byte(i)}, []byte{byte(i)})
			}

			So(func() { tr.Release() }, ShouldNotPanic)

			_, ok := tr.Search([]byte{0})
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given a Tree with a recycling allocator and a logger", t, func() {
		events := &recordingLogger{}
		tr := New(WithAllocator(&arena.Recycled{}), WithLogger(events))

		Convey("Insert and Search both emit events", func() {
			tr.Insert([]byte("a"), []byte("1"))
			tr.Search([]byte("a"))
			tr.Search([]byte("missing"))

			So(events.names, ShouldContain, "insert")
			So(events.names, ShouldContain, "search_hit")
			So(events.names, ShouldContain, "search_miss")
		})

		Convey("Release frees storage the recycled allocator can hand back", func() {
			tr.Insert([]byte("a"), []byte("1"))
			tr.Insert([]byte("b"), []byte("2"))

			So(func() { tr.Release() }, ShouldNotPanic)
		})
	})
}

type recordingLogger struct {
	names []string
}

func (r *recordingLogger) Event(event string, _ ...Field) {
	r.names = append(r.names, event)
}
