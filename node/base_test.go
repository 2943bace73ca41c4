package node_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/keyspace/art/node"
)

func TestBase(t *testing.T) {
	Convey("Given a Base", t, func() {
		base := &Base{}

		Convey("It starts with no prefix and no children", func() {
			So(base.Prefix(), ShouldBeNil)
			So(base.NumChildren, ShouldEqual, 0)
			So(base.Term, ShouldBeNil)
		})

		Convey("SetPrefix replaces the compressed prefix", func() {
			base.SetPrefix([]byte("hello"))

			So(base.Prefix(), ShouldResemble, []byte("hello"))

			base.SetPrefix([]byte("world"))

			So(base.Prefix(), ShouldResemble, []byte("world"))
		})
	})
}
