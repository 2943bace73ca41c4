package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/keyspace/art/arena"
)

func TestNode16(t *testing.T) {
	Convey("Given a Node16", t, func() {
		a := &arena.Arena{}
		n := arena.New(a, Node16{})

		Convey("It starts empty and not full", func() {
			So(n.Kind(), ShouldEqual, KindNode16)
			So(n.Full(), ShouldBeFalse)
		})

		Convey("Full becomes true once 16 byte-keyed children are added", func() {
			for i := byte(0); i < 16; i++ {
				n.AddChild(a, i, false, NewLeaf(a, []byte{i}, nil))
			}

			So(n.Full(), ShouldBeTrue)
			So(func() { n.AddChild(a, 20, false, NewLeaf(a, []byte{20}, nil)) }, ShouldPanic)
		})

		Convey("Growing to Node48 maps every byte to its child through the sparse index", func() {
			children := make([]*Leaf, 16)

			for i := byte(0); i < 16; i++ {
				children[i] = NewLeaf(a, []byte{i}, nil)
				n.AddChild(a, i, false, children[i])
			}

			term := NewLeaf(a, nil, []byte("t"))
			n.AddChild(a, 0, true, term)

			grown := n.Grow(a)
			n48, ok := grown.(*Node48)

			So(ok, ShouldBeTrue)
			So(n48.NumChildren, ShouldEqual, 16)

			for i := byte(0); i < 16; i++ {
				So(*n48.FindChild(i, false), ShouldEqual, Node(children[i]))
			}

			So(*n48.FindChild(0, true), ShouldEqual, Node(term))
		})
	})
}
