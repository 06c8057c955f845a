package treemap

import (
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func Test050_arena_reuses_slots(t *testing.T) {

	cv.Convey("slots freed by Remove are handed out again before the arena grows", t, func() {
		m := NewWithCapacity[int, string](func(a, b int) int { return a - b }, 4)
		for i := range 8 {
			m.Add(i, "v")
		}
		grown := len(m.nodes.nodes)
		cv.So(grown, cv.ShouldEqual, 9) // slot 0 is the empty subtree

		for _, k := range []int{2, 5, 7} {
			_, err := m.Remove(k)
			cv.So(err, cv.ShouldBeNil)
		}
		cv.So(len(m.nodes.free), cv.ShouldEqual, 3)
		cv.So(m.nodes.live(), cv.ShouldEqual, 5)

		for _, k := range []int{20, 21, 22} {
			m.Add(k, "w")
		}
		cv.So(len(m.nodes.nodes), cv.ShouldEqual, grown)
		cv.So(len(m.nodes.free), cv.ShouldEqual, 0)
		checkInvariants(t, m)

		m.Add(23, "w")
		cv.So(len(m.nodes.nodes), cv.ShouldEqual, grown+1)
	})

	cv.Convey("freed slots are zeroed", t, func() {
		m := NewOrdered[int, *int]()
		x := 42
		m.Add(1, &x)
		r := m.find(1)
		_, _ = m.Remove(1)
		cv.So(m.nodes.at(r).val, cv.ShouldBeNil)
		cv.So(m.nodes.at(r).parent, cv.ShouldEqual, nilRef)
	})

	cv.Convey("the ref of a live key does not move when other keys come and go", t, func() {
		m := NewOrdered[int, int]()
		for _, k := range []int{10, 5, 15, 3, 7, 12, 20} {
			m.Add(k, k)
		}
		r7 := m.find(7)
		for _, k := range []int{3, 15, 20} {
			_, _ = m.Remove(k)
		}
		for i := 100; i < 200; i++ {
			m.Add(i, i)
		}
		cv.So(m.find(7), cv.ShouldEqual, r7)
		cv.So(m.nodes.at(r7).key, cv.ShouldEqual, 7)
	})

	cv.Convey("a negative capacity is treated as zero", t, func() {
		m := NewWithCapacity[int, int](func(a, b int) int { return a - b }, -5)
		m.Add(1, 1)
		cv.So(m.Len(), cv.ShouldEqual, 1)
	})
}
