package treemap

import (
	"strings"
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func Test030_greater_less_or_equal(t *testing.T) {

	cv.Convey("with keys {1,3,5}, GreaterOrEqual(2) and LessOrEqual(4) are both 3", t, func() {
		m := NewOrdered[int, string]()
		m.Add(1, "a")
		m.Add(3, "c")
		m.Add(5, "e")

		e, found := m.GreaterOrEqual(2)
		cv.So(found, cv.ShouldBeTrue)
		cv.So(e, cv.ShouldResemble, Entry[int, string]{3, "c"})

		e, found = m.LessOrEqual(4)
		cv.So(found, cv.ShouldBeTrue)
		cv.So(e, cv.ShouldResemble, Entry[int, string]{3, "c"})

		cv.Convey("an exact hit is returned by both", func() {
			e, _ := m.GreaterOrEqual(5)
			cv.So(e.Key, cv.ShouldEqual, 5)
			e, _ = m.LessOrEqual(1)
			cv.So(e.Key, cv.ShouldEqual, 1)
		})

		cv.Convey("past either end nothing is found", func() {
			_, found := m.GreaterOrEqual(6)
			cv.So(found, cv.ShouldBeFalse)
			_, found = m.LessOrEqual(0)
			cv.So(found, cv.ShouldBeFalse)

			e, found := m.GreaterOrEqual(-100)
			cv.So(found, cv.ShouldBeTrue)
			cv.So(e.Key, cv.ShouldEqual, 1)
			e, found = m.LessOrEqual(100)
			cv.So(found, cv.ShouldBeTrue)
			cv.So(e.Key, cv.ShouldEqual, 5)
		})

		cv.Convey("the strict forms skip an exact hit", func() {
			e, found := m.GreaterThan(3)
			cv.So(found, cv.ShouldBeTrue)
			cv.So(e.Key, cv.ShouldEqual, 5)
			e, found = m.LessThan(3)
			cv.So(found, cv.ShouldBeTrue)
			cv.So(e.Key, cv.ShouldEqual, 1)
			_, found = m.GreaterThan(5)
			cv.So(found, cv.ShouldBeFalse)
			_, found = m.LessThan(1)
			cv.So(found, cv.ShouldBeFalse)
		})
	})

	cv.Convey("an empty map has no bounds", t, func() {
		m := NewOrdered[int, string]()
		_, found := m.GreaterOrEqual(0)
		cv.So(found, cv.ShouldBeFalse)
		_, found = m.LessOrEqual(0)
		cv.So(found, cv.ShouldBeFalse)
	})
}

func Test031_bounds_use_only_the_compare_func(t *testing.T) {

	cv.Convey("string keys in reverse order get bounds in that order", t, func() {
		reverse := func(a, b string) int { return strings.Compare(b, a) }
		m := New[string, int](reverse)
		for i, w := range []string{"delta", "alpha", "echo", "charlie"} {
			m.Add(w, i)
		}
		cv.So(m.Keys(), cv.ShouldResemble, []string{"echo", "delta", "charlie", "alpha"})

		// "bravo" sits between charlie and alpha under the reversed order.
		e, found := m.GreaterOrEqual("bravo")
		cv.So(found, cv.ShouldBeTrue)
		cv.So(e.Key, cv.ShouldEqual, "alpha")

		e, found = m.LessOrEqual("bravo")
		cv.So(found, cv.ShouldBeTrue)
		cv.So(e.Key, cv.ShouldEqual, "charlie")

		_, found = m.GreaterOrEqual("a")
		cv.So(found, cv.ShouldBeFalse)
	})

	cv.Convey("struct keys compared on one field", t, func() {
		type version struct {
			major, minor int
		}
		byVersion := func(a, b version) int {
			if a.major != b.major {
				return a.major - b.major
			}
			return a.minor - b.minor
		}
		m := New[version, string](byVersion)
		m.Add(version{1, 4}, "old")
		m.Add(version{2, 0}, "current")
		m.Add(version{1, 10}, "lts")

		e, _ := m.LessOrEqual(version{1, 99})
		cv.So(e.Value, cv.ShouldEqual, "lts")
		e, _ = m.GreaterOrEqual(version{1, 5})
		cv.So(e.Value, cv.ShouldEqual, "lts")
		e, _ = m.GreaterOrEqual(version{1, 11})
		cv.So(e.Value, cv.ShouldEqual, "current")
	})
}
