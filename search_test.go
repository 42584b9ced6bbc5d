package kitsu

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSearch(t *testing.T) {
	Convey("Given an empty search", t, func() {
		s := NewSearch()

		Convey("It encodes to an empty string", func() {
			So(s.Encode(), ShouldBeEmpty)
		})

		Convey("Each call appends one pair, encoded in call order", func() {
			out := s.
				Filter("text", "non non biyori").
				Limit(5).
				Offset(10).
				Sort("-averageRating").
				Encode()
			So(out, ShouldEqual, "filter[text]=non non biyori&page[limit]=5&page[offset]=10&sort=-averageRating")
		})

		Convey("Repeated keys are all kept", func() {
			out := s.Filter("text", "a").Filter("text", "b").Encode()
			So(out, ShouldEqual, "filter[text]=a&filter[text]=b")
		})

		Convey("Values pass through without escaping", func() {
			So(s.Filter("season", "summer&fall").Encode(), ShouldEqual, "filter[season]=summer&fall")
		})

		Convey("Sorters join with a comma untouched", func() {
			So(s.Sort("-id,slug").Encode(), ShouldEqual, "sort=-id,slug")
		})
	})

	Convey("Given a nil search", t, func() {
		var s *Search

		Convey("It encodes to an empty string", func() {
			So(s.Encode(), ShouldBeEmpty)
		})
	})
}
