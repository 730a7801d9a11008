package filter_test

import (
	"math"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	filter "github.com/kianm/neoscout/internal/domain/filter"
	model "github.com/kianm/neoscout/internal/domain/model"
)

func mkApproach(designation string, day int, dist, vel float64) *model.CloseApproach {
	ts := time.Date(2020, time.January, day, 12, 0, 0, 0, time.UTC)
	return model.NewCloseApproach(designation, ts, dist, vel)
}

func TestApply(t *testing.T) {
	Convey("Given a collection of approaches", t, func() {
		near := mkApproach("433", 1, 0.01, 5)
		mid := mkApproach("1862", 2, 0.1, 15)
		far := mkApproach("999999", 3, 0.5, 25)
		all := []*model.CloseApproach{near, mid, far}

		Convey("When applying no predicates", func() {
			So(filter.Apply(all), ShouldResemble, all)
		})

		Convey("When applying a single distance bound", func() {
			got := filter.Apply(all, filter.MaxDistance(0.1))
			So(got, ShouldResemble, []*model.CloseApproach{near, mid})
		})

		Convey("When predicates are conjoined", func() {
			got := filter.Apply(all, filter.MinDistance(0.05), filter.MinVelocity(20))
			So(got, ShouldResemble, []*model.CloseApproach{far})
		})

		Convey("When nothing matches", func() {
			got := filter.Apply(all, filter.MinVelocity(100))
			So(got, ShouldBeEmpty)
		})

		Convey("Then order is always preserved", func() {
			got := filter.Apply(all, filter.MinDistance(0))
			So(got, ShouldResemble, all)
		})
	})
}

func TestDatePredicates(t *testing.T) {
	Convey("Given approaches across several days", t, func() {
		d1 := mkApproach("a", 1, 0.1, 1)
		d2 := mkApproach("b", 2, 0.1, 1)
		d3 := mkApproach("c", 3, 0.1, 1)
		all := []*model.CloseApproach{d1, d2, d3}

		day := func(d int) time.Time {
			return time.Date(2020, time.January, d, 0, 0, 0, 0, time.UTC)
		}

		Convey("OnDate matches the calendar day regardless of time of day", func() {
			So(filter.Apply(all, filter.OnDate(day(2))), ShouldResemble, []*model.CloseApproach{d2})
		})

		Convey("StartDate is inclusive", func() {
			So(filter.Apply(all, filter.StartDate(day(2))), ShouldResemble, []*model.CloseApproach{d2, d3})
		})

		Convey("EndDate is inclusive of the whole day", func() {
			So(filter.Apply(all, filter.EndDate(day(2))), ShouldResemble, []*model.CloseApproach{d1, d2})
		})

		Convey("A start and end together bound a window", func() {
			got := filter.Apply(all, filter.StartDate(day(2)), filter.EndDate(day(2)))
			So(got, ShouldResemble, []*model.CloseApproach{d2})
		})
	})
}

func TestNEOPredicates(t *testing.T) {
	Convey("Given linked and unlinked approaches", t, func() {
		linked := mkApproach("433", 1, 0.1, 5)
		linked.NEO = model.NewNearEarthObject("433", "Eros", 16.84, false)

		hazardous := mkApproach("1862", 2, 0.1, 5)
		hazardous.NEO = model.NewNearEarthObject("1862", "Apollo", math.NaN(), true)

		unlinked := mkApproach("999999", 3, 0.1, 5)
		all := []*model.CloseApproach{linked, hazardous, unlinked}

		Convey("Diameter predicates skip unlinked and unknown diameters", func() {
			So(filter.Apply(all, filter.MinDiameter(1)), ShouldResemble, []*model.CloseApproach{linked})
			So(filter.Apply(all, filter.MaxDiameter(20)), ShouldResemble, []*model.CloseApproach{linked})
		})

		Convey("Hazardous predicates skip unlinked approaches in both polarities", func() {
			So(filter.Apply(all, filter.Hazardous(true)), ShouldResemble, []*model.CloseApproach{hazardous})
			So(filter.Apply(all, filter.Hazardous(false)), ShouldResemble, []*model.CloseApproach{linked})
		})
	})
}

func TestLimit(t *testing.T) {
	Convey("Given a result set", t, func() {
		all := []*model.CloseApproach{
			mkApproach("a", 1, 0.1, 1),
			mkApproach("b", 2, 0.1, 1),
			mkApproach("c", 3, 0.1, 1),
		}

		Convey("A positive limit takes from the front", func() {
			So(filter.Limit(all, 2), ShouldResemble, all[:2])
		})

		Convey("A limit beyond the length returns everything", func() {
			So(filter.Limit(all, 10), ShouldResemble, all)
		})

		Convey("Zero or negative means no limit", func() {
			So(filter.Limit(all, 0), ShouldResemble, all)
			So(filter.Limit(all, -1), ShouldResemble, all)
		})
	})
}
