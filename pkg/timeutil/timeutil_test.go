package timeutil_test

import (
	"testing"
	"time"

	"github.com/kianm/neoscout/pkg/timeutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseCD(t *testing.T) {
	Convey("Given calendar-date strings from the close-approach data", t, func() {
		Convey("When parsing a well-formed value", func() {
			ts, err := timeutil.ParseCD("1900-Jan-01 00:00")

			Convey("Then it should produce the matching UTC instant", func() {
				So(err, ShouldBeNil)
				So(ts.Year(), ShouldEqual, 1900)
				So(ts.Month(), ShouldEqual, time.January)
				So(ts.Day(), ShouldEqual, 1)
				So(ts.Hour(), ShouldEqual, 0)
				So(ts.Minute(), ShouldEqual, 0)
				So(ts.Location(), ShouldEqual, time.UTC)
			})
		})

		Convey("When parsing a value with a non-midnight time", func() {
			ts, err := timeutil.ParseCD("2029-Apr-13 21:46")

			Convey("Then the time components should survive", func() {
				So(err, ShouldBeNil)
				So(ts.Month(), ShouldEqual, time.April)
				So(ts.Hour(), ShouldEqual, 21)
				So(ts.Minute(), ShouldEqual, 46)
			})
		})

		Convey("When parsing a malformed value", func() {
			_, err := timeutil.ParseCD("2029-13-99")

			Convey("Then it should report an error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestFormatCD(t *testing.T) {
	Convey("Given FormatCD is the inverse of ParseCD", t, func() {
		inputs := []string{
			"1900-Jan-01 00:00",
			"2020-Feb-29 12:30",
			"2029-Apr-13 21:46",
			"1999-Dec-31 23:59",
		}

		Convey("When round-tripping calendar-date strings", func() {
			for _, in := range inputs {
				ts, err := timeutil.ParseCD(in)
				So(err, ShouldBeNil)
				So(timeutil.FormatCD(ts), ShouldEqual, in)
			}
		})

		Convey("When formatting a non-UTC time", func() {
			loc := time.FixedZone("plus2", 2*60*60)
			ts := time.Date(2020, time.June, 1, 14, 0, 0, 0, loc)

			Convey("Then the output should be normalized to UTC", func() {
				So(timeutil.FormatCD(ts), ShouldEqual, "2020-Jun-01 12:00")
			})
		})
	})
}

func TestParseDate(t *testing.T) {
	Convey("Given plain dates used by CLI filters", t, func() {
		Convey("When parsing a valid date", func() {
			d, err := timeutil.ParseDate("2020-01-01")
			So(err, ShouldBeNil)
			So(d, ShouldEqual, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))
		})

		Convey("When parsing garbage", func() {
			_, err := timeutil.ParseDate("Jan 1st 2020")
			So(err, ShouldNotBeNil)
		})
	})
}
