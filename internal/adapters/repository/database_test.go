package repository_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	repository "github.com/kianm/neoscout/internal/adapters/repository"
	model "github.com/kianm/neoscout/internal/domain/model"
)

func neo(designation, name string) *model.NearEarthObject {
	return model.NewNearEarthObject(designation, name, math.NaN(), false)
}

func approach(designation string, day int) *model.CloseApproach {
	ts := time.Date(2020, time.January, day, 0, 0, 0, 0, time.UTC)
	return model.NewCloseApproach(designation, ts, 0.1, 5.0)
}

func TestNewLinksApproaches(t *testing.T) {
	Convey("Given NEOs and approaches sharing designations", t, func() {
		eros := neo("433", "Eros")
		apollo := neo("1862", "Apollo")
		unnamed := neo("2020 AB", "")

		a1 := approach("433", 1)
		a2 := approach("1862", 2)
		a3 := approach("433", 3)
		a4 := approach("999999", 4) // no matching NEO

		db := repository.New(
			[]*model.NearEarthObject{eros, apollo, unnamed},
			[]*model.CloseApproach{a1, a2, a3, a4},
		)

		Convey("When linking completes", func() {
			Convey("Then each matched approach should reference its NEO", func() {
				So(a1.NEO, ShouldEqual, eros)
				So(a2.NEO, ShouldEqual, apollo)
				So(a3.NEO, ShouldEqual, eros)
			})

			Convey("Then unmatched approaches should stay ownerless but valid", func() {
				So(a4.NEO, ShouldBeNil)
				So(a4.Designation, ShouldEqual, "999999")
			})

			Convey("Then approach lists should preserve extraction order", func() {
				So(eros.Approaches, ShouldResemble, []*model.CloseApproach{a1, a3})
				So(apollo.Approaches, ShouldResemble, []*model.CloseApproach{a2})
				So(unnamed.Approaches, ShouldBeEmpty)
			})

			Convey("Then the linked count should exclude the dangling approach", func() {
				So(db.LinkedCount(), ShouldEqual, 3)
			})
		})
	})
}

func TestLinkingIsNEOOrderIndependent(t *testing.T) {
	Convey("Given any permutation of the NEO list", t, func() {
		rng := rand.New(rand.NewSource(42))

		for trial := 0; trial < 5; trial++ {
			neos := []*model.NearEarthObject{
				neo("433", "Eros"), neo("1862", "Apollo"), neo("1 P", "Halley"),
				neo("2020 AB", ""), neo("99942", "Apophis"),
			}
			rng.Shuffle(len(neos), func(i, j int) { neos[i], neos[j] = neos[j], neos[i] })

			approaches := []*model.CloseApproach{
				approach("99942", 1), approach("433", 2), approach("433", 3),
				approach("1 P", 4), approach("unknown", 5),
			}

			repository.New(neos, approaches)

			// Every approach links to the matching designation, or stays nil.
			for _, a := range approaches {
				if a.Designation == "unknown" {
					So(a.NEO, ShouldBeNil)
					continue
				}
				So(a.NEO, ShouldNotBeNil)
				So(a.NEO.Designation, ShouldEqual, a.Designation)
			}

			// Each NEO's list holds exactly the matching rows, in
			// extraction order, regardless of the catalog permutation.
			for _, n := range neos {
				var want []*model.CloseApproach
				for _, a := range approaches {
					if a.Designation == n.Designation {
						want = append(want, a)
					}
				}
				So(len(n.Approaches), ShouldEqual, len(want))
				for i := range want {
					So(n.Approaches[i], ShouldEqual, want[i])
				}
			}
		}
	})
}

func TestDuplicateDesignationsLastWriteWins(t *testing.T) {
	Convey("Given two catalog rows with the same designation", t, func() {
		first := neo("433", "Eros")
		second := neo("433", "Eros-revised")
		a := approach("433", 1)

		db := repository.New(
			[]*model.NearEarthObject{first, second},
			[]*model.CloseApproach{a},
		)

		Convey("Then the later row should win the lookup and the approaches", func() {
			So(db.NEOByDesignation("433"), ShouldEqual, second)
			So(a.NEO, ShouldEqual, second)
			So(second.Approaches, ShouldResemble, []*model.CloseApproach{a})
			So(first.Approaches, ShouldBeEmpty)
		})
	})
}

func TestLookups(t *testing.T) {
	Convey("Given a linked database", t, func() {
		eros := neo("433", "Eros")
		unnamed := neo("2020 AB", "")
		a1 := approach("433", 1)
		a2 := approach("2020 AB", 2)

		db := repository.New(
			[]*model.NearEarthObject{eros, unnamed},
			[]*model.CloseApproach{a1, a2},
		)

		Convey("When looking up by designation", func() {
			So(db.NEOByDesignation("433"), ShouldEqual, eros)
			So(db.NEOByDesignation("433 "), ShouldBeNil) // exact match only
			So(db.NEOByDesignation("missing"), ShouldBeNil)
		})

		Convey("When looking up by name", func() {
			So(db.NEOByName("Eros"), ShouldEqual, eros)
			So(db.NEOByName("eros"), ShouldBeNil) // case-sensitive
			So(db.NEOByName(""), ShouldBeNil)     // unnamed NEOs are unreachable by name
		})

		Convey("When iterating the full collection", func() {
			So(db.Approaches(), ShouldResemble, []*model.CloseApproach{a1, a2})
		})
	})
}
