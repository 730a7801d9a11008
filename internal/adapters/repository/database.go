// Package repository holds the linked in-memory database of NEOs and their
// close approaches.
//
// New is the only place where the two record sets interact: it builds a
// designation-keyed lookup over the NEOs and rewires every close approach to
// reference its NEO, in a single O(N+M) pass. The database is read-only once
// built; there is no incremental ingestion.
package repository

import (
	"github.com/kianm/neoscout/internal/domain/model"
)

// Database provides designation- and name-keyed access to the linked model.
type Database struct {
	neos       []*model.NearEarthObject
	approaches []*model.CloseApproach

	byDesignation map[string]*model.NearEarthObject
	byName        map[string]*model.NearEarthObject
}

// New builds the designation lookup and links the two record sets.
//
// Duplicate designations in the catalog are resolved last-write-wins: the
// lookup keeps the later row, and all matching approaches attach to it. The
// upstream catalog does not guarantee uniqueness, and failing the whole run
// over a known data wart would be worse than a deterministic pick.
//
// Approaches whose designation matches no NEO keep a nil NEO reference and
// belong to no approach list; they stay fully usable on their own. Linking
// itself never fails.
func New(neos []*model.NearEarthObject, approaches []*model.CloseApproach) *Database {
	db := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*model.NearEarthObject, len(neos)),
		byName:        make(map[string]*model.NearEarthObject, len(neos)),
	}

	for _, neo := range db.neos {
		db.byDesignation[neo.Designation] = neo
		if neo.HasName() {
			db.byName[neo.Name] = neo
		}
	}

	for _, approach := range db.approaches {
		neo, ok := db.byDesignation[approach.Designation]
		if !ok {
			continue
		}
		approach.NEO = neo
		neo.Approaches = append(neo.Approaches, approach)
	}

	return db
}

// NEOByDesignation returns the NEO with the exact designation, or nil.
func (db *Database) NEOByDesignation(designation string) *model.NearEarthObject {
	return db.byDesignation[designation]
}

// NEOByName returns the NEO with the exact, case-sensitive IAU name, or nil.
// Unnamed NEOs are never found by name.
func (db *Database) NEOByName(name string) *model.NearEarthObject {
	if name == "" {
		return nil
	}
	return db.byName[name]
}

// Approaches returns every close approach in extraction order. Callers must
// treat the slice as read-only.
func (db *Database) Approaches() []*model.CloseApproach {
	return db.approaches
}

// LinkedCount reports how many approaches resolved to a NEO.
func (db *Database) LinkedCount() int {
	linked := 0
	for _, approach := range db.approaches {
		if approach.NEO != nil {
			linked++
		}
	}
	return linked
}
