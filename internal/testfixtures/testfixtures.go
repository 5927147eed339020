// Package testfixtures builds small, hand-authored in-memory stores
// for package tests across the repo, so cache/query/search/export
// tests share one realistic fixture instead of each hand-rolling a
// store from scratch.
package testfixtures

import (
	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

// SampleStore is a frozen store with three lifters and five entries
// spanning two federations, both sexes, raw and single-ply equipment,
// and two calendar years.
func SampleStore() *store.Store {
	s := store.New(3, 2, 5)

	john, err := s.AddLifter(store.Lifter{Username: "johndoe", Name: "John Doe"})
	must(err)
	jane, err := s.AddLifter(store.Lifter{Username: "janedoe", Name: "Jane Doe"})
	must(err)
	mark, err := s.AddLifter(store.Lifter{Username: "marksmith", Name: "Mark Smith"})
	must(err)

	meet2022, err := s.AddMeet(store.Meet{
		Path:       "uspa/2201",
		Federation: opltypes.FederationUSPA,
		Date:       mustDate("2022-03-01"),
	})
	must(err)
	meet2023, err := s.AddMeet(store.Meet{
		Path:       "ipf/2301",
		Federation: opltypes.FederationIPF,
		Date:       mustDate("2023-06-01"),
	})
	must(err)

	s.AddEntry(store.Entry{
		LifterID:     john,
		MeetID:       meet2022,
		Sex:          opltypes.SexMale,
		Event:        opltypes.EventSBD,
		Equipment:    opltypes.EquipmentRaw,
		BodyweightKg: mustWeight("90"),
		TotalKg:      mustWeight("600"),
		Points:       store.Points{Wilks: opltypes.PointsFromFloat64(400)},
	})
	s.AddEntry(store.Entry{
		LifterID:     john,
		MeetID:       meet2023,
		Sex:          opltypes.SexMale,
		Event:        opltypes.EventSBD,
		Equipment:    opltypes.EquipmentRaw,
		BodyweightKg: mustWeight("91"),
		TotalKg:      mustWeight("650"),
		Points:       store.Points{Wilks: opltypes.PointsFromFloat64(420)},
	})
	s.AddEntry(store.Entry{
		LifterID:     jane,
		MeetID:       meet2022,
		Sex:          opltypes.SexFemale,
		Event:        opltypes.EventSBD,
		Equipment:    opltypes.EquipmentRaw,
		BodyweightKg: mustWeight("60"),
		TotalKg:      mustWeight("400"),
		Points:       store.Points{Wilks: opltypes.PointsFromFloat64(450)},
	})
	s.AddEntry(store.Entry{
		LifterID:     jane,
		MeetID:       meet2023,
		Sex:          opltypes.SexFemale,
		Event:        opltypes.EventBench,
		Equipment:    opltypes.EquipmentSingle,
		BodyweightKg: mustWeight("61"),
		TotalKg:      mustWeight("130"),
		Points:       store.Points{Wilks: opltypes.PointsFromFloat64(150)},
	})
	s.AddEntry(store.Entry{
		LifterID:     mark,
		MeetID:       meet2023,
		Sex:          opltypes.SexMale,
		Event:        opltypes.EventSBD,
		Equipment:    opltypes.EquipmentRaw,
		BodyweightKg: mustWeight("100"),
		TotalKg:      mustWeight("700"),
		Points:       store.Points{Wilks: opltypes.PointsFromFloat64(410)},
	})

	s.SortLifterMap()
	s.ComputeNumUniqueLifters()
	s.Freeze()
	return s
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustDate(v string) opltypes.Date {
	d, err := opltypes.ParseDate(v)
	must(err)
	return d
}

func mustWeight(v string) opltypes.WeightKg {
	w, _, err := opltypes.ParseWeightKg(v)
	must(err)
	return w
}
