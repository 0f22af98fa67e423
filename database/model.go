package database

import (
	"github.com/Aksh8804/india-estuaries-api/model"
)

// AbundanceRow is one survey point of an estuary left joined with its abundance measurements
type AbundanceRow struct {
	PointID           int64
	Station           model.Station
	WaterAbundance    *float64
	SedimentAbundance *float64
}

func (r *AbundanceRow) fields() []interface{} {
	return []interface{}{
		&r.PointID,
		&r.Station.StationCode, &r.Station.Latitude, &r.Station.Longitude,
		&r.WaterAbundance, &r.SedimentAbundance,
	}
}

// ShapeRow only exists for stations present in both shape tables
type ShapeRow struct {
	Station  model.Station
	Water    model.ShapeCounts
	Sediment model.ShapeCounts
}

func (r *ShapeRow) fields() []interface{} {
	f := []interface{}{&r.Station.StationCode, &r.Station.Latitude, &r.Station.Longitude}
	for _, c := range []*model.ShapeCounts{&r.Water, &r.Sediment} {
		f = append(f, &c.Fiber, &c.Fragment, &c.Film, &c.Foam, &c.Pellet)
	}
	return f
}

type ColorRow struct {
	Station  model.Station
	Water    model.ColorCounts
	Sediment model.ColorCounts
}

func (r *ColorRow) fields() []interface{} {
	f := []interface{}{&r.Station.StationCode, &r.Station.Latitude, &r.Station.Longitude}
	for _, c := range []*model.ColorCounts{&r.Water, &r.Sediment} {
		f = append(f,
			&c.Black, &c.Red, &c.Blue, &c.Yellow, &c.Grey,
			&c.White, &c.Green, &c.Orange, &c.Brown, &c.Transparent)
	}
	return f
}

// SizeBuckets keeps the nulls coming out of the left join, encoding decides what to do with them
type SizeBuckets struct {
	LessThan1mm  *float64
	From1To2_5mm *float64
	From2_5To5mm *float64
}

type SizeRow struct {
	Station  model.Station
	Water    SizeBuckets
	Sediment SizeBuckets
}

func (r *SizeRow) fields() []interface{} {
	f := []interface{}{&r.Station.StationCode, &r.Station.Latitude, &r.Station.Longitude}
	for _, b := range []*SizeBuckets{&r.Water, &r.Sediment} {
		f = append(f, &b.LessThan1mm, &b.From1To2_5mm, &b.From2_5To5mm)
	}
	return f
}
