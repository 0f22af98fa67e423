package encoding

import (
	"github.com/Aksh8804/india-estuaries-api/database"
	"github.com/Aksh8804/india-estuaries-api/model"
)

const averagePlaces = 2

//Abundance averages water and sediment abundance over the rows. ok is false when there are no rows at all.
func Abundance(rows []database.AbundanceRow) (summary *model.EstuaryAbundance, ok bool) {

	if len(rows) == 0 {
		return nil, false
	}

	water := make([]*float64, 0, len(rows))
	sediment := make([]*float64, 0, len(rows))
	points := make([]model.AbundancePoint, 0, len(rows))

	for _, r := range rows {
		water = append(water, r.WaterAbundance)
		sediment = append(sediment, r.SedimentAbundance)
		points = append(points, model.AbundancePoint{
			PointID:           r.PointID,
			Station:           r.Station,
			WaterAbundance:    r.WaterAbundance,
			SedimentAbundance: r.SedimentAbundance,
		})
	}

	return &model.EstuaryAbundance{
		AverageWaterAbundance:    mean(water...),
		AverageSedimentAbundance: mean(sediment...),
		Points:                   points,
	}, true
}

//Shape lists every station's shape counts and the per category mean for each medium
func Shape(estuary string, rows []database.ShapeRow) *model.EstuaryShape {

	out := &model.EstuaryShape{
		Estuary: estuary,
		Points:  make([]model.ShapePoint, 0, len(rows)),
	}
	if len(rows) == 0 {
		return out
	}

	var water, sediment [5]average
	for _, r := range rows {
		out.Points = append(out.Points, model.ShapePoint{
			Station:  r.Station,
			Water:    r.Water,
			Sediment: r.Sediment,
		})
		for i, v := range shapeCategories(&r.Water) {
			water[i].add(*v)
		}
		for i, v := range shapeCategories(&r.Sediment) {
			sediment[i].add(*v)
		}
	}

	out.Average.Water = &model.ShapeCounts{}
	for i, v := range shapeCategories(out.Average.Water) {
		*v = water[i].rounded(averagePlaces)
	}
	out.Average.Sediment = &model.ShapeCounts{}
	for i, v := range shapeCategories(out.Average.Sediment) {
		*v = sediment[i].rounded(averagePlaces)
	}
	return out
}

//Color passes the colour counts through untouched, missing measurements stay null
func Color(estuary string, rows []database.ColorRow) *model.EstuaryColor {

	out := &model.EstuaryColor{
		Estuary: estuary,
		Points:  make([]model.ColorPoint, 0, len(rows)),
	}
	for _, r := range rows {
		out.Points = append(out.Points, model.ColorPoint{
			Station:  r.Station,
			Water:    r.Water,
			Sediment: r.Sediment,
		})
	}
	return out
}

//Size reports missing size buckets as 0
func Size(estuary string, rows []database.SizeRow) *model.EstuarySize {

	out := &model.EstuarySize{
		Estuary: estuary,
		Points:  make([]model.SizePoint, 0, len(rows)),
	}
	for _, r := range rows {
		out.Points = append(out.Points, model.SizePoint{
			Station:  r.Station,
			Water:    sizeCounts(r.Water),
			Sediment: sizeCounts(r.Sediment),
		})
	}
	return out
}

// same order as the columns of model.ShapeCounts
func shapeCategories(c *model.ShapeCounts) []**float64 {
	return []**float64{&c.Fiber, &c.Fragment, &c.Film, &c.Foam, &c.Pellet}
}

func sizeCounts(b database.SizeBuckets) model.SizeCounts {
	return model.SizeCounts{
		LessThan1mm:  orZero(b.LessThan1mm),
		From1To2_5mm: orZero(b.From1To2_5mm),
		From2_5To5mm: orZero(b.From2_5To5mm),
	}
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
