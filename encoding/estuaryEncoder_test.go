package encoding

import (
	"encoding/json"
	"testing"

	"github.com/Aksh8804/india-estuaries-api/database"
	"github.com/Aksh8804/india-estuaries-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return &v
}

func s(v string) *string {
	return &v
}

func station(code string) model.Station {
	return model.Station{StationCode: s(code), Latitude: f(21.6), Longitude: f(88.2)}
}

func TestAbundance_NoRows(t *testing.T) {

	summary, ok := Abundance(nil)
	assert.False(t, ok)
	assert.Nil(t, summary)
}

func TestAbundance_SkipsNulls(t *testing.T) {

	rows := []database.AbundanceRow{
		{PointID: 1, Station: station("HO-1"), WaterAbundance: nil, SedimentAbundance: f(3)},
		{PointID: 2, Station: station("HO-2"), WaterAbundance: f(4.5), SedimentAbundance: f(6)},
	}

	summary, ok := Abundance(rows)
	require.True(t, ok)
	require.NotNil(t, summary.AverageWaterAbundance)
	assert.Equal(t, 4.5, *summary.AverageWaterAbundance)
	require.NotNil(t, summary.AverageSedimentAbundance)
	assert.Equal(t, 4.5, *summary.AverageSedimentAbundance)

	require.Len(t, summary.Points, 2)
	assert.Equal(t, int64(1), summary.Points[0].PointID)
	assert.Nil(t, summary.Points[0].WaterAbundance)
	assert.Equal(t, "HO-2", *summary.Points[1].StationCode)
}

func TestAbundance_AllNullIsNull(t *testing.T) {

	rows := []database.AbundanceRow{
		{PointID: 7, Station: station("MA-1")},
		{PointID: 8, Station: station("MA-2")},
	}

	summary, ok := Abundance(rows)
	require.True(t, ok)

	b, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"average_water_abundance": null,
		"average_sediment_abundance": null,
		"points": [
			{"point_id": 7, "station_code": "MA-1", "latitude": 21.6, "longitude": 88.2, "water_abundance": null, "sediment_abundance": null},
			{"point_id": 8, "station_code": "MA-2", "latitude": 21.6, "longitude": 88.2, "water_abundance": null, "sediment_abundance": null}
		]
	}`, string(b))
}

func TestShape_Empty(t *testing.T) {

	b, err := json.Marshal(Shape("Vembanad", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"estuary": "Vembanad", "points": [], "average": {}}`, string(b))
}

func TestShape_AverageRoundedToTwoPlaces(t *testing.T) {

	rows := []database.ShapeRow{
		{
			Station:  station("CH-1"),
			Water:    model.ShapeCounts{Fiber: f(1), Fragment: f(0.125), Film: f(10), Foam: f(0), Pellet: nil},
			Sediment: model.ShapeCounts{Fiber: f(2.5), Fragment: f(1), Film: f(1), Foam: f(1), Pellet: f(1)},
		},
		{
			Station:  station("CH-2"),
			Water:    model.ShapeCounts{Fiber: f(2), Fragment: f(0.125), Film: f(20), Foam: f(0), Pellet: nil},
			Sediment: model.ShapeCounts{Fiber: f(2.5), Fragment: f(2), Film: f(1), Foam: f(1), Pellet: f(4)},
		},
		{
			Station:  station("CH-3"),
			Water:    model.ShapeCounts{Fiber: f(2), Fragment: f(0.125), Film: f(30), Foam: f(0), Pellet: nil},
			Sediment: model.ShapeCounts{Fiber: f(2.5), Fragment: f(2), Film: nil, Foam: f(1), Pellet: f(4)},
		},
	}

	out := Shape("Chilika", rows)
	assert.Equal(t, "Chilika", out.Estuary)
	require.Len(t, out.Points, 3)
	assert.Equal(t, rows[1].Water, out.Points[1].Water)

	water := out.Average.Water
	require.NotNil(t, water)
	assert.Equal(t, 1.67, *water.Fiber)
	assert.Equal(t, 0.13, *water.Fragment)
	assert.Equal(t, 20.0, *water.Film)
	assert.Equal(t, 0.0, *water.Foam)
	assert.Nil(t, water.Pellet)

	sediment := out.Average.Sediment
	require.NotNil(t, sediment)
	assert.Equal(t, 2.5, *sediment.Fiber)
	assert.Equal(t, 1.67, *sediment.Fragment)
	assert.Equal(t, 1.0, *sediment.Film)
	assert.Equal(t, 3.0, *sediment.Pellet)
}

func TestColor_KeepsNulls(t *testing.T) {

	rows := []database.ColorRow{
		{Station: station("KR-1"), Water: model.ColorCounts{Black: f(3), Transparent: f(1)}},
	}

	b, err := json.Marshal(Color("Krishna", rows))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"estuary": "Krishna",
		"points": [{
			"station_code": "KR-1", "latitude": 21.6, "longitude": 88.2,
			"water": {"black": 3, "red": null, "blue": null, "yellow": null, "grey": null,
				"white": null, "green": null, "orange": null, "brown": null, "transparent": 1},
			"sediment": {"black": null, "red": null, "blue": null, "yellow": null, "grey": null,
				"white": null, "green": null, "orange": null, "brown": null, "transparent": null}
		}]
	}`, string(b))
}

func TestColor_NoRows(t *testing.T) {

	b, err := json.Marshal(Color("Krishna", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"estuary": "Krishna", "points": []}`, string(b))
}

func TestSize_NullsBecomeZero(t *testing.T) {

	rows := []database.SizeRow{
		{
			Station:  station("GO-1"),
			Water:    database.SizeBuckets{LessThan1mm: nil, From1To2_5mm: f(4), From2_5To5mm: f(2)},
			Sediment: database.SizeBuckets{},
		},
	}

	b, err := json.Marshal(Size("Godavari", rows))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"estuary": "Godavari",
		"points": [{
			"station_code": "GO-1", "latitude": 21.6, "longitude": 88.2,
			"water": {"lt_1mm": 0, "mm_1_to_2_5": 4, "mm_2_5_to_5": 2},
			"sediment": {"lt_1mm": 0, "mm_1_to_2_5": 0, "mm_2_5_to_5": 0}
		}]
	}`, string(b))
}

func TestMean(t *testing.T) {

	assert.Nil(t, mean())
	assert.Nil(t, mean(nil, nil))
	assert.Equal(t, 2.0, *mean(f(1), nil, f(3)))
}
