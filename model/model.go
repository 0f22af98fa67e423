package model

import (
	"time"

	"github.com/paulmach/orb"
)

const dateLayout = "2006-01-02"

// Date is a calendar day, serialized as YYYY-MM-DD
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

type SurveyPoint struct {
	PointID     int64    `json:"point_id"`
	EstuaryID   *int64   `json:"estuary_id"`
	StationCode *string  `json:"station_code"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	SurveyDate  *Date    `json:"survey_date"`
}

// SurveyFeature is a survey point row with its geometry split off from the rest of the columns
type SurveyFeature struct {
	Geometry   orb.Geometry
	Properties map[string]interface{}
}

// Station identifies where a measurement was taken
type Station struct {
	StationCode *string  `json:"station_code"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type AbundancePoint struct {
	PointID int64 `json:"point_id"`
	Station
	WaterAbundance    *float64 `json:"water_abundance"`
	SedimentAbundance *float64 `json:"sediment_abundance"`
}

type EstuaryAbundance struct {
	AverageWaterAbundance    *float64         `json:"average_water_abundance"`
	AverageSedimentAbundance *float64         `json:"average_sediment_abundance"`
	Points                   []AbundancePoint `json:"points"`
}

type ShapeCounts struct {
	Fiber    *float64 `json:"fiber"`
	Fragment *float64 `json:"fragment"`
	Film     *float64 `json:"film"`
	Foam     *float64 `json:"foam"`
	Pellet   *float64 `json:"pellet"`
}

type ShapePoint struct {
	Station
	Water    ShapeCounts `json:"water"`
	Sediment ShapeCounts `json:"sediment"`
}

// ShapeAverage is empty ({}) when no points matched
type ShapeAverage struct {
	Water    *ShapeCounts `json:"water,omitempty"`
	Sediment *ShapeCounts `json:"sediment,omitempty"`
}

type EstuaryShape struct {
	Estuary string       `json:"estuary"`
	Points  []ShapePoint `json:"points"`
	Average ShapeAverage `json:"average"`
}

type ColorCounts struct {
	Black       *float64 `json:"black"`
	Red         *float64 `json:"red"`
	Blue        *float64 `json:"blue"`
	Yellow      *float64 `json:"yellow"`
	Grey        *float64 `json:"grey"`
	White       *float64 `json:"white"`
	Green       *float64 `json:"green"`
	Orange      *float64 `json:"orange"`
	Brown       *float64 `json:"brown"`
	Transparent *float64 `json:"transparent"`
}

type ColorPoint struct {
	Station
	Water    ColorCounts `json:"water"`
	Sediment ColorCounts `json:"sediment"`
}

type EstuaryColor struct {
	Estuary string       `json:"estuary"`
	Points  []ColorPoint `json:"points"`
}

// SizeCounts holds particle counts per size range, missing values are reported as 0
type SizeCounts struct {
	LessThan1mm  float64 `json:"lt_1mm"`
	From1To2_5mm float64 `json:"mm_1_to_2_5"`
	From2_5To5mm float64 `json:"mm_2_5_to_5"`
}

type SizePoint struct {
	Station
	Water    SizeCounts `json:"water"`
	Sediment SizeCounts `json:"sediment"`
}

type EstuarySize struct {
	Estuary string      `json:"estuary"`
	Points  []SizePoint `json:"points"`
}

type ErrorMessage struct {
	Error string `json:"error"`
}
