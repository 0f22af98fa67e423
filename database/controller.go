package database

import (
	"context"
	"time"

	"github.com/Aksh8804/india-estuaries-api/metrics"
	"github.com/Aksh8804/india-estuaries-api/model"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	surveyPointsSql = `SELECT point_id, estuary_id, station_code, location,
	latitude::float8, longitude::float8, survey_date
FROM survey.survey_points
ORDER BY point_id`

	surveyFeaturesSql = `SELECT to_jsonb(sp) - 'geom', ST_AsBinary(ST_Force2D(sp.geom))
FROM survey.survey_points sp
ORDER BY sp.point_id`

	abundanceSql = `SELECT sp.point_id, sp.station_code, sp.latitude::float8, sp.longitude::float8,
	pa.water_abundance::float8, pa.sediment_abundance::float8
FROM survey.survey_points sp
LEFT JOIN survey.plastic_abundance pa ON sp.station_code = pa.station_code
WHERE sp.estuary_name = $1`

	shapeSql = `SELECT sp.station_code, sp.latitude::float8, sp.longitude::float8,
	w.fiber::float8, w.fragment::float8, w.film::float8, w.foam::float8, w.pellet::float8,
	s.fiber::float8, s.fragment::float8, s.film::float8, s.foam::float8, s.pellet::float8
FROM survey.survey_points sp
JOIN survey.plastic_shape_water w ON sp.station_code = w.station_code
JOIN survey.plastic_shape_sediment s ON sp.station_code = s.station_code
WHERE sp.estuary_name = $1`

	colorSql = `SELECT sp.station_code, sp.latitude::float8, sp.longitude::float8,
	cw.black::float8, cw.red::float8, cw.blue::float8, cw.yellow::float8, cw.grey::float8,
	cw.white::float8, cw.green::float8, cw.orange::float8, cw.brown::float8, cw.transparent::float8,
	cs.black::float8, cs.red::float8, cs.blue::float8, cs.yellow::float8, cs.grey::float8,
	cs.white::float8, cs.green::float8, cs.orange::float8, cs.brown::float8, cs.transparent::float8
FROM survey.survey_points sp
LEFT JOIN survey.plastic_color_water cw ON sp.station_code = cw.station_code
LEFT JOIN survey.plastic_color_sediment cs ON sp.station_code = cs.station_code
WHERE sp.estuary_name = $1
ORDER BY sp.station_code`

	sizeSql = `SELECT sp.station_code, sp.latitude::float8, sp.longitude::float8,
	sw.lt_1mm::float8, sw.mm_1_to_2_5::float8, sw.mm_2_5_to_5::float8,
	ss.lt_1mm::float8, ss.mm_1_to_2_5::float8, ss.mm_2_5_to_5::float8
FROM survey.survey_points sp
LEFT JOIN survey.plastic_size_water sw ON sp.station_code = sw.station_code
LEFT JOIN survey.plastic_size_sediment ss ON sp.station_code = ss.station_code
WHERE sp.estuary_name = $1
ORDER BY sp.station_code`
)

type SurveyController struct {
	sessions *Sessions
}

func NewSurveyController(sessions *Sessions) *SurveyController {
	return &SurveyController{sessions: sessions}
}

//FindSurveyPoints returns every survey point ordered by id
func (sc *SurveyController) FindSurveyPoints(ctx context.Context) ([]*model.SurveyPoint, error) {

	points := make([]*model.SurveyPoint, 0)
	err := sc.query(ctx, "survey_points", surveyPointsSql, nil, func(rows pgx.Rows) error {
		var p model.SurveyPoint
		var date pgtype.Date
		err := rows.Scan(&p.PointID, &p.EstuaryID, &p.StationCode, &p.Location, &p.Latitude, &p.Longitude, &date)
		if err != nil {
			return err
		}
		if date.Status == pgtype.Present {
			p.SurveyDate = &model.Date{Time: date.Time}
		}
		points = append(points, &p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Debug("returned", zap.Int("survey_points", len(points)))
	return points, nil
}

//FindSurveyFeatures returns survey points with geometry decoded and the other columns as properties
func (sc *SurveyController) FindSurveyFeatures(ctx context.Context) ([]*model.SurveyFeature, error) {

	features := make([]*model.SurveyFeature, 0)
	err := sc.query(ctx, "survey_features", surveyFeaturesSql, nil, func(rows pgx.Rows) error {
		var props map[string]interface{}
		var geom []byte
		if err := rows.Scan(&props, &geom); err != nil {
			return err
		}
		features = append(features, surveyFeature(props, geom))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return features, nil
}

//FindAbundance left joins the estuary's survey points with their abundance measurements
func (sc *SurveyController) FindAbundance(ctx context.Context, estuary string) ([]AbundanceRow, error) {

	var out []AbundanceRow
	err := sc.query(ctx, "abundance", abundanceSql, []interface{}{estuary}, func(rows pgx.Rows) error {
		var r AbundanceRow
		if err := rows.Scan(r.fields()...); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

//FindShapes returns only stations that have both water and sediment shape measurements
func (sc *SurveyController) FindShapes(ctx context.Context, estuary string) ([]ShapeRow, error) {

	var out []ShapeRow
	err := sc.query(ctx, "shape", shapeSql, []interface{}{estuary}, func(rows pgx.Rows) error {
		var r ShapeRow
		if err := rows.Scan(r.fields()...); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

func (sc *SurveyController) FindColors(ctx context.Context, estuary string) ([]ColorRow, error) {

	var out []ColorRow
	err := sc.query(ctx, "color", colorSql, []interface{}{estuary}, func(rows pgx.Rows) error {
		var r ColorRow
		if err := rows.Scan(r.fields()...); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

func (sc *SurveyController) FindSizes(ctx context.Context, estuary string) ([]SizeRow, error) {

	var out []SizeRow
	err := sc.query(ctx, "size", sizeSql, []interface{}{estuary}, func(rows pgx.Rows) error {
		var r SizeRow
		if err := rows.Scan(r.fields()...); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

//Ping is used by the readiness check
func (sc *SurveyController) Ping(ctx context.Context) error {
	return sc.sessions.Ping(ctx)
}

//query runs a single statement on its own session and hands every row to scan
func (sc *SurveyController) query(ctx context.Context, op string, sql string, args []interface{}, scan func(pgx.Rows) error) error {

	start := time.Now()
	err := sc.sessions.With(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			if err := scan(rows); err != nil {
				return err
			}
		}
		return rows.Err()
	})
	metrics.ObserveQuery(op, time.Since(start), err)

	if err != nil {
		zap.L().Error("query failed", zap.String("operation", op), zap.Error(err))
		return errors.Wrapf(err, "error querying %s", op)
	}
	return nil
}

//surveyFeature keeps every row, a geometry that cannot be decoded is reported as null
func surveyFeature(props map[string]interface{}, geom []byte) *model.SurveyFeature {
	g, err := scanGeometry(geom)
	if err != nil {
		zap.S().Warnf("error scanning geometry from row: %s", err.Error())
		g = nil
	}
	if props == nil {
		props = make(map[string]interface{})
	}
	return &model.SurveyFeature{Geometry: g, Properties: props}
}

//scanGeometry decodes WKB, a NULL geometry column comes back as a nil geometry
func scanGeometry(geom []byte) (orb.Geometry, error) {
	if len(geom) == 0 {
		return nil, nil
	}
	scanner := wkb.Scanner(nil)
	if err := scanner.Scan(geom); err != nil {
		return nil, err
	}
	if !scanner.Valid {
		return nil, nil
	}
	return scanner.Geometry, nil
}
