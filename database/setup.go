package database

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// tables the endpoints read from, all in the survey schema
var surveyTables = []string{
	"survey_points",
	"plastic_abundance",
	"plastic_shape_water",
	"plastic_shape_sediment",
	"plastic_color_water",
	"plastic_color_sediment",
	"plastic_size_water",
	"plastic_size_sediment",
}

//CheckSchema makes sure PostGIS is available and warns about missing survey tables. It never changes the database.
func CheckSchema(ctx context.Context, sessions *Sessions) error {

	return sessions.With(ctx, func(conn *pgxpool.Conn) error {
		var version string
		err := conn.QueryRow(ctx, "SELECT postgis_version()").Scan(&version)
		if err != nil {
			return errors.Wrap(err, "PostGIS not found")
		}
		zap.L().Info("Found PostGIS: " + version)

		for _, table := range surveyTables {
			var found *string
			err := conn.QueryRow(ctx, "SELECT to_regclass($1)::text", "survey."+table).Scan(&found)
			if err != nil {
				return errors.Wrapf(err, "unable to look up table %s", table)
			}
			if found == nil {
				zap.L().Warn("survey table missing", zap.String("table", table))
			}
		}
		return nil
	})
}
