package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aksh8804/india-estuaries-api/config"
	"github.com/Aksh8804/india-estuaries-api/database"
	"github.com/Aksh8804/india-estuaries-api/handler"
	"github.com/Aksh8804/india-estuaries-api/middleware"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/kataras/iris/v12"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {

	settings := config.Load()
	pool := preflight(settings)
	defer pool.Close()
	defer zap.L().Sync()

	store := database.NewSurveyController(database.NewSessions(pool))
	app := surveyApi(store, settings)

	err := app.Listen(":"+settings.Port, iris.WithoutServerError(iris.ErrServerClosed))
	if err != nil {
		zap.L().Error("server stopped", zap.Error(err))
	}
}

func surveyApi(store handler.SurveyStore, settings *config.Settings) *iris.Application {

	app := iris.New()
	app.WrapRouter(middleware.CORS(settings.CorsOrigins))
	app.Use(middleware.RequestLog)

	//healthcheck endpoints
	app.Get("/healthz", handler.Ok)
	app.Get("/health", handler.Ready(store))
	app.Get("/metrics", iris.FromStd(promhttp.Handler()))

	sh := handler.SurveyHandler{Store: store}
	app.Get("/survey-points", sh.GetSurveyPoints)
	app.Get("/survey/points/geojson", sh.GetSurveyGeoJson)

	estuaries := app.Party("/estuaries")
	{
		estuaries.Get("/{estuary}", sh.GetAbundance)
		estuaries.Get("/{estuary}/shape", sh.GetShape)
		estuaries.Get("/{estuary}/color", sh.GetColor)
		estuaries.Get("/{estuary}/size", sh.GetSize)
	}

	//map viewer
	app.Get("/", handler.Index(filepath.Join(settings.StaticDir, settings.IndexFile)))
	app.HandleDir("/static", settings.StaticDir)

	return app
}

//preflight sets up logging and the database pool, anything missing here is fatal
func preflight(settings *config.Settings) *pgxpool.Pool {

	logger, err := config.NewLogger(settings.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to build logger:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := config.Connect(ctx, settings, logger)
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if settings.CheckSchema {
		if err := database.CheckSchema(ctx, database.NewSessions(pool)); err != nil {
			zap.L().Warn("survey schema check failed", zap.Error(err))
		}
	}

	zap.L().Info("Preflight complete!")
	return pool
}
