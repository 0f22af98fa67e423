package handler

import (
	"context"

	"github.com/Aksh8804/india-estuaries-api/database"
	"github.com/Aksh8804/india-estuaries-api/encoding"
	"github.com/Aksh8804/india-estuaries-api/middleware"
	"github.com/Aksh8804/india-estuaries-api/model"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

const noPointsFound = "No points found"

// SurveyStore is the read side of the survey database, one query per call
type SurveyStore interface {
	FindSurveyPoints(ctx context.Context) ([]*model.SurveyPoint, error)
	FindSurveyFeatures(ctx context.Context) ([]*model.SurveyFeature, error)
	FindAbundance(ctx context.Context, estuary string) ([]database.AbundanceRow, error)
	FindShapes(ctx context.Context, estuary string) ([]database.ShapeRow, error)
	FindColors(ctx context.Context, estuary string) ([]database.ColorRow, error)
	FindSizes(ctx context.Context, estuary string) ([]database.SizeRow, error)
	Ping(ctx context.Context) error
}

type SurveyHandler struct {
	Store SurveyStore
}

func (sh *SurveyHandler) GetSurveyPoints(ctx iris.Context) {

	points, err := sh.Store.FindSurveyPoints(ctx.Request().Context())
	if err != nil {
		databaseProblem(ctx, err)
		return
	}
	ctx.JSON(points)
}

func (sh *SurveyHandler) GetSurveyGeoJson(ctx iris.Context) {

	features, err := sh.Store.FindSurveyFeatures(ctx.Request().Context())
	if err != nil {
		databaseProblem(ctx, err)
		return
	}
	ctx.JSON(encoding.SurveyFeatureCollection(features))
}

//GetAbundance answers an unknown estuary with a 200 error object, unlike the distribution endpoints
func (sh *SurveyHandler) GetAbundance(ctx iris.Context) {

	rows, err := sh.Store.FindAbundance(ctx.Request().Context(), ctx.Params().Get("estuary"))
	if err != nil {
		databaseProblem(ctx, err)
		return
	}
	summary, ok := encoding.Abundance(rows)
	if !ok {
		ctx.JSON(model.ErrorMessage{Error: noPointsFound})
		return
	}
	ctx.JSON(summary)
}

func (sh *SurveyHandler) GetShape(ctx iris.Context) {

	estuary := ctx.Params().Get("estuary")
	rows, err := sh.Store.FindShapes(ctx.Request().Context(), estuary)
	if err != nil {
		databaseProblem(ctx, err)
		return
	}
	ctx.JSON(encoding.Shape(estuary, rows))
}

func (sh *SurveyHandler) GetColor(ctx iris.Context) {

	estuary := ctx.Params().Get("estuary")
	rows, err := sh.Store.FindColors(ctx.Request().Context(), estuary)
	if err != nil {
		databaseProblem(ctx, err)
		return
	}
	ctx.JSON(encoding.Color(estuary, rows))
}

func (sh *SurveyHandler) GetSize(ctx iris.Context) {

	estuary := ctx.Params().Get("estuary")
	rows, err := sh.Store.FindSizes(ctx.Request().Context(), estuary)
	if err != nil {
		databaseProblem(ctx, err)
		return
	}
	ctx.JSON(encoding.Size(estuary, rows))
}

//databaseProblem hides the cause from the client, it only goes to the log
func databaseProblem(ctx iris.Context, err error) {
	zap.L().Error("database issue",
		zap.String("path", ctx.Path()),
		zap.String("request_id", middleware.RequestID(ctx)),
		zap.Error(err))
	ctx.Problem(iris.NewProblem().Type(ctx.Path()).Detail("database issue").Status(iris.StatusInternalServerError))
}
