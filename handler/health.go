package handler

import (
	"context"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

//Ok is a simple liveness endpoint for the service
func Ok(ctx iris.Context) {

	ctx.JSON(map[string]string{"status": "ok"})
}

//Ready reports ok only while the database answers
func Ready(db Pinger) iris.Handler {
	return func(ctx iris.Context) {
		if err := db.Ping(ctx.Request().Context()); err != nil {
			zap.L().Warn("database unreachable", zap.Error(err))
			ctx.Problem(iris.NewProblem().Type("/health").Detail("database unreachable").Status(iris.StatusServiceUnavailable))
			return
		}
		ctx.JSON(map[string]string{"status": "ok", "database": "ok"})
	}
}
