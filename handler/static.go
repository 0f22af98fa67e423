package handler

import (
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

//Index serves the map viewer page
func Index(file string) iris.Handler {
	return func(ctx iris.Context) {
		if err := ctx.ServeFile(file, false); err != nil {
			zap.L().Error("unable to serve index", zap.String("file", file), zap.Error(err))
			ctx.NotFound()
		}
	}
}
