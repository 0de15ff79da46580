package server

import (
	"github.com/fasthttp/router"
	"github.com/gofrs/uuid"
	"github.com/martijnjanssen/stocktable/chart"
	"github.com/martijnjanssen/stocktable/stock"
	"github.com/martijnjanssen/stocktable/util"
	"github.com/martijnjanssen/stocktable/view"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// Handler returns the router with all table, view and chart routes
func Handler(session *stock.Session) fasthttp.RequestHandler {
	h := stock.NewRouteHandler(session)
	v := view.NewRouteHandler(session)
	c := chart.NewRouteHandler(session)

	r := router.New()
	r.PanicHandler = panicHandler

	r.GET("/records", h.GetRecords)
	r.GET("/records/grid", v.GetGrid)
	r.POST("/records/search/{symbol}", h.SearchAndHalvePrice)
	r.POST("/records/create", h.CreateRecord)
	r.DELETE("/records/remove/{symbol}", h.RemoveRecords)
	r.POST("/records/sort", h.SortRecords)
	r.GET("/records/stats/{function}", h.GetStats)

	r.GET("/charts/bar", c.GetBars)
	r.GET("/charts/pie", c.GetPie)

	return withRequestID(r.Handler)
}

// withRequestID makes sure every request carries an id, and echoes it back
func withRequestID(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := util.RequestID(ctx)
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
			ctx.Request.Header.Set(util.HeaderRequestID, id)
		}
		ctx.Response.Header.Set(util.HeaderRequestID, id)

		next(ctx)

		logrus.WithField("request_id", id).
			WithField("method", string(ctx.Method())).
			WithField("path", string(ctx.Path())).
			WithField("status", ctx.Response.StatusCode()).
			Debug("Handled request")
	}
}

func panicHandler(ctx *fasthttp.RequestCtx, p interface{}) {
	logrus.WithField("panic", p).Error("Recovered in panicHandler")

	ctx.Response.Reset()
	ctx.SetStatusCode(fasthttp.StatusInternalServerError)
}
