package chart

import (
	"github.com/martijnjanssen/stocktable/stock"
	"github.com/martijnjanssen/stocktable/util"
	"github.com/valyala/fasthttp"
)

type recordSource interface {
	Snapshot() []stock.Record
}

type chartRouteHandler struct {
	source recordSource
}

func NewRouteHandler(session *stock.Session) *chartRouteHandler {
	return &chartRouteHandler{
		source: session,
	}
}

// Returns the price per symbol series
func (h *chartRouteHandler) GetBars(ctx *fasthttp.RequestCtx) {
	util.JSONValue(ctx, fasthttp.StatusOK, Bars(h.source.Snapshot()))
}

// Returns the record count per group series
func (h *chartRouteHandler) GetPie(ctx *fasthttp.RequestCtx) {
	util.JSONValue(ctx, fasthttp.StatusOK, Pie(h.source.Snapshot()))
}
