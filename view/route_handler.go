package view

import (
	"github.com/martijnjanssen/stocktable/stock"
	"github.com/martijnjanssen/stocktable/util"
	"github.com/valyala/fasthttp"
)

type recordSource interface {
	Snapshot() []stock.Record
}

type viewRouteHandler struct {
	source recordSource
}

func NewRouteHandler(session *stock.Session) *viewRouteHandler {
	return &viewRouteHandler{
		source: session,
	}
}

// Returns the table as a grid of coloured cells
func (h *viewRouteHandler) GetGrid(ctx *fasthttp.RequestCtx) {
	util.JSONValue(ctx, fasthttp.StatusOK, NewGrid(h.source.Snapshot()))
}
