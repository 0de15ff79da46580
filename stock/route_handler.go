package stock

import (
	"context"
	"fmt"
	"strings"

	"github.com/martijnjanssen/stocktable/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

type tableStore interface {
	Snapshot() []Record
	SearchAndHalvePrice(context.Context, string, string) (int, error)
	AddRecord(context.Context, string, string, string, string, string) (Record, error)
	DeleteBySymbol(context.Context, string, string) (int, error)
	SortByPriceAscending(context.Context, string) []Record
	AggregateByGroup(string) ([]GroupStats, error)
}

type stockRouteHandler struct {
	tableStore tableStore
}

// NewRouteHandler creates a route handler operating on the given session
func NewRouteHandler(session *Session) *stockRouteHandler {
	return &stockRouteHandler{
		tableStore: session,
	}
}

// Returns all records in table order
func (h *stockRouteHandler) GetRecords(ctx *fasthttp.RequestCtx) {
	util.JSONValue(ctx, fasthttp.StatusOK, h.tableStore.Snapshot())
}

// Halves the price of every record with the symbol, returns the number updated
func (h *stockRouteHandler) SearchAndHalvePrice(ctx *fasthttp.RequestCtx) {
	symbol := ctx.UserValue("symbol").(string)

	n, err := h.tableStore.SearchAndHalvePrice(ctx, util.RequestID(ctx), symbol)
	if err != nil {
		errorResponse(ctx, err, symbol, "Please enter a symbol to search.")
		return
	}

	util.JSONValue(ctx, fasthttp.StatusOK, map[string]interface{}{
		"updated": n,
		"message": fmt.Sprintf("Price for %s reduced by half.", strings.TrimSpace(symbol)),
	})
}

// Appends a record from the form values symbol, price, pe and group
func (h *stockRouteHandler) CreateRecord(ctx *fasthttp.RequestCtx) {
	r, err := h.tableStore.AddRecord(ctx, util.RequestID(ctx),
		string(ctx.FormValue("symbol")),
		string(ctx.FormValue("price")),
		string(ctx.FormValue("pe")),
		string(ctx.FormValue("group")),
	)
	if err != nil {
		errorResponse(ctx, err, "", "All fields are required.")
		return
	}

	util.JSONValue(ctx, fasthttp.StatusCreated, map[string]interface{}{
		"record":  r,
		"message": "New data added successfully.",
	})
}

// Removes every record with the symbol, returns the number removed
func (h *stockRouteHandler) RemoveRecords(ctx *fasthttp.RequestCtx) {
	symbol := ctx.UserValue("symbol").(string)

	n, err := h.tableStore.DeleteBySymbol(ctx, util.RequestID(ctx), symbol)
	if err != nil {
		errorResponse(ctx, err, symbol, "Please enter a symbol to delete.")
		return
	}

	util.JSONValue(ctx, fasthttp.StatusOK, map[string]interface{}{
		"deleted": n,
		"message": fmt.Sprintf("Rows with Symbol %s deleted.", strings.TrimSpace(symbol)),
	})
}

// Sorts the table by price and returns the sorted records
func (h *stockRouteHandler) SortRecords(ctx *fasthttp.RequestCtx) {
	records := h.tableStore.SortByPriceAscending(ctx, util.RequestID(ctx))

	util.JSONValue(ctx, fasthttp.StatusOK, map[string]interface{}{
		"records": records,
		"message": "Data sorted by Price (ascending).",
	})
}

// Returns the per group aggregation for the function in the path
func (h *stockRouteHandler) GetStats(ctx *fasthttp.RequestCtx) {
	function := ctx.UserValue("function").(string)

	stats, err := h.tableStore.AggregateByGroup(function)
	if err != nil {
		errorResponse(ctx, err, "", fmt.Sprintf("Error calculating statistics: %s", err))
		return
	}

	util.JSONValue(ctx, fasthttp.StatusOK, map[string]interface{}{
		"function": function,
		"groups":   stats,
	})
}

// errorResponse maps a table error to a status code and the message shown to
// the user. invalidInput is the message used for ErrInvalidInput and
// ErrUnsupportedFunction.
func errorResponse(ctx *fasthttp.RequestCtx, err error, symbol string, invalidInput string) {
	kind := Kind(err)

	switch errors.Cause(err) {
	case ErrNotFound:
		util.ErrorResponse(ctx, fasthttp.StatusNotFound, kind,
			fmt.Sprintf("Symbol %s not found in the data.", strings.TrimSpace(symbol)))
	case ErrInvalidNumber:
		util.ErrorResponse(ctx, fasthttp.StatusBadRequest, kind, "Price and PE must be numeric values.")
	case ErrInvalidInput, ErrUnsupportedFunction:
		util.ErrorResponse(ctx, fasthttp.StatusBadRequest, kind, invalidInput)
	default:
		logrus.WithError(err).Error("unexpected table error")
		util.InternalServerError(ctx)
	}
}
