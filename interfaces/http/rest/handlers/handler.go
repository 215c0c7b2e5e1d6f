package handlers

import (
	"net/http"

	"grapheditor/application/commands/bus"
	querybus "grapheditor/application/queries/bus"
	"grapheditor/pkg/common"
	pkgerrors "grapheditor/pkg/errors"
	"grapheditor/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps are shared by every HTTP handler
type Deps struct {
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
	Errors     *pkgerrors.ErrorHandler
	Logger     *zap.Logger
}

// base carries the helpers every handler uses
type base struct {
	Deps
}

// send dispatches a gesture and writes its result
func (b *base) send(w http.ResponseWriter, r *http.Request, status int, cmd bus.Command) {
	result, err := b.CommandBus.Send(r.Context(), cmd)
	if err != nil {
		b.Errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, status, result)
}

// ask runs a query and writes its result
func (b *base) ask(w http.ResponseWriter, r *http.Request, query querybus.Query) {
	result, err := b.QueryBus.Ask(r.Context(), query)
	if err != nil {
		b.Errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// decode parses and validates a request body. It writes the error response
// itself and reports whether the handler should continue.
func (b *base) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := common.ParseJSONBody(w, r, req); err != nil {
		b.Errors.Handle(w, r, err)
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		b.Errors.Handle(w, r, err)
		return false
	}
	return true
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "sessionID")
}
