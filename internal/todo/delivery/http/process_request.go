package http

import (
	"github.com/gin-gonic/gin"

	"todo-tracker/internal/middleware"
	"todo-tracker/internal/model"
	pkgErrors "todo-tracker/pkg/errors"
)

// scope returns the caller resolved by the Auth middleware.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	if sc, ok := c.Get(middleware.ScopeKey); ok {
		if s, ok := sc.(model.Scope); ok {
			return s, nil
		}
	}
	return model.Scope{}, pkgErrors.ErrUnauthorized
}

// processCreateReq binds and validates the create todo request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processNaturalLanguageReq binds and validates a free-text request body.
func (h *handler) processNaturalLanguageReq(c *gin.Context) (naturalLanguageReq, model.Scope, error) {
	var req naturalLanguageReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, model.Scope, error) {
	var req updateReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.ID = c.Param("id")
	return req, sc, req.validate()
}

// processIDReq resolves the caller and the :id URI param.
func (h *handler) processIDReq(c *gin.Context) (string, model.Scope, error) {
	sc, err := h.scope(c)
	if err != nil {
		return "", sc, err
	}
	id := c.Param("id")
	if id == "" {
		return "", sc, pkgErrors.ErrBadRequest
	}
	return id, sc, nil
}
