package http

import (
	"github.com/gin-gonic/gin"

	"todo-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a todo
// @Description Creates a todo from structured fields. Priority defaults to MEDIUM.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user ID"
// @Param       body      body   createReq true "Todo data"
// @Success     201 {object} todoItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTodoItemResp(output.Todo))
}

// CreateFromText godoc
// @Summary     Create a todo from natural language
// @Description Extracts title, due date, priority ("p:high", "priority:urgent") and labels ("#tag", "@ctx")
// @Description from free text and stores the result.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string             true "Caller user ID"
// @Param       body      body   naturalLanguageReq true "Free text"
// @Success     201 {object} createFromTextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/natural-language [POST]
func (h *handler) CreateFromText(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processNaturalLanguageReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.CreateFromText(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateFromTextResp(output))
}

// Preview godoc
// @Summary     Preview natural-language extraction
// @Description Runs the extractor on free text without storing anything.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string             true "Caller user ID"
// @Param       body      body   naturalLanguageReq true "Free text"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/natural-language/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, _, err := h.processNaturalLanguageReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.Parse(ctx, req.toParseInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// List godoc
// @Summary     List todos
// @Description Returns the caller's todos, newest first, with optional filters.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       search    query  string false "Case-insensitive match on title or description"
// @Param       completed query  bool   false "Filter by completion"
// @Param       tag       query  string false "Case-insensitive match on tags"
// @Param       priority  query  string false "LOW, MEDIUM, HIGH or URGENT"
// @Param       limit     query  int    false "Page size (default: 20, max: 100)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a todo
// @Tags        Todos
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Todo ID"
// @Success     200 {object} todoItemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTodoItemResp(output.Todo))
}

// Update godoc
// @Summary     Update a todo
// @Description Partial update: omitted fields keep their value.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user ID"
// @Param       id        path   string    true "Todo ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} todoItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTodoItemResp(output.Todo))
}

// ToggleCompletion godoc
// @Summary     Toggle todo completion
// @Tags        Todos
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Todo ID"
// @Success     200 {object} todoItemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id}/complete [PATCH]
func (h *handler) ToggleCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ToggleCompletion(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTodoItemResp(output.Todo))
}

// Delete godoc
// @Summary     Delete a todo
// @Tags        Todos
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Todo ID"
// @Success     204
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
