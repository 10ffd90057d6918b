package http

import (
	"strings"
	"time"

	"todo-tracker/internal/model"
	"todo-tracker/internal/naturallanguage"
	"todo-tracker/internal/todo"
	"todo-tracker/pkg/response"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	Tags        *string    `json:"tags"        binding:"omitempty,max=500"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return todo.ErrEmptyTitle
	}
	return validatePriority(r.Priority)
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    toPriority(r.Priority),
		Tags:        r.Tags,
	}
}

// ---

type naturalLanguageReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r naturalLanguageReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return todo.ErrEmptyText
	}
	return nil
}

func (r naturalLanguageReq) toCreateInput() todo.CreateFromTextInput {
	return todo.CreateFromTextInput{Text: r.Text}
}

func (r naturalLanguageReq) toParseInput() todo.ParseInput {
	return todo.ParseInput{Text: r.Text}
}

// ---

type listReq struct {
	Search    string `form:"search"`
	Completed *bool  `form:"completed"`
	Tag       string `form:"tag"`
	Priority  string `form:"priority"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) validate() error {
	if r.Priority == "" {
		return nil
	}
	return validatePriority(&r.Priority)
}

func (r listReq) toInput() todo.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	var priority model.Priority
	if p := toPriority(&r.Priority); p != nil {
		priority = *p
	}
	return todo.ListInput{
		Search:    strings.TrimSpace(r.Search),
		Completed: r.Completed,
		Tag:       strings.TrimSpace(r.Tag),
		Priority:  priority,
		Limit:     limit,
		Offset:    max(r.Offset, 0),
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"       binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	Tags        *string    `json:"tags"        binding:"omitempty,max=500"`
}

func (r updateReq) validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return todo.ErrEmptyTitle
	}
	return validatePriority(r.Priority)
}

func (r updateReq) toInput() todo.UpdateInput {
	return todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
		Priority:    toPriority(r.Priority),
		Tags:        r.Tags,
	}
}

func validatePriority(p *string) error {
	if p == nil {
		return nil
	}
	if _, ok := model.ParsePriority(*p); !ok {
		return todo.ErrInvalidPriority
	}
	return nil
}

// toPriority accepts any case; call after validatePriority.
func toPriority(p *string) *model.Priority {
	if p == nil || *p == "" {
		return nil
	}
	parsed, _ := model.ParsePriority(*p)
	return &parsed
}

// --- Response DTOs ---

type todoResp struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Completed   bool                `json:"completed"`
	DueDate     *response.Timestamp `json:"due_date" swaggertype:"string" format:"date-time"`
	Priority    string              `json:"priority"`
	Tags        string              `json:"tags"`
	CreatedAt   response.Timestamp  `json:"created_at" swaggertype:"string" format:"date-time"`
	UpdatedAt   response.Timestamp  `json:"updated_at" swaggertype:"string" format:"date-time"`
}

func newTodoResp(t todo.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     response.NewTimestamp(t.DueDate),
		Priority:    t.Priority.String(),
		Tags:        t.Tags,
		CreatedAt:   response.Timestamp(t.CreatedAt),
		UpdatedAt:   response.Timestamp(t.UpdatedAt),
	}
}

// extractionResp mirrors naturallanguage.Result; absent fields are null.
type extractionResp struct {
	Title    string              `json:"title"`
	DueDate  *response.Timestamp `json:"due_date" swaggertype:"string" format:"date-time"`
	Priority *string             `json:"priority"`
	Labels   *string             `json:"labels"`
}

func newExtractionResp(res naturallanguage.Result) extractionResp {
	resp := extractionResp{
		Title:   res.Title,
		DueDate: response.NewTimestamp(res.DueDate),
		Labels:  res.Labels,
	}
	if res.Priority != nil {
		p := res.Priority.String()
		resp.Priority = &p
	}
	return resp
}

type todoItemResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newTodoItemResp(t todo.Todo) todoItemResp {
	return todoItemResp{Todo: newTodoResp(t)}
}

type createFromTextResp struct {
	Todo       todoResp       `json:"todo"`
	Extraction extractionResp `json:"extraction"`
}

func (h *handler) newCreateFromTextResp(out todo.CreateFromTextOutput) createFromTextResp {
	return createFromTextResp{
		Todo:       newTodoResp(out.Todo),
		Extraction: newExtractionResp(out.Extraction),
	}
}

type previewResp struct {
	Extraction extractionResp `json:"extraction"`
}

func (h *handler) newPreviewResp(out todo.ParseOutput) previewResp {
	return previewResp{Extraction: newExtractionResp(out.Extraction)}
}

type listResp struct {
	Todos  []todoResp `json:"todos"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		todos[i] = newTodoResp(t)
	}
	return listResp{
		Todos:  todos,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
