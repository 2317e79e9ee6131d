package tickets

import (
	"net/http"

	"booking/common"
	"booking/middleware"
	"booking/views"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// knownFields are the posted keys that are not copied into Ticket.Extra.
var knownFields = map[string]bool{
	"id":                           true,
	"name":                         true,
	"nohp":                         true,
	middleware.MethodOverrideParam: true,
}

// Handler handles HTTP requests for tickets
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler
func NewHandler(service *Service) *Handler {
	return &Handler{svc: service}
}

// RegisterRoutes registers the handler routes. The static /add and /edit/
// segments take precedence over /:name in gin's router.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	tickets := api.Group("/tickets")
	{
		tickets.GET("", h.List)
		tickets.GET("/add", h.AddForm)
		tickets.POST("", h.Create)
		tickets.DELETE("", h.Delete)
		tickets.GET("/edit/:name", h.EditForm)
		tickets.PUT("", h.Update)
		tickets.GET("/:name", h.Detail)
	}
}

// List handles GET /tickets
func (h *Handler) List(c *gin.Context) {
	tickets, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.Send(c)(middleware.Response{Error: err})
		return
	}

	c.HTML(http.StatusOK, views.Tickets, listPage{
		Title:   TitleList,
		Tickets: tickets,
		Msg:     middleware.TakeFlash(c),
	})
}

// AddForm handles GET /tickets/add
func (h *Handler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.AddTicket, gin.H{
		"Title":  TitleAdd,
		"Ticket": TicketForm{},
	})
}

// Create handles POST /tickets
func (h *Handler) Create(c *gin.Context) {
	form, ok := h.bindTicketForm(c)
	if !ok {
		return
	}

	_, err := h.svc.Create(c.Request.Context(), form)
	if verr, isValidation := AsValidationError(err); isValidation {
		c.HTML(http.StatusOK, views.AddTicket, gin.H{
			"Title":  TitleAdd,
			"Errors": verr.Errors,
			"Ticket": form,
		})
		return
	}
	if err != nil {
		middleware.Send(c)(middleware.Response{Error: err})
		return
	}

	h.redirectWithFlash(c, MsgCreated)
}

// Delete handles DELETE /tickets
func (h *Handler) Delete(c *gin.Context) {
	var form DeleteForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		middleware.Send(c)(middleware.Response{Error: common.NewBadRequestError(MsgInvalidForm, err)})
		return
	}

	if _, err := h.svc.DeleteByName(c.Request.Context(), form.Name); err != nil {
		middleware.Send(c)(middleware.Response{Error: err})
		return
	}

	h.redirectWithFlash(c, MsgDeleted)
}

// EditForm handles GET /tickets/edit/:name
func (h *Handler) EditForm(c *gin.Context) {
	ticket, err := h.svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		middleware.Send(c)(middleware.Response{Error: err})
		return
	}

	c.HTML(http.StatusOK, views.EditTicket, gin.H{
		"Title":  TitleEdit,
		"Ticket": ticket,
	})
}

// Update handles PUT /tickets
func (h *Handler) Update(c *gin.Context) {
	form, ok := h.bindTicketForm(c)
	if !ok {
		return
	}

	err := h.svc.Update(c.Request.Context(), form)
	if verr, isValidation := AsValidationError(err); isValidation {
		c.HTML(http.StatusOK, views.EditTicket, gin.H{
			"Title":  TitleEdit,
			"Errors": verr.Errors,
			"Ticket": form,
		})
		return
	}
	if err != nil {
		middleware.Send(c)(middleware.Response{Error: err})
		return
	}

	h.redirectWithFlash(c, MsgUpdated)
}

// Detail handles GET /tickets/:name
func (h *Handler) Detail(c *gin.Context) {
	name := c.Param("name")
	if name == reservedNameAdd || name == reservedNameEdit {
		middleware.Send(c)(middleware.Response{Error: common.NewNotFoundError(MsgNotFound, ErrTicketNotFound)})
		return
	}

	ticket, err := h.svc.GetByName(c.Request.Context(), name)
	if err != nil {
		middleware.Send(c)(middleware.Response{Error: err})
		return
	}

	c.HTML(http.StatusOK, views.Detail, gin.H{
		"Title":  TitleDetail,
		"Ticket": ticket,
	})
}

// bindTicketForm binds the posted body and collects unmodeled fields into
// Extra. It writes a 400 response and returns false on a malformed body.
func (h *Handler) bindTicketForm(c *gin.Context) (TicketForm, bool) {
	var form TicketForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		middleware.Send(c)(middleware.Response{Error: common.NewBadRequestError(MsgInvalidForm, err)})
		return form, false
	}

	for key, values := range c.Request.PostForm {
		if knownFields[key] || len(values) == 0 {
			continue
		}
		if form.Extra == nil {
			form.Extra = make(map[string]any)
		}
		if len(values) == 1 {
			form.Extra[key] = values[0]
		} else {
			form.Extra[key] = values
		}
	}
	return form, true
}

func (h *Handler) redirectWithFlash(c *gin.Context, msg string) {
	if err := middleware.SetFlash(c, msg); err != nil {
		// flash is best-effort
		_ = c.Error(err)
	}
	c.Redirect(http.StatusFound, "/tickets")
}
