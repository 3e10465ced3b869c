package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"coworking-admin/internal/domain/resource"
	"coworking-admin/internal/domain/schedule"
	reqdto "coworking-admin/internal/handler/dto/request"
	resdto "coworking-admin/internal/handler/dto/response"
	"coworking-admin/internal/handler/httperr"
	"coworking-admin/internal/pkg/errs"
	"coworking-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PanelHandler exposes one panel controller over HTTP. The desk and stand
// panels each get their own instance on their own route group.
type PanelHandler struct {
	panel *usecase.Panel
}

func NewPanelHandler(panel *usecase.Panel) *PanelHandler {
	return &PanelHandler{panel: panel}
}

// @Summary List resources
// @Description List resources with derived occupancy status
// @Tags panel
// @Produce json
// @Success 200 {object} resdto.ResourceListResponse
// @Failure 502 {object} httperr.Response
// @Router /desks [get]
func (h *PanelHandler) List(c *gin.Context) {
	if err := h.panel.RefreshResources(c.Request.Context()); err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	snap := h.panel.Snapshot()
	c.JSON(http.StatusOK, resdto.FromResources(snap.Resources))
}

// @Summary Catalog
// @Description Customers, rental plans and shifts for the rental form
// @Tags panel
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /desks/catalog [get]
func (h *PanelHandler) Catalog(c *gin.Context) {
	snap := h.panel.Snapshot()
	c.JSON(http.StatusOK, resdto.FromCatalog(snap.Customers, snap.Plans, snap.Shifts))
}

// @Summary Create resource
// @Tags panel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveResourceRequest true "Resource"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /desks [post]
func (h *PanelHandler) Create(c *gin.Context) {
	var req reqdto.SaveResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	h.panel.OpenRegister()
	h.panel.SetForm(usecase.ResourceForm{Number: req.Number, Name: req.TrimmedName()})
	if err := h.panel.SaveResource(c.Request.Context()); err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: h.lastNotification()})
}

// @Summary Update resource
// @Tags panel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource id"
// @Param request body reqdto.SaveResourceRequest true "Resource"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /desks/{id} [put]
func (h *PanelHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.SaveResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.panel.OpenEdit(id); err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	h.panel.SetForm(usecase.ResourceForm{Number: req.Number, Name: req.TrimmedName()})
	if err := h.panel.SaveResource(c.Request.Context()); err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: h.lastNotification()})
}

// @Summary Delete resource
// @Description Deletes a resource unless rental records reference it
// @Tags panel
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource id"
// @Success 200 {object} resdto.MessageResponse
// @Failure 409 {object} httperr.Response
// @Router /desks/{id} [delete]
func (h *PanelHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.panel.Delete(c.Request.Context(), id); err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: h.lastNotification()})
}

// @Summary Create rental
// @Description Books a resource for a customer under a plan
// @Tags panel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Rental"
// @Success 201 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /desks/rentals [post]
func (h *PanelHandler) CreateRental(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if req.ResourceID > 0 {
		if err := h.panel.OpenRental(req.ResourceID); err != nil {
			h.panel.CloseRental()
			h.abortWithMappedError(c, err)
			return
		}
	} else {
		h.panel.OpenRentalGeneral()
		h.panel.ChangeRentalResource(req.ResourceID)
	}
	h.panel.ChangeCustomer(req.CustomerID)
	h.panel.ChangePlan(req.PlanID)

	if req.StartDate != "" {
		if applied := h.panel.ChangeStartDate(req.StartDate); applied != schedule.NormalizeDisplay(req.StartDate) {
			h.panel.CloseRental()
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, errs.ErrInvalidStartDate, "Invalid start date", nil)
			return
		}
	}

	if err := h.panel.SaveRental(c.Request.Context()); err != nil {
		h.panel.CloseRental()
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: h.lastNotification()})
}

// @Summary Quote
// @Description Booking preview for a plan and start date
// @Tags panel
// @Produce json
// @Param planId query int true "Plan id"
// @Param startDate query string false "Start date dd/mm/yyyy, today when empty"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 422 {object} httperr.Response
// @Router /desks/quote [get]
func (h *PanelHandler) Quote(c *gin.Context) {
	planID, err := strconv.ParseInt(c.Query("planId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plan id", nil)
		return
	}

	quote, err := h.panel.Quote(planID, c.Query("startDate"))
	if err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Occupancy calendar
// @Description Month occupancy grid for one resource
// @Tags panel
// @Produce json
// @Param id path int true "Resource id"
// @Param month query string false "Month yyyy-mm, current month when empty"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 404 {object} httperr.Response
// @Router /desks/calendar/{id} [get]
func (h *PanelHandler) Calendar(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	month, err := parseMonthQuery(c.Query("month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}

	if err := h.panel.OpenCalendar(c.Request.Context(), id); err != nil {
		h.panel.CloseCalendar()
		h.abortWithMappedError(c, err)
		return
	}
	defer h.panel.CloseCalendar()

	if month != nil {
		h.navigateToMonth(*month)
	}

	c.JSON(http.StatusOK, resdto.FromCalendar(id, h.panel.CalendarMonthLabel(), h.panel.CalendarDays()))
}

// @Summary Notifications
// @Tags panel
// @Produce json
// @Success 200 {object} resdto.NotificationListResponse
// @Router /desks/notifications [get]
func (h *PanelHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NotificationListResponse{Notifications: h.panel.Notifications()})
}

// @Summary Dismiss notification
// @Tags panel
// @Param id path int true "Notification id"
// @Success 204
// @Router /desks/notifications/{id}/dismiss [post]
func (h *PanelHandler) DismissNotification(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.panel.DismissNotification(id)
	c.Status(http.StatusNoContent)
}

func (h *PanelHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid id"), "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func (h *PanelHandler) lastNotification() string {
	notifications := h.panel.Notifications()
	if len(notifications) == 0 {
		return ""
	}
	return notifications[len(notifications)-1].Message
}

// navigateToMonth walks the calendar modal month by month, the same way
// the prev/next buttons do.
func (h *PanelHandler) navigateToMonth(target schedule.YearMonth) {
	const maxSteps = 240

	for i := 0; i < maxSteps; i++ {
		current := h.panel.Snapshot().CalendarMonth
		if current == target {
			return
		}
		if target.First().After(current.First()) {
			h.panel.NextMonth()
		} else {
			h.panel.PrevMonth()
		}
	}
}

func parseMonthQuery(raw string) (*schedule.YearMonth, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return nil, err
	}
	ym := schedule.YearMonth{Year: t.Year(), Month: t.Month()}
	return &ym, nil
}

func (h *PanelHandler) abortWithMappedError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, h.panel.Messages().ResourceNotFound, nil)
	case errors.Is(err, errs.ErrResourceHasRentals):
		httperr.AbortWithError(c, http.StatusConflict, err, h.panel.Messages().HasRentals, nil)
	case errors.Is(err, errs.ErrCustomerNotFound):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cliente não encontrado", nil)
	case errors.Is(err, errs.ErrPlanNotFound):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Plano de aluguel não encontrado", nil)
	case errors.Is(err, errs.ErrInvalidStartDate):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid start date", nil)
	case errors.Is(err, resource.ErrInvalidNumber):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Resource number must be positive", nil)
	case errors.Is(err, errs.ErrBackendUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Backend unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
