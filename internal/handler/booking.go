package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	price := decimal.Zero
	if req.BasePrice != nil {
		price = *req.BasePrice
	}

	input := domain.CreateBookingInput{
		CustomerID:  actor(c).ID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		BasePrice:   price,
		IsEmergency: req.IsEmergency,
		IsInstant:   req.IsInstant,
		ScheduledAt: req.ScheduledAt,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// ListBookings filters by status (comma separated), customer_id, worker_id and unassigned=1.
// Non-admins only see bookings they take part in, except the open jobs feed for workers.
func (h *Handler) ListBookings(c *ginext.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	filter := domain.BookingFilter{
		CustomerID: c.Query("customer_id"),
		WorkerID:   c.Query("worker_id"),
		Unassigned: c.Query("unassigned") == "1" || c.Query("unassigned") == "true",
		Limit:      limit,
	}
	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			st, err := domain.ParseBookingStatus(strings.TrimSpace(part))
			if err != nil {
				badRequest(c, "unknown status "+part)
				return
			}
			filter.Status = append(filter.Status, st)
		}
	}
	if a := actor(c); !a.IsAdmin() && !(a.Role.CanWork() && openJobsFeed(filter)) {
		filter.Participant = a.ID
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, h.bookingView(c, b))
	}

	c.JSON(http.StatusOK, resp)
}

// openJobsFeed matches unassigned=1 with statuses limited to pending and matched.
func openJobsFeed(f domain.BookingFilter) bool {
	if !f.Unassigned || len(f.Status) == 0 {
		return false
	}
	for _, st := range f.Status {
		if !domain.IsOpenStatus(st) {
			return false
		}
	}
	return true
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, ok := h.visibleBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.bookingView(c, booking))
}

func (h *Handler) BookingHistory(c *ginext.Context) {
	booking, ok := h.visibleBooking(c)
	if !ok {
		return
	}

	history, err := h.bookingService.History(c.Request.Context(), booking.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HistoryResponse, 0, len(history))
	for _, e := range history {
		resp = append(resp, dto.ToHistoryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AcceptBooking(c *ginext.Context) {
	booking, err := h.bookingService.Accept(c.Request.Context(), c.Param("id"), actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	if err := h.bookingService.Reject(c.Request.Context(), c.Param("id"), actor(c).ID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) StartBooking(c *ginext.Context) {
	var req dto.StartBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.Start(c.Request.Context(), c.Param("id"), actor(c), req.OTP)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	booking, err := h.bookingService.Complete(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	booking, err := h.bookingService.Cancel(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) visibleBooking(c *ginext.Context) (*domain.Booking, bool) {
	booking, err := h.bookingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}

	a := actor(c)
	openToWorker := a.Role.CanWork() && booking.Open()
	if !a.IsAdmin() && !openToWorker && booking.CustomerID != a.ID && !booking.AssignedTo(a.ID) &&
		!slices.Contains(booking.CandidateIDs, a.ID) {
		h.handleError(c, domain.ErrForbidden)
		return nil, false
	}
	return booking, true
}

// bookingView shows the start OTP to the booking's customer only.
func (h *Handler) bookingView(c *ginext.Context, b *domain.Booking) dto.BookingResponse {
	resp := dto.ToBookingResponse(b)
	if actor(c).ID == b.CustomerID {
		resp = resp.WithOTP(b)
	}
	return resp
}
