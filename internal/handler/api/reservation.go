package api

import (
	"net/http"
	"strconv"

	reqdto "shelter-scheduler/internal/handler/dto/request"
	resdto "shelter-scheduler/internal/handler/dto/response"
	"shelter-scheduler/internal/usecase/commands"
	"shelter-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader     = "Idempotency-Key"
	idempotentReplayedHeader = "Idempotent-Replayed"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Reserve an available slot. The reservation starts PENDING and the slot becomes RESERVED.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID that makes retries safe"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed by idempotency key"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	idempotencyKey := uuid.Nil
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			abortBadRequest(c, errInvalidKey, "Idempotency-Key must be a UUID")
			return
		}
		idempotencyKey = key
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput(), idempotencyKey)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+strconv.FormatInt(result.Reservation.ID, 10))
	if result.IsReplayed {
		c.Header(idempotentReplayedHeader, "true")
		c.JSON(http.StatusOK, resdto.FromReservationView(result.Reservation))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(result.Reservation))
}

// @Summary List reservations
// @Description Newest first. Verified volunteers only see their own reservations.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}

	var after *queries.Cursor
	if query.After != "" {
		after = &queries.Cursor{After: query.After}
	}
	views, next, err := h.q.List(c.Request.Context(), actor, after, query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationPage(views, next))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Update reservation status
// @Description Move a reservation through its workflow. Rejecting or cancelling releases the slot.
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), actor, id, *req.Status); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reservation overview
// @Description Without user_id: pending requests of every volunteer. With user_id: that volunteer's history.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Volunteer ID"
// @Success 200 {array} resdto.OverviewRowResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/overview [get]
func (h *ReservationHandler) Overview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.OverviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}
	rows, err := h.q.Overview(c.Request.Context(), actor, query.UserID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverviewRows(rows))
}

// @Summary Ongoing reservations
// @Description Pending, approved and in-progress reservations, earliest slot first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OverviewRowResponse
// @Failure 403 {object} httperr.Response
// @Router /reservations/ongoing [get]
func (h *ReservationHandler) Ongoing(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rows, err := h.q.Ongoing(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverviewRows(rows))
}

// @Summary Concluded reservations
// @Description Every reservation that is no longer ongoing, latest slot first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OverviewRowResponse
// @Failure 403 {object} httperr.Response
// @Router /reservations/concluded [get]
func (h *ReservationHandler) Concluded(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rows, err := h.q.Concluded(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverviewRows(rows))
}
