package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"shelter-scheduler/internal/domain/access"
	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/handler/httperr"
	"shelter-scheduler/internal/handler/middleware"
	"shelter-scheduler/internal/pkg/errs"
	"shelter-scheduler/internal/usecase/commands"
	"shelter-scheduler/internal/usecase/queries"
	"shelter-scheduler/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const stackLinesOnFailure = 10

var (
	errUnauthenticated = httperr.Sentinel("unauthenticated")
	errInvalidID       = httperr.Sentinel("invalid id")
	errInvalidKey      = httperr.Sentinel("invalid idempotency key")
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorTable is matched in order; the first sentinel found in the chain wins.
var errorTable = []errorMapping{
	{access.ErrForbidden, http.StatusForbidden, "Operation not permitted"},
	{errs.ErrNotReservationOwner, http.StatusForbidden, "Reservation belongs to another volunteer"},

	{errs.ErrSlotNotFound, http.StatusNotFound, "Slot not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrCatNotFound, http.StatusNotFound, "Cat not found"},

	{errs.ErrSlotNotAvailable, http.StatusConflict, "Slot is not available"},
	{errs.ErrDuplicateReservation, http.StatusConflict, "Reservation already exists for this slot"},
	{errs.ErrSlotHasActiveReservations, http.StatusConflict, "Slot has active reservations"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key was used with a different request"},
	{slot.ErrSlotReserved, http.StatusConflict, "Reserved slot cannot be rescheduled"},
	{reservation.ErrInvalidTransition, http.StatusConflict, "Status transition not allowed"},

	{errs.ErrVolunteerNotFound, http.StatusBadRequest, "Volunteer does not exist"},
	{errs.ErrInvalidRecurrence, http.StatusBadRequest, "Invalid recurrence rule"},
	{slot.ErrInvalidTimeWindow, http.StatusBadRequest, "Start time must be before end time"},
	{slot.ErrInvalidCatID, http.StatusBadRequest, "Invalid cat id"},
	{reservation.ErrInvalidStatus, http.StatusBadRequest, "Invalid reservation status"},
	{reservation.ErrInvalidSlotID, http.StatusBadRequest, "Invalid slot id"},
	{reservation.ErrInvalidVolunteerID, http.StatusBadRequest, "Invalid volunteer id"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
}

func statusFor(err error) (int, string) {
	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// abortWithUseCaseError answers with the mapped status. Unmapped errors are
// logged with their stack before the generic 500 goes out.
func abortWithUseCaseError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("unhandled use case error",
			"path", c.FullPath(),
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLinesOnFailure))
	}
	httperr.Abort(c, status, err, message)
}

func abortBadRequest(c *gin.Context, err error, message string) {
	httperr.Abort(c, http.StatusBadRequest, err, message)
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized")
		return shared.Actor{}, false
	}
	return actor, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortBadRequest(c, errInvalidID, "Invalid id")
		return 0, false
	}
	return id, true
}
