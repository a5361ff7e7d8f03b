//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shelter-scheduler/internal/domain/access"
	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/domain/user"
	"shelter-scheduler/internal/handler/api"
	reqdto "shelter-scheduler/internal/handler/dto/request"
	resdto "shelter-scheduler/internal/handler/dto/response"
	"shelter-scheduler/internal/handler/middleware"
	"shelter-scheduler/internal/pkg/errs"
	"shelter-scheduler/internal/usecase/commands"
	"shelter-scheduler/internal/usecase/queries"
	"shelter-scheduler/internal/usecase/shared"
	"shelter-scheduler/tests/common/builder"
	"shelter-scheduler/tests/common/httptest"
	"shelter-scheduler/tests/common/testutil"
	commandsmock "shelter-scheduler/tests/mock/commands"
	queriesmock "shelter-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var caregiverActor = shared.Actor{UserID: 10, Role: user.RoleCaregiver}

// withActor stands in for RequireAuth.
func withActor(actor shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	}
}

type SlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSlotCommands
	mockQueries  *queriesmock.MockSlotQueries
}

func (s *SlotHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	h := api.NewSlotHandler(s.mockCommands, s.mockQueries)

	slots := s.router.Group("/slots", withActor(caregiverActor))
	slots.GET("", h.List)
	slots.POST("", h.Create)
	slots.POST("/recurring", h.CreateRecurring)
	slots.GET("/:id", h.Get)
	slots.PUT("/:id", h.Update)
	slots.DELETE("/:id", h.Delete)
	s.router.GET("/anonymous/slots", h.List)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestList() {
	views := []*queries.SlotView{
		builder.NewSlotBuilder().WithID(1).BuildView(),
		builder.NewSlotBuilder().WithID(2).AsReserved().BuildView(),
	}

	s.Run("success: renders slots in wire format", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), caregiverActor, gomock.Nil()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, "")

		var response []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("2025-03-02 10:00", response[0]["start_time"])
		s.Equal("2025-03-02 11:00", response[0]["end_time"])
		s.EqualValues(slot.StatusReserved, response[1]["status"])
	})

	s.Run("success: forwards cat filter", func() {
		catID := int64(7)
		s.mockQueries.EXPECT().List(gomock.Any(), caregiverActor, &catID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?cat_id=7", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: invalid cat filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?cat_id=0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: forbidden role", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("volunteer"), access.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Operation not permitted")
	})

	s.Run("error: 401 without actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/anonymous/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *SlotHandlerTestSuite) TestCreate() {
	b := builder.NewSlotBuilder().WithID(42)
	reqBody := b.BuildDTO()

	s.Run("success: 201 with the created slot", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().Create(gomock.Any(), caregiverActor, reqBody.ToInput()).
				Return(int64(42), nil),
			s.mockQueries.EXPECT().GetByID(gomock.Any(), caregiverActor, int64(42)).
				Return(b.BuildView(), nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", reqBody, "")

		var response resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/slots/42"})
		s.Equal(int64(42), response.ID)
		s.Equal(int(slot.StatusAvailable), response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing cat_id", testutil.Field("cat_id", nil)},
			{"zero cat_id", testutil.Field("cat_id", 0)},
			{"missing start_time", testutil.Field("start_time", nil)},
			{"missing end_time", testutil.Field("end_time", nil)},
			{"start_time in RFC3339", testutil.Field("start_time", "2025-03-02T10:00:00Z")},
			{"end_time without minutes", testutil.Field("end_time", "2025-03-02 11")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"forbidden", errs.Mark(errors.New("volunteer"), access.ErrForbidden), http.StatusForbidden, "Operation not permitted"},
			{"unknown cat", errs.ErrCatNotFound, http.StatusNotFound, "Cat not found"},
			{"inverted window", slot.ErrInvalidTimeWindow, http.StatusBadRequest, "Start time must be before end time"},
			{"database", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SlotHandlerTestSuite) TestCreateRecurring() {
	b := builder.NewSlotBuilder().WithWindow(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), 90*time.Minute)
	rule := "FREQ=WEEKLY;BYDAY=MO,WE;COUNT=4"
	reqBody := b.BuildRecurringDTO(rule)

	s.Run("success: 201 with ids", func() {
		want := commands.CreateRecurringSlotsInput{
			CatID:           7,
			RRule:           rule,
			StartTime:       b.StartTime,
			DurationMinutes: 90,
		}
		s.mockCommands.EXPECT().CreateRecurring(gomock.Any(), caregiverActor, want).
			Return([]int64{3, 4, 5, 6}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/recurring", reqBody, "")

		var response resdto.RecurringSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		if diff := cmp.Diff(resdto.RecurringSlotsResponse{IDs: []int64{3, 4, 5, 6}, Count: 4}, response); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"garbage rule", testutil.Field("rrule", "EVERY=SOMETIMES")},
			{"missing rule", testutil.Field("rrule", nil)},
			{"zero duration", testutil.Field("duration_minutes", 0)},
			{"duration over a day", testutil.Field("duration_minutes", 1441)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/recurring", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: unbounded rule is rejected by the usecase", func() {
		s.mockCommands.EXPECT().CreateRecurring(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("too many occurrences"), errs.ErrInvalidRecurrence)).Times(1)

		body := b.BuildRecurringDTO("FREQ=DAILY")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/recurring", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid recurrence rule")
	})
}

func (s *SlotHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), caregiverActor, int64(5)).
			Return(builder.NewSlotBuilder().WithID(5).BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/5", nil, "")

		var response resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(5), response.ID)
	})

	s.Run("error: invalid id", func() {
		for _, id := range []string{"abc", "0", "-3"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/"+id, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(9)).
			Return(nil, errs.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})
}

func (s *SlotHandlerTestSuite) TestUpdate() {
	s.Run("success: partial update", func() {
		catID := int64(8)
		s.mockCommands.EXPECT().Update(gomock.Any(), caregiverActor, int64(5), commands.UpdateSlotInput{CatID: &catID}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/slots/5", map[string]any{"cat_id": 8}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: reserved slot cannot be rescheduled", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
			Return(slot.ErrSlotReserved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/slots/5",
			map[string]any{"start_time": "2025-03-02 12:00", "end_time": "2025-03-02 13:00"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reserved slot cannot be rescheduled")
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), int64(6), gomock.Any()).
			Return(errs.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/slots/6", map[string]any{"cat_id": 8}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})
}

func (s *SlotHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), caregiverActor, int64(5)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/5", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: active reservations block deletion", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(5)).
			Return(errs.ErrSlotHasActiveReservations).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/5", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot has active reservations")
	})
}
