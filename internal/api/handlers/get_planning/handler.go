package get_planning

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayPlanner/internal/api/handlers"
	getPlanning "github.com/m04kA/SMC-StayPlanner/internal/usecase/get_planning"
)

const (
	msgInvalidStart  = "некорректная дата начала, ожидается YYYY-MM-DD"
	msgInvalidDays   = "некорректное количество дней"
	msgInvalidWindow = "некорректное окно планирования"
)

type Handler struct {
	useCase GetPlanningUseCase
	logger  Logger
}

func NewHandler(useCase GetPlanningUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/planning?start=2025-09-01&days=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		h.logger.Warn("GET /planning - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	days, err := handlers.QueryInt(r, "days", 0)
	if err != nil {
		h.logger.Warn("GET /planning - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getPlanning.Request{
		Start: start,
		Days:  days,
	})
	if err != nil {
		switch {
		case errors.Is(err, getPlanning.ErrInvalidWindow):
			h.logger.Warn("GET /planning - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /planning - Failed to build grid: start=%s, error=%v", start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /planning - Grid built: start=%s, rooms=%d, conflicts=%d",
		start, len(result.Grid.Rows), len(result.Grid.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromDomainGrid(&result.Grid))
}
