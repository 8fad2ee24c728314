package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/devenderkumar212003/cpu-scheduler/config"
	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
	"github.com/devenderkumar212003/cpu-scheduler/internal/requests"
	"github.com/devenderkumar212003/cpu-scheduler/internal/responses"
	"github.com/devenderkumar212003/cpu-scheduler/internal/schedulers"
)

// allPolicies labels failures of /all requests rejected before any run.
const allPolicies = "all"

type SchedulerHandler interface {
	Policies(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	metrics *Metrics

	// LogEvent receives engine trace lines when set.
	LogEvent func(msg string)
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, metrics *Metrics) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, metrics: metrics}
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	entries, err := s.catalog(0, nil)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(schedulers.PolicyInfo(entries))
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	key := ctx.Params("policy")
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return invalidRequest(ctx)
	}

	entries, err := s.catalog(request.TimeQuantum, request.LevelsTimeQuantum)
	if err != nil {
		s.metrics.Failed(key)
		return writeError(ctx, err)
	}
	entry, err := schedulers.Lookup(entries, key)
	if err != nil {
		return writeError(ctx, err)
	}

	log.Println("running", key, "algorithm on", len(request.Jobs), "jobs")
	result, err := schedulers.Run(request.CoreJobs(), entry, s.LogEvent)
	if err != nil {
		s.metrics.Failed(key)
		return writeError(ctx, err)
	}
	s.metrics.Observe(key, result)

	return ctx.JSON(schedulers.GenerateResponse(key, result))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return invalidRequest(ctx)
	}

	entries, err := s.catalog(request.TimeQuantum, request.LevelsTimeQuantum)
	if err != nil {
		s.metrics.Failed(allPolicies)
		return writeError(ctx, err)
	}

	log.Println("running", len(entries), "algorithms on", len(request.Jobs), "jobs")
	outcomes, err := schedulers.Compare(request.CoreJobs(), entries, s.LogEvent)
	if err != nil {
		var runErr *schedulers.RunError
		if errors.As(err, &runErr) {
			s.metrics.Failed(runErr.Key)
		} else {
			s.metrics.Failed(allPolicies)
		}
		return writeError(ctx, err)
	}

	response := make([]responses.ScheduleResponse, 0, len(outcomes))
	for _, o := range outcomes {
		s.metrics.Observe(o.Key, o.Result)
		response = append(response, schedulers.GenerateResponse(o.Key, o.Result))
	}
	return ctx.JSON(response)
}

// catalog builds the policy set, preferring request overrides over config.
func (s *SchedulerHandlerImpl) catalog(quantum int, levels []int) ([]schedulers.Entry, error) {
	if quantum == 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	if len(levels) == 0 {
		levels = s.config.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	return schedulers.Catalog(quantum, levels)
}

func invalidRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{
		Error: "invalid request format",
	})
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidProcess), errors.Is(err, schedulers.ErrInvalidQuantum):
		status = fiber.StatusBadRequest
	case errors.Is(err, schedulers.ErrUnknownPolicy):
		status = fiber.StatusNotFound
	default:
		log.Printf("simulation failed: %v", err)
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}
