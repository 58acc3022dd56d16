package api

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"os-scheduling-simulator/config"
	"os-scheduling-simulator/internal/core"
	"os-scheduling-simulator/internal/report"
	"os-scheduling-simulator/internal/requests"
	"os-scheduling-simulator/internal/responses"
	"os-scheduling-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Report(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config           *config.SchedulerConfig
	defaultAlgorithm schedulers.Algorithm
	limits           requests.Limits
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) (*SchedulerHandlerImpl, error) {
	algorithm, err := schedulers.ParseAlgorithm(config.DefaultAlgorithm)
	if err != nil {
		return nil, err
	}
	return &SchedulerHandlerImpl{
		config:           config,
		defaultAlgorithm: algorithm,
		limits: requests.Limits{
			MaxBurstTotal: config.MaxBurstTotal,
			MaxSlices:     config.MaxSlices,
		},
	}, nil
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

// Schedule runs the algorithm named in the body, or the configured default.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return reject(ctx, err)
	}
	algorithm, err := request.ResolveAlgorithm(s.defaultAlgorithm)
	if err != nil {
		return reject(ctx, err)
	}
	return s.respond(ctx, algorithm, request)
}

// AllAlgorithms runs every policy on the same process set.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return reject(ctx, err)
	}
	set, err := request.ProcessSet()
	if err != nil {
		return reject(ctx, err)
	}
	options := request.Options(s.config.RoundRobinTimeQuantum)
	for _, algorithm := range schedulers.Algorithms() {
		if err := s.limits.Check(set, algorithm, options); err != nil {
			return reject(ctx, err)
		}
	}

	runId := uuid.NewString()
	results := make([]responses.ScheduleResponse, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		result, err := schedulers.Schedule(algorithm, set, options)
		if err != nil {
			return reject(ctx, err)
		}
		results = append(results, responses.FromResult(runId, result))
	}

	log.Println("run:", runId, "compared all algorithms for", set.Len(), "processes")
	return ctx.JSON(responses.CompareResponse{RunId: runId, Results: results})
}

// Report returns the plain text report for the requested algorithm.
func (s *SchedulerHandlerImpl) Report(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return reject(ctx, err)
	}
	algorithm, err := request.ResolveAlgorithm(s.defaultAlgorithm)
	if err != nil {
		return reject(ctx, err)
	}
	result, err := s.compute(algorithm, request)
	if err != nil {
		return reject(ctx, err)
	}

	ctx.Type("txt", "utf-8")
	return ctx.SendString(report.Full(result))
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	algorithms := make([]fiber.Map, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		algorithms = append(algorithms, fiber.Map{
			"name":  algorithm.String(),
			"title": algorithm.Title(),
		})
	}
	return ctx.JSON(fiber.Map{
		"algorithms":                  algorithms,
		"default_algorithm":           s.defaultAlgorithm.String(),
		"default_round_robin_quantum": s.config.RoundRobinTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return reject(ctx, err)
	}
	return s.respond(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, algorithm schedulers.Algorithm, request requests.ScheduleRequest) error {
	result, err := s.compute(algorithm, request)
	if err != nil {
		return reject(ctx, err)
	}

	response := responses.FromResult(uuid.NewString(), result)
	log.Println("run:", response.RunId, "algorithm:", algorithm, "processes:", len(result.Processes))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) compute(algorithm schedulers.Algorithm, request requests.ScheduleRequest) (schedulers.Result, error) {
	set, err := request.ProcessSet()
	if err != nil {
		return schedulers.Result{}, err
	}
	options := request.Options(s.config.RoundRobinTimeQuantum)
	if err := s.limits.Check(set, algorithm, options); err != nil {
		return schedulers.Result{}, err
	}
	return schedulers.Schedule(algorithm, set, options)
}

func parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field, _, _ := strings.Cut(typeErr.Field, ".")
			return request, core.Invalid(field, "expected %s, got %s", typeErr.Type, typeErr.Value)
		}
		return request, core.Invalid("body", "invalid request format: %v", err)
	}
	return request, nil
}

func reject(ctx *fiber.Ctx, err error) error {
	log.Println("rejected request:", err)

	body := fiber.Map{"error": err.Error()}
	var validationErr *core.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body["field"] = validationErr.Field
		return ctx.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, core.ErrConfiguration):
		return ctx.Status(fiber.StatusBadRequest).JSON(body)
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
