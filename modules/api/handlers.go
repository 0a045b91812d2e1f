package api

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/example/modular-calculator-demo/modules/cache"
	"github.com/example/modular-calculator-demo/modules/converter"
	"github.com/example/modular-calculator-demo/modules/history"
	"github.com/example/modular-calculator-demo/modules/jackpot"
	"github.com/example/modular-calculator-demo/modules/programmer"
	"github.com/example/modular-calculator-demo/modules/scientific"
	"github.com/example/modular-calculator-demo/modules/standard"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	scientificContainer mono.ServiceContainer
	standardContainer   mono.ServiceContainer
	programmerContainer mono.ServiceContainer
	converterContainer  mono.ServiceContainer
	jackpotContainer    mono.ServiceContainer
	historyAdapter      history.HistoryPort
	resultCache         *cache.Cache
}

// EvaluateScientific handles scientific function evaluation.
func (h *Handlers) EvaluateScientific(c *fiber.Ctx) error {
	var req scientific.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Function == "" {
		return badRequest(c, "Function is required")
	}

	var resp scientific.EvaluateResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.scientificContainer,
		"evaluate",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return internalError(c, err)
	}

	if resp.Error != "" {
		return unprocessable(c, resp.Error)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// EvaluateStandard handles arithmetic expression evaluation.
func (h *Handlers) EvaluateStandard(c *fiber.Ctx) error {
	var req standard.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Expression == "" {
		return badRequest(c, "Expression is required")
	}

	var resp standard.EvaluateResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.standardContainer,
		"evaluate",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return internalError(c, err)
	}

	if resp.Error != "" {
		return unprocessable(c, resp.Error)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// ConvertBase handles integer base conversion.
func (h *Handlers) ConvertBase(c *fiber.Ctx) error {
	var req programmer.ConvertBaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Value == "" || req.To == "" {
		return badRequest(c, "Value and target base are required")
	}

	var resp programmer.ConvertBaseResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.programmerContainer,
		"convert-base",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return internalError(c, err)
	}

	if resp.Error != "" {
		return unprocessable(c, resp.Error)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Bitwise handles bitwise operations on integers.
func (h *Handlers) Bitwise(c *fiber.Ctx) error {
	var req programmer.BitwiseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Op == "" || req.A == "" {
		return badRequest(c, "Operation and operand are required")
	}

	var resp programmer.BitwiseResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.programmerContainer,
		"bitwise",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return internalError(c, err)
	}

	if resp.Error != "" {
		return unprocessable(c, resp.Error)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Convert handles unit conversion. Results are cached when a cache is
// configured, keyed by the full conversion request.
func (h *Handlers) Convert(c *fiber.Ctx) error {
	var req converter.ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Category == "" || req.From == "" || req.To == "" {
		return badRequest(c, "Category, from and to are required")
	}

	var resp converter.ConvertResponse
	call := func() (interface{}, error) {
		var out converter.ConvertResponse
		if err := helper.CallRequestReplyService(
			c.UserContext(),
			h.converterContainer,
			"convert",
			json.Marshal,
			json.Unmarshal,
			&req,
			&out,
		); err != nil {
			return nil, err
		}
		return out, nil
	}

	if h.resultCache != nil {
		key := fmt.Sprintf("convert:%s:%s:%s:%s",
			req.Category, req.From, req.To,
			strconv.FormatFloat(req.Value, 'g', -1, 64))
		if err := h.resultCache.GetOrCompute(c.UserContext(), key, &resp, call); err != nil {
			return internalError(c, err)
		}
	} else {
		out, err := call()
		if err != nil {
			return internalError(c, err)
		}
		resp = out.(converter.ConvertResponse)
	}

	if resp.Error != "" {
		return unprocessable(c, resp.Error)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Categories returns the unit conversion catalog.
func (h *Handlers) Categories(c *fiber.Ctx) error {
	req := converter.CategoriesRequest{}
	var resp converter.CategoriesResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.converterContainer,
		"categories",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// ListHistory returns recent calculations, newest first.
func (h *Handlers) ListHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", history.DefaultListLimit)
	if limit <= 0 {
		return badRequest(c, "Limit must be positive")
	}

	records, total, err := h.historyAdapter.List(c.UserContext(), limit)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(history.ListResponse{
		Records: records,
		Total:   total,
	})
}

// ClearHistory wipes the calculation log.
func (h *Handlers) ClearHistory(c *fiber.Ctx) error {
	removed, err := h.historyAdapter.Clear(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(history.ClearResponse{Removed: removed})
}

// StartSession opens a new jackpot session.
func (h *Handlers) StartSession(c *fiber.Ctx) error {
	var req jackpot.StartRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var resp jackpot.StartResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.jackpotContainer,
		"start",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession fetches a jackpot session by ID.
func (h *Handlers) GetSession(c *fiber.Ctx) error {
	req := jackpot.GetSessionRequest{SessionID: c.Params("id")}

	var resp jackpot.GetSessionResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.jackpotContainer,
		"get-session",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return internalError(c, err)
	}

	if resp.Error != "" {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: resp.Error,
		})
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Play plays one jackpot round.
func (h *Handlers) Play(c *fiber.Ctx) error {
	var req jackpot.PlayRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.SessionID = c.Params("id")

	var resp jackpot.PlayResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.jackpotContainer,
		"play",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return internalError(c, err)
	}

	if resp.Error != "" {
		return unprocessable(c, resp.Error)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// CacheStats reports cache hit/miss statistics.
func (h *Handlers) CacheStats(c *fiber.Ctx) error {
	if h.resultCache == nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Cache is not enabled",
		})
	}
	return c.Status(fiber.StatusOK).JSON(h.resultCache.Snapshot())
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

func unprocessable(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Error:   "calculation_error",
		Message: message,
	})
}

func internalError(c *fiber.Ctx, err error) error {
	log.Printf("[api] Internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
