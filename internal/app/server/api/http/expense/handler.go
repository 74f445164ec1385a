package expense

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api/http/middleware/auth"
	"safetrip/internal/app/server/api/http/response"
	"safetrip/internal/domain/expense"
)

// Handler serves the caller's expenses. Its middleware chain must include
// the bearer auth middleware.
type Handler struct {
	service    expense.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service expense.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.summaryOp(), h.summary)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	list, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, h.fail("list expenses", err)
	}

	payload := make([]ExpensePayload, 0, len(list))
	for _, e := range list {
		payload = append(payload, toPayload(e))
	}
	return &listOutput{Body: ListResponse{Status: response.StatusSuccess, Expenses: payload}}, nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*addOutput, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	e, err := h.service.Add(ctx, userID, expense.AddRequest{
		Title:    input.Body.Title,
		Category: expense.Category(input.Body.Category),
		Amount:   input.Body.Amount.String(),
		Currency: input.Body.Currency,
		SpentOn:  input.Body.SpentOn,
	})
	if err != nil {
		return nil, h.fail("add expense", err)
	}

	return &addOutput{Body: ExpenseResponse{
		Status:  response.StatusSuccess,
		Message: "Expense added successfully",
		Expense: toPayload(e),
	}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.fail("delete expense", err)
	}
	return &deleteOutput{Body: MessageResponse{Status: response.StatusSuccess, Message: "Expense deleted successfully"}}, nil
}

func (h *Handler) summary(ctx context.Context, _ *summaryInput) (*summaryOutput, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := h.service.Summary(ctx, userID)
	if err != nil {
		return nil, h.fail("summarize expenses", err)
	}

	payload := make([]SummaryPayload, 0, len(summaries))
	for _, s := range summaries {
		payload = append(payload, toSummaryPayload(s))
	}
	return &summaryOutput{Body: SummaryResponse{Status: response.StatusSuccess, Summaries: payload}}, nil
}

func (h *Handler) userID(ctx context.Context) (int, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return 0, huma.Error401Unauthorized(response.MsgUnauthorized)
	}
	return userID, nil
}

func (h *Handler) fail(op string, err error) error {
	switch {
	case errors.Is(err, expense.ErrNotFound):
		return response.NotFound(err)
	case errors.Is(err, expense.ErrInvalidInput),
		errors.Is(err, expense.ErrInvalidCategory),
		errors.Is(err, expense.ErrInvalidAmount):
		return response.BadRequest(err)
	default:
		h.log.Error(op, "error", err)
		return huma.Error500InternalServerError(response.MsgInternal)
	}
}
