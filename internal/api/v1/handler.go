package v1

import (
	"errors"

	"github.com/fintrack/ledger-service/internal/api/v1/middleware"
	"github.com/fintrack/ledger-service/internal/api/validator"
	"github.com/fintrack/ledger-service/internal/constants"
	"github.com/fintrack/ledger-service/internal/metrics"
	"github.com/fintrack/ledger-service/internal/service"
	"github.com/fintrack/ledger-service/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	ledger     service.LedgerService
	sessions   *session.Resolver
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
}

func NewHandler(logger *zap.Logger, ledger service.LedgerService, sessions *session.Resolver,
	XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		ledger:     ledger,
		sessions:   sessions,
		XValidator: XValidator,
		metrics:    metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	var request CreateTransactionRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Warn("Invalid create transaction request",
			zap.Any("request", request),
			zap.String("body", string(c.Body())))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	sessionID, minted := h.sessions.Resolve(c)

	cmd := service.CreateTransactionCommand{
		Title:     request.Title,
		Amount:    request.Amount,
		Type:      request.Type,
		SessionID: sessionID,
	}

	result, err := h.ledger.CreateTransaction(c.UserContext(), cmd)
	if err != nil {
		h.recordOperationError("create", err)
		return err
	}

	if minted {
		h.sessions.SetCookie(c, sessionID)
		h.metrics.RecordSessionIssued()
	}

	h.metrics.RecordTransactionCreated(request.Type)

	h.logger.Info("Transaction created",
		zap.String("transactionID", result.TransactionID),
		zap.String("type", request.Type),
		zap.Int64("amount", request.Amount),
	)

	// SendStatus would write the status text into the empty body.
	return c.Status(fiber.StatusCreated).Send(nil)
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)

	transactions, err := h.ledger.ListTransactions(c.UserContext(), sessionID)
	if err != nil {
		h.recordOperationError("list", err)
		return err
	}

	return c.JSON(ListTransactionsResponse{Transactions: transactions})
}

func (h *Handler) GetTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		h.logger.Warn("Invalid transaction id", zap.String("id", id))
		return service.NewServiceError(constants.ErrCodeInvalidTransactionID, err)
	}

	transaction, err := h.ledger.GetTransaction(c.UserContext(), id, middleware.SessionID(c))
	if err != nil {
		h.recordOperationError("get", err)
		return err
	}

	return c.JSON(transaction)
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	summary, err := h.ledger.Summary(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		h.metrics.RecordSummaryRetrieval("error")
		h.recordOperationError("summary", err)
		return err
	}

	h.metrics.RecordSummaryRetrieval("success")
	return c.JSON(SummaryResponse{Total: summary.Total})
}

func (h *Handler) recordOperationError(operation string, err error) {
	var serviceErr service.Error
	if errors.As(err, &serviceErr) {
		h.metrics.RecordTransactionError(operation, serviceErr.Code)
		return
	}
	h.metrics.RecordTransactionError(operation, constants.ErrCodeOperationFailed)
}
