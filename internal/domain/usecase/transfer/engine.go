package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// historyLimit caps how many transfers ListTransfers returns
const historyLimit = 50

// Engine executes transfers between two cards of one owner. Balances, card updates and
// the transfer record are written in a single unit of work; rows are locked in ascending
// card id order so opposite transfers over the same pair cannot deadlock.
type Engine struct {
	uow          persistence.UnitOfWork
	validator    *Validator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	retry        RetryConfig
}

// NewEngine creates a new transfer engine
func NewEngine(
	uow persistence.UnitOfWork,
	policy *entity.LifecyclePolicy,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	retry RetryConfig,
) *Engine {
	if metrics == nil {
		metrics = coreport.NoopMetrics{}
	}
	return &Engine{
		uow:          uow,
		validator:    NewValidator(policy),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		retry:        retry,
	}
}

var _ usecase.TransferUseCase = (*Engine)(nil)

// Transfer moves req.Amount from req.FromCardID to req.ToCardID on behalf of username
func (e *Engine) Transfer(ctx context.Context, username string, req usecase.TransferRequest) (*entity.TransferResponse, error) {
	start := e.timeProvider.Now()

	resp, err := e.transfer(ctx, username, req)

	outcome := "success"
	if err != nil {
		outcome = strings.ToLower(string(errs.KindOf(err)))
	}
	e.metrics.ObserveTransfer(outcome, e.timeProvider.Since(start).Std().Seconds())

	if err != nil {
		wrapped := &errs.TransferError{
			Username:   username,
			FromCardID: req.FromCardID,
			ToCardID:   req.ToCardID,
			Amount:     req.Amount,
			Err:        err,
		}
		if errs.IsBusinessError(err) {
			e.logger.Info("Transfer rejected", wrapped.LogFields())
		} else {
			e.logger.Error("Transfer failed", wrapped.LogFields())
		}
		return nil, err
	}

	e.logger.Info("Transfer completed", map[string]any{
		"reference":    resp.Reference,
		"username":     username,
		"from_card_id": req.FromCardID,
		"to_card_id":   req.ToCardID,
		"amount":       resp.Amount,
	})
	return resp, nil
}

func (e *Engine) transfer(ctx context.Context, username string, req usecase.TransferRequest) (*entity.TransferResponse, error) {
	amount, err := e.validator.ValidateAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := e.validator.ValidateDistinctCards(req.FromCardID, req.ToCardID); err != nil {
		return nil, err
	}

	user, err := e.uow.GetUserRepository(ctx).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	var resp *entity.TransferResponse
	err = retryOnConflict(ctx, e.retry, e.timeProvider, e.logger, e.metrics, func() error {
		r, err := e.executeOnce(ctx, user.ID, req.FromCardID, req.ToCardID, amount)
		resp = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// executeOnce runs one attempt of the transfer inside its own unit of work
func (e *Engine) executeOnce(
	ctx context.Context,
	userID, fromCardID, toCardID uint64,
	amount decimal.Decimal,
) (*entity.TransferResponse, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
			e.logger.Error("Failed to rollback transfer", map[string]any{
				"error":        rbErr.Error(),
				"from_card_id": fromCardID,
				"to_card_id":   toCardID,
			})
		}
	}()

	cardRepo := e.uow.GetCardRepository(txCtx)

	locked, err := lockInOrder(txCtx, cardRepo, fromCardID, toCardID)
	if err != nil {
		return nil, err
	}
	from, to := locked[fromCardID], locked[toCardID]

	corrections, err := e.validator.ValidateCards(userID, from, to, amount)
	if err != nil {
		if len(corrections) == 0 {
			return nil, err
		}
		// Persist the expiry correction even though the transfer itself is rejected.
		for _, corrected := range corrections {
			if updErr := cardRepo.Update(txCtx, corrected); updErr != nil {
				return nil, updErr
			}
		}
		if commitErr := e.uow.Commit(txCtx); commitErr != nil {
			return nil, commitErr
		}
		committed = true
		for _, corrected := range corrections {
			e.metrics.IncCardStatusChange(string(locked[corrected.ID].Status), string(entity.CardStatusExpired))
			e.logger.Info("Card marked expired", map[string]any{"card_id": corrected.ID})
		}
		return nil, err
	}

	if err := from.Debit(amount, e.timeProvider); err != nil {
		return nil, err
	}
	if err := to.Credit(amount, e.timeProvider); err != nil {
		return nil, err
	}
	if err := cardRepo.Update(txCtx, from); err != nil {
		return nil, err
	}
	if err := cardRepo.Update(txCtx, to); err != nil {
		return nil, err
	}

	record := entity.NewTransfer(userID, from.ID, to.ID, amount, e.timeProvider)
	if err := e.uow.GetTransferRepository(txCtx).Create(txCtx, record); err != nil {
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	receipt := entity.NewTransferReceipt(record, from, to)
	return &receipt, nil
}

// lockInOrder loads both cards FOR UPDATE in ascending id order. A missing card is
// left out of the map so ownership validation reports it in request order.
func lockInOrder(ctx context.Context, repo persistence.CardRepository, a, b uint64) (map[uint64]*entity.Card, error) {
	first, second := a, b
	if second < first {
		first, second = second, first
	}

	locked := make(map[uint64]*entity.Card, 2)
	for _, id := range []uint64{first, second} {
		card, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrCardNotFound) {
				continue
			}
			return nil, fmt.Errorf("lock card %d: %w", id, err)
		}
		locked[id] = card
	}
	return locked, nil
}

// ListTransfers returns the latest transfers touching a card owned by username
func (e *Engine) ListTransfers(ctx context.Context, username string, cardID uint64) ([]entity.TransferResponse, error) {
	user, err := e.uow.GetUserRepository(ctx).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	card, err := e.uow.GetCardRepository(ctx).GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if err := e.validator.ValidateOwnership(card, user.ID); err != nil {
		return nil, err
	}

	transfers, err := e.uow.GetTransferRepository(ctx).ListByCard(ctx, cardID, historyLimit)
	if err != nil {
		return nil, err
	}

	result := make([]entity.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		result = append(result, t.ToResponse())
	}
	return result, nil
}
