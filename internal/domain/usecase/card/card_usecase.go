package card

import (
	"context"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
)

// maxNumberAttempts bounds how many generated numbers are tried before giving up
const maxNumberAttempts = 10

// CardUseCase implements the card facade for administrators and owners
type CardUseCase struct {
	uow          persistence.UnitOfWork
	policy       *entity.LifecyclePolicy
	numbers      NumberGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewCardUseCase creates a new CardUseCase
func NewCardUseCase(
	uow persistence.UnitOfWork,
	policy *entity.LifecyclePolicy,
	numbers NumberGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *CardUseCase {
	if metrics == nil {
		metrics = coreport.NoopMetrics{}
	}
	return &CardUseCase{
		uow:          uow,
		policy:       policy,
		numbers:      numbers,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

var _ usecase.CardUseCase = (*CardUseCase)(nil)

func (u *CardUseCase) toResponse(card *entity.Card) *entity.CardResponse {
	resp := entity.CardToResponse(card, u.policy)
	return &resp
}

func (u *CardUseCase) resolveUser(ctx context.Context, username string) (*entity.User, error) {
	return u.uow.GetUserRepository(ctx).GetByUsername(ctx, username)
}
