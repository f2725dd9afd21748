package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gymkeeper/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewAdminUseCase,
		NewMemberUseCase,
		NewTrainerUseCase,
		NewPaymentTracker,
		newCycleSettings,
		func() Clock { return SystemClock{} },
		func(t *PaymentTracker) CycleResetter { return t },
	),
)

func newCycleSettings(cfg *config.Config) CycleSettings {
	return CycleSettings{Location: cfg.Location, IncludeYear: cfg.CycleIncludeYear}
}
