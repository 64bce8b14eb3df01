package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	"github.com/inigoestebangomez/cool-mex-server/pkg/ptr"
)

// UseCase use case получения доступных слотов для брони
type UseCase struct {
	reservationRepo ReservationRepository
	tablePlan       domain.TablePlan
	schedule        domain.ServiceSchedule
	storeTimeout    time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tablePlan domain.TablePlan,
	schedule domain.ServiceSchedule,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tablePlan:       tablePlan,
		schedule:        schedule,
		storeTimeout:    storeTimeout,
		logger:          logger,
	}
}

// Execute вычисляет доступные слоты каталога для числа гостей на дату
// Чтение не пишет в хранилище: повторный запрос без новых броней возвращает
// тот же результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, guests=%d",
		req.Date.Format(domain.DateFormat), req.NumGuests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Выводим категорию стола из числа гостей
	category := uc.tablePlan.Classify(req.NumGuests)
	capacity := uc.tablePlan.Capacity(category)

	// 3. Брони этой категории на эту дату
	storeCtx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	reservations, err := uc.reservationRepo.GetByFilter(storeCtx, domain.ReservationsFilter{
		Date:     req.Date,
		Category: ptr.Ptr(category),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			uc.logger.Error("GetAvailability: store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Каталог минус заблокированные слоты
	times, err := availableTimes(uc.schedule, reservations, capacity)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to compute available times: %v", err)
		return nil, fmt.Errorf("%w: failed to compute available times: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: %d of %d slots available for category=%s, date=%s",
		len(times), len(uc.schedule.Catalog), category, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		NumGuests:      req.NumGuests,
		Category:       string(category),
		AvailableTimes: times,
	}, nil
}
