package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	"github.com/inigoestebangomez/cool-mex-server/internal/queue"
	"github.com/inigoestebangomez/cool-mex-server/pkg/ptr"
	"github.com/inigoestebangomez/cool-mex-server/pkg/simpletxmanager"
	"github.com/inigoestebangomez/cool-mex-server/pkg/txmanager"
)

// notifyTimeout таймаут best-effort публикации события после admission
const notifyTimeout = 5 * time.Second

// UseCase use case создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	notifier        Notifier
	tablePlan       domain.TablePlan
	schedule        domain.ServiceSchedule
	storeTimeout    time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil, если брокер уведомлений выключен
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	notifier Notifier,
	tablePlan domain.TablePlan,
	schedule domain.ServiceSchedule,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		notifier:        notifier,
		tablePlan:       tablePlan,
		schedule:        schedule,
		storeTimeout:    storeTimeout,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет admission брони
// Подсчет занятых столов и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк корзины, поэтому конкурентные заявки
// не могут превысить вместимость категории
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: email=%s, date=%s, time=%s, guests=%d",
		req.Email, req.Date.Format(domain.DateFormat), req.Time, req.NumGuests)

	// 1. Нормализация и валидация входных данных
	// Email приводится к канонической форме до проверок и сохраняется таким
	req.Email = normalizeEmail(req.Email)
	if err := validateRequest(req, uc.schedule); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Выводим категорию стола из числа гостей
	category := uc.tablePlan.Classify(req.NumGuests)
	capacity := uc.tablePlan.Capacity(category)

	// 3. Обращения к хранилищу ограничены таймаутом, чтобы заявка не висела
	// на недоступной базе
	storeCtx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	var result *domain.Reservation

	// 4. Атомарный подсчет и вставка
	err := uc.txManager.DoSerializable(storeCtx, func(txCtx context.Context) error {
		// 4.1. Брони этой категории на эту дату, с блокировкой строк (FOR UPDATE)
		existing, err := uc.reservationRepo.GetByFilter(txCtx, domain.ReservationsFilter{
			Date:     req.Date,
			Category: ptr.Ptr(category),
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		// 4.2. Сколько столов категории уже занято на запрошенное время
		taken := 0
		for _, r := range existing {
			if r.Time == req.Time {
				taken++
			}
		}

		if taken >= capacity {
			uc.logger.Warn("CreateReservation: bucket full: date=%s, time=%s, category=%s, %d/%d",
				req.Date.Format(domain.DateFormat), req.Time, category, taken, capacity)
			return ErrNoAvailability
		}

		uc.logger.Info("CreateReservation: bucket has room: category=%s, %d/%d taken",
			category, taken, capacity)

		// 4.3. Сохраняем бронь с выведенной категорией
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Date:      req.Date,
			Time:      req.Time,
			Place:     req.Place,
			NumGuests: req.NumGuests,
			TableSize: category,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapStoreError(err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, category=%s",
		result.ID, result.TableSize)

	// 5. Best-effort уведомление после фиксации транзакции
	// Ответ клиенту не ждет публикацию, её ошибки только логируются
	uc.dispatchNotification(result)

	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		Email:     result.Email,
		Phone:     result.Phone,
		Date:      result.Date,
		Time:      result.Time,
		Place:     result.Place,
		NumGuests: result.NumGuests,
		TableSize: string(result.TableSize),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// mapStoreError приводит ошибки транзакции к таксономии usecase
// Таймаут и исчерпанные повторы сериализации ретраибельны для клиента:
// частичной вставки не произошло. Они проверяются первыми: ошибка
// репозитория несет таймаут в цепочке причин даже внутри обертки ErrInternal
func (uc *UseCase) mapStoreError(err error) error {
	switch {
	case errors.Is(err, ErrNoAvailability):
		return err
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, txmanager.ErrSerializationFailure),
		errors.Is(err, simpletxmanager.ErrSerializationFailure):
		uc.logger.Error("CreateReservation: store unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	case errors.Is(err, ErrInternal):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// dispatchNotification отправляет событие о принятой брони в фоне
func (uc *UseCase) dispatchNotification(res *domain.Reservation) {
	if uc.notifier == nil {
		return
	}

	event := queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		Name:          res.Name,
		Email:         res.Email,
		Phone:         res.Phone,
		Date:          res.Date.Format(domain.DateFormat),
		Time:          res.Time.String(),
		Place:         res.Place,
		NumGuests:     res.NumGuests,
		TableSize:     string(res.TableSize),
		ConfirmedAt:   uc.timeProvider.Now().UTC().Format(time.RFC3339),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.PublishReservationConfirmed(ctx, event); err != nil {
			uc.logger.Warn("CreateReservation: notification failed for reservation id=%d: %v",
				event.ReservationID, err)
		}
	}()
}
