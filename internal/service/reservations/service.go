package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	reservationRepo "github.com/inigoestebangomez/cool-mex-server/internal/infra/storage/reservation"
	"github.com/inigoestebangomez/cool-mex-server/internal/service/reservations/models"
)

// Service административный сервис для работы с бронями
// Здесь нет логики вместимости: только чтение и удаление для персонала
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ListByDate возвращает все брони на дату, по всем категориям,
// отсортированные по времени
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByDate: fetching reservations for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	list, err := s.reservationRepo.GetByFilter(ctx, domain.ReservationsFilter{Date: date})
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: successfully fetched %d reservations for date=%s",
		len(list), date.Format(domain.DateFormat))
	return models.FromDomainReservationList(list), nil
}

// Delete удаляет бронь по ID (административный путь)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}
