package get_availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	reservationRepo "github.com/inigoestebangomez/cool-mex-server/internal/infra/storage/reservation"
	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	reservations []*domain.Reservation
	err          error

	gotFilter domain.ReservationsFilter
}

func (r *stubRepo) GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	r.gotFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	return r.reservations, nil
}

func newTestUseCase(repo *stubRepo) *UseCase {
	return NewUseCase(repo, domain.DefaultTablePlan(), domain.DefaultServiceSchedule(), time.Second, nopLogger{})
}

func TestExecute_EmptyDay(t *testing.T) {
	repo := &stubRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		NumGuests: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.CategoryPair), resp.Category)
	assert.Equal(t, domain.DefaultServiceSchedule().Catalog, resp.AvailableTimes)

	// Фильтр ограничен датой и выведенной категорией
	require.NotNil(t, repo.gotFilter.Category)
	assert.Equal(t, domain.CategoryPair, *repo.gotFilter.Category)
}

func TestExecute_SaturatedSlotBlocksWindow(t *testing.T) {
	// Категория 7-8: единственный стол, одна бронь насыщает время
	repo := &stubRepo{reservations: []*domain.Reservation{
		{Time: "19:30", TableSize: domain.CategoryLargeGroup},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		NumGuests: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"21:30", "22:00",
	}, resp.AvailableTimes)
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &stubRepo{reservations: []*domain.Reservation{
		{Time: "13:00", TableSize: domain.CategoryLargeGroup},
	}}
	uc := newTestUseCase(repo)

	req := &Request{
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		NumGuests: 7,
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.AvailableTimes, second.AvailableTimes)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&stubRepo{})

	_, err := uc.Execute(context.Background(), &Request{NumGuests: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		NumGuests: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"bare deadline", context.DeadlineExceeded},
		// Репозиторий оборачивает ошибки драйвера, таймаут должен
		// распознаваться и сквозь эту обертку
		{"wrapped by repository", fmt.Errorf("%w: GetByFilter - execute query: %w",
			reservationRepo.ErrExecQuery, context.DeadlineExceeded)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&stubRepo{err: tt.err})

			_, err := uc.Execute(context.Background(), &Request{
				Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
				NumGuests: 2,
			})
			assert.ErrorIs(t, err, ErrStoreUnavailable)
		})
	}
}

func TestExecute_RepoError(t *testing.T) {
	repo := &stubRepo{err: assert.AnError}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		NumGuests: 2,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
