package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	reservationRepo "github.com/inigoestebangomez/cool-mex-server/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	reservations []*domain.Reservation
	getErr       error
	deleteErr    error

	deletedID int64
}

func (r *stubRepo) GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.reservations, nil
}

func (r *stubRepo) Delete(ctx context.Context, id int64) error {
	r.deletedID = id
	return r.deleteErr
}

func TestListByDate(t *testing.T) {
	repo := &stubRepo{reservations: []*domain.Reservation{
		{ID: 1, Name: "Ana García", Time: "13:00", TableSize: domain.CategoryPair},
		{ID: 2, Name: "Luis Pérez", Time: "20:30", TableSize: domain.CategoryLargeGroup},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListByDate(context.Background(), time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "13:00", resp.Reservations[0].Time)
	assert.Equal(t, "7-8", resp.Reservations[1].TableSize)
}

func TestListByDate_ZeroDate(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	_, err := svc.ListByDate(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 42))
	assert.Equal(t, int64(42), repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &stubRepo{deleteErr: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete_InvalidID(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	assert.ErrorIs(t, svc.Delete(context.Background(), 0), ErrInvalidInput)
	assert.ErrorIs(t, svc.Delete(context.Background(), -5), ErrInvalidInput)
}
