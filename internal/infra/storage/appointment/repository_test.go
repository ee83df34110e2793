package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	t.Run("creates appointment and fills server fields", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now)

		mock.ExpectQuery(`INSERT INTO appointments .* RETURNING id, created_at, updated_at`).
			WithArgs(int64(7), testDate(), "11:00:00", domain.StatusOpen, nil, nil, nil).
			WillReturnRows(rows)

		appt, err := repo.Create(context.Background(), &domain.Appointment{
			UserID:   7,
			WorkDate: testDate(),
			Slot:     "11:00",
			Status:   domain.StatusOpen,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(42), appt.ID)
		assert.Equal(t, now, appt.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation returns ErrSlotTaken", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`INSERT INTO appointments`).
			WillReturnError(&pq.Error{Code: pgUniqueViolation})

		_, err := repo.Create(context.Background(), &domain.Appointment{
			UserID:   7,
			WorkDate: testDate(),
			Slot:     "11:00",
			Status:   domain.StatusOpen,
		})
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("updates existing appointment", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(domain.StatusCanceled, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 42, domain.StatusCanceled)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing appointment returns ErrAppointmentNotFound", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(domain.StatusCanceled, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 99, domain.StatusCanceled)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestClose(t *testing.T) {
	t.Run("closes with paid amount", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`UPDATE appointments SET status = \$1, paid_amount = \$2, closed_at = NOW\(\), updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(domain.StatusClosed, 2500.0, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Close(context.Background(), 42, 2500)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing appointment returns ErrAppointmentNotFound", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`UPDATE appointments SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Close(context.Background(), 99, 2500)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("missing row returns ErrAppointmentNotFound", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT .* FROM appointments WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(appointmentColumns))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("scans full row", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(appointmentColumns).
			AddRow(int64(42), int64(7), testDate(), "11:00", "open",
				"позолота", nil, nil, nil, nil, now, now)

		mock.ExpectQuery(`SELECT .* FROM appointments WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		appt, err := repo.GetByID(context.Background(), 42)
		require.NoError(t, err)

		assert.Equal(t, int64(42), appt.ID)
		assert.Equal(t, int64(7), appt.UserID)
		assert.Equal(t, domain.StatusOpen, appt.Status)
		require.NotNil(t, appt.Notes)
		assert.Equal(t, "позолота", *appt.Notes)
		assert.Nil(t, appt.PaidAmount)
	})
}
