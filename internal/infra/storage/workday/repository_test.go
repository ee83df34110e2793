package workday

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestEnsureDay(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`INSERT INTO workday \(work_date\) VALUES \(\$1\) ON CONFLICT \(work_date\) DO NOTHING`).
		WithArgs(testDate()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.EnsureDay(context.Background(), testDate())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimSlot(t *testing.T) {
	t.Run("claims empty cell", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`UPDATE workday SET second_app = \$1 WHERE work_date = \$2`).
			WithArgs("Анна", testDate(), "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ClaimSlot(context.Background(), testDate(), domain.SlotSecond, "Анна")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("occupied cell returns ErrSlotTaken", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`UPDATE workday SET second_app = \$1 WHERE work_date = \$2`).
			WithArgs("Анна", testDate(), "").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ClaimSlot(context.Background(), testDate(), domain.SlotSecond, "Анна")
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("rejects unknown column", func(t *testing.T) {
		repo, _ := newMockRepository(t)

		err := repo.ClaimSlot(context.Background(), testDate(), "sixth_app", "Анна")
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})
}

func TestClearSlotIfOccupant(t *testing.T) {
	t.Run("clears matching occupant", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`UPDATE workday SET third_app = \$1 WHERE work_date = \$2 AND third_app = \$3`).
			WithArgs(nil, testDate(), "manager").
			WillReturnResult(sqlmock.NewResult(0, 1))

		cleared, err := repo.ClearSlotIfOccupant(context.Background(), testDate(), domain.SlotThird, "manager")
		require.NoError(t, err)
		assert.True(t, cleared)
	})

	t.Run("keeps foreign occupant", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`UPDATE workday SET third_app = \$1 WHERE work_date = \$2 AND third_app = \$3`).
			WithArgs(nil, testDate(), "manager").
			WillReturnResult(sqlmock.NewResult(0, 0))

		cleared, err := repo.ClearSlotIfOccupant(context.Background(), testDate(), domain.SlotThird, "manager")
		require.NoError(t, err)
		assert.False(t, cleared)
	})
}

func TestClearSlot(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE workday SET first_app = \$1 WHERE work_date = \$2`).
		WithArgs(nil, testDate()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearSlot(context.Background(), testDate(), domain.SlotFirst)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	t.Run("maps cells to columns", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		rows := sqlmock.NewRows([]string{
			"work_date", "first_app", "second_app", "third_app", "fourth_app", "fifth_app",
		}).AddRow(testDate(), "Анна", nil, "", "manager", nil)

		mock.ExpectQuery(`SELECT work_date, first_app, second_app, third_app, fourth_app, fifth_app FROM workday WHERE work_date = \$1`).
			WithArgs(testDate()).
			WillReturnRows(rows)

		day, err := repo.Get(context.Background(), testDate())
		require.NoError(t, err)

		assert.True(t, day.IsTaken(domain.SlotFirst))
		assert.False(t, day.IsTaken(domain.SlotSecond))
		assert.False(t, day.IsTaken(domain.SlotThird))
		assert.True(t, day.IsTaken(domain.SlotFourth))
	})

	t.Run("missing row returns ErrDayNotFound", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT work_date, first_app, second_app, third_app, fourth_app, fifth_app FROM workday WHERE work_date = \$1`).
			WithArgs(testDate()).
			WillReturnRows(sqlmock.NewRows([]string{
				"work_date", "first_app", "second_app", "third_app", "fourth_app", "fifth_app",
			}))

		_, err := repo.Get(context.Background(), testDate())
		assert.ErrorIs(t, err, ErrDayNotFound)
	})
}
