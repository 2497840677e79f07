package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

func TestInMemoryIntakeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert and GetDay round trip", func(t *testing.T) {
		repo := NewInMemoryIntakeRepository()

		require.NoError(t, repo.Upsert(ctx, domain.NewIntakeDay("u1", "2025-01-04", 200)))

		fetched, err := repo.GetDay(ctx, "u1", "2025-01-04")
		require.NoError(t, err)
		assert.Equal(t, 200.0, fetched.AmountML)

		// Mutating the returned copy must not leak into the store.
		fetched.AmountML = 9999
		again, err := repo.GetDay(ctx, "u1", "2025-01-04")
		require.NoError(t, err)
		assert.Equal(t, 200.0, again.AmountML)
	})

	t.Run("GetDay: missing day returns sentinel", func(t *testing.T) {
		repo := NewInMemoryIntakeRepository()

		_, err := repo.GetDay(ctx, "u1", "2025-01-04")
		assert.ErrorIs(t, err, domain.ErrIntakeNotFound)
	})

	t.Run("ListByUser: ascending day order", func(t *testing.T) {
		repo := NewInMemoryIntakeRepository()

		for _, d := range []domain.DateKey{"2025-01-03", "2025-01-01", "2025-01-02"} {
			require.NoError(t, repo.Upsert(ctx, domain.NewIntakeDay("u1", d, 100)))
		}

		list, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, domain.DateKey("2025-01-01"), list[0].Day)
		assert.Equal(t, domain.DateKey("2025-01-03"), list[2].Day)
	})

	t.Run("ListRange: inclusive bounds", func(t *testing.T) {
		repo := NewInMemoryIntakeRepository()

		for _, d := range []domain.DateKey{"2025-02-01", "2025-02-05", "2025-02-10"} {
			require.NoError(t, repo.Upsert(ctx, domain.NewIntakeDay("u1", d, 100)))
		}

		list, err := repo.ListRange(ctx, "u1", "2025-02-01", "2025-02-05")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("GetChanges: rows after checkpoint only", func(t *testing.T) {
		repo := NewInMemoryIntakeRepository()

		require.NoError(t, repo.Upsert(ctx, domain.NewIntakeDay("u1", "2025-03-01", 100)))

		checkpoint := time.Now().UTC()
		time.Sleep(5 * time.Millisecond)

		require.NoError(t, repo.Upsert(ctx, domain.NewIntakeDay("u1", "2025-03-02", 200)))

		changes, err := repo.GetChanges(ctx, "u1", checkpoint)
		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.Equal(t, domain.DateKey("2025-03-02"), changes[0].Day)
	})

	t.Run("DeleteAllByUser: wipes only that user", func(t *testing.T) {
		repo := NewInMemoryIntakeRepository()

		require.NoError(t, repo.Upsert(ctx, domain.NewIntakeDay("victim", "2025-04-01", 100)))
		require.NoError(t, repo.Upsert(ctx, domain.NewIntakeDay("bystander", "2025-04-01", 100)))

		require.NoError(t, repo.DeleteAllByUser(ctx, "victim"))

		victimRows, _ := repo.ListByUser(ctx, "victim")
		assert.Empty(t, victimRows)

		bystanderRows, _ := repo.ListByUser(ctx, "bystander")
		assert.Len(t, bystanderRows, 1)
	})

	t.Run("Upsert: validation failures never land", func(t *testing.T) {
		repo := NewInMemoryIntakeRepository()

		err := repo.Upsert(ctx, domain.NewIntakeDay("u1", "not-a-date", 100))
		assert.ErrorIs(t, err, domain.ErrInvalidDateKey)

		err = repo.Upsert(ctx, domain.NewIntakeDay("u1", "2025-01-04", -1))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		list, _ := repo.ListByUser(ctx, "u1")
		assert.Empty(t, list)
	})
}

func TestInMemorySettingsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert, Get, Delete lifecycle", func(t *testing.T) {
		repo := NewInMemorySettingsRepository()

		_, err := repo.Get(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrSettingsNotFound)

		settings := domain.DefaultSettings("u1")
		settings.DailyGoalML = 2500
		require.NoError(t, repo.Upsert(ctx, settings))

		fetched, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2500.0, fetched.DailyGoalML)

		require.NoError(t, repo.Delete(ctx, "u1"))
		assert.ErrorIs(t, repo.Delete(ctx, "u1"), domain.ErrSettingsNotFound)
	})
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create, fetch, duplicate email", func(t *testing.T) {
		repo := NewInMemoryUserRepository()

		user, err := domain.NewUser("u1", "mem@waterpic.app")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, user))

		byID, err := repo.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "mem@waterpic.app", byID.Email)

		byEmail, err := repo.GetByEmail(ctx, "mem@waterpic.app")
		require.NoError(t, err)
		assert.Equal(t, "u1", byEmail.ID)

		dupe, err := domain.NewUser("u2", "mem@waterpic.app")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dupe), domain.ErrEmailAlreadyExists)
	})
}

func TestInMemorySnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Save, Load, Delete lifecycle", func(t *testing.T) {
		store := NewInMemorySnapshotStore()

		_, err := store.Load(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

		snap := &domain.Snapshot{DailyGoalML: 3400}
		require.NoError(t, store.Save(ctx, "u1", snap))

		loaded, err := store.Load(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 3400.0, loaded.DailyGoalML)

		require.NoError(t, store.Delete(ctx, "u1"))
		_, err = store.Load(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})
}
