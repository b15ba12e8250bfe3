package court_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelhub/padel-booking-backend/internal/court"
)

func TestCreateCourt(t *testing.T) {
	ctx := context.Background()
	s := court.NewService(court.NewMemoryRepository())

	c, err := s.Create(ctx, court.CreateRequest{Name: "  Court 1 ", Location: "Madrid", HourlyPrice: 24})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Court 1", c.Name, "name is trimmed")
	assert.True(t, c.IsActive, "new courts start active")

	t.Run("empty name", func(t *testing.T) {
		_, err := s.Create(ctx, court.CreateRequest{Name: "   "})
		assert.ErrorIs(t, err, court.ErrEmptyName)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := s.Create(ctx, court.CreateRequest{Name: "Court 2", HourlyPrice: -1})
		assert.ErrorIs(t, err, court.ErrInvalidPrice)
	})
}

func TestUpdateCourt(t *testing.T) {
	ctx := context.Background()
	s := court.NewService(court.NewMemoryRepository())

	c, err := s.Create(ctx, court.CreateRequest{Name: "Court 1", Location: "Madrid", HourlyPrice: 24})
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		price := 30.0
		got, err := s.Update(ctx, c.ID, court.UpdateRequest{HourlyPrice: &price})
		require.NoError(t, err)
		assert.Equal(t, 30.0, got.HourlyPrice)
		assert.Equal(t, "Court 1", got.Name)
		assert.Equal(t, "Madrid", got.Location)
	})

	t.Run("deactivate", func(t *testing.T) {
		inactive := false
		got, err := s.Update(ctx, c.ID, court.UpdateRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		blank := " "
		_, err := s.Update(ctx, c.ID, court.UpdateRequest{Name: &blank})
		assert.ErrorIs(t, err, court.ErrEmptyName)
	})

	t.Run("unknown court", func(t *testing.T) {
		name := "Court X"
		_, err := s.Update(ctx, 999, court.UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, court.ErrNotFound)
	})
}

func TestListCourts(t *testing.T) {
	ctx := context.Background()
	s := court.NewService(court.NewMemoryRepository())

	for _, name := range []string{"Court 1", "Court 2", "Court 3"} {
		_, err := s.Create(ctx, court.CreateRequest{Name: name, HourlyPrice: 20})
		require.NoError(t, err)
	}
	inactive := false
	_, err := s.Update(ctx, 3, court.UpdateRequest{IsActive: &inactive})
	require.NoError(t, err)

	t.Run("all courts", func(t *testing.T) {
		courts, total, err := s.List(ctx, court.Filter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, courts, 3)
	})

	t.Run("only active", func(t *testing.T) {
		courts, total, err := s.List(ctx, court.Filter{OnlyActive: true, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, courts, 2)
	})

	t.Run("pagination", func(t *testing.T) {
		courts, total, err := s.List(ctx, court.Filter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, courts, 1)
	})
}

func TestDeleteCourt(t *testing.T) {
	ctx := context.Background()
	s := court.NewService(court.NewMemoryRepository())

	c, err := s.Create(ctx, court.CreateRequest{Name: "Court 1", HourlyPrice: 20})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, c.ID))

	_, err = s.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, court.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, c.ID), court.ErrNotFound)
}
