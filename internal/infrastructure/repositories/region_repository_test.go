package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibroximov13/FindCourse/domain"
)

func TestRegionRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t, &DBRegion{})
	repo := NewRegionRepository(db)
	ctx := context.Background()

	region := &domain.Region{Name: "Tashkent"}
	require.NoError(t, repo.Create(ctx, region))
	assert.NotZero(t, region.ID)

	found, err := repo.FindByID(ctx, region.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tashkent", found.Name)

	byName, err := repo.FindByName(ctx, "Tashkent")
	require.NoError(t, err)
	assert.Equal(t, region.ID, byName.ID)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestRegionRepository_DuplicateName(t *testing.T) {
	db := setupTestDB(t, &DBRegion{})
	repo := NewRegionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Region{Name: "Tashkent"}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Region{Name: "Tashkent"}), domain.ErrRegionExists)
}

func TestRegionRepository_List(t *testing.T) {
	db := setupTestDB(t, &DBRegion{})
	repo := NewRegionRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Tashkent", "Bukhara", "Samarkand"} {
		require.NoError(t, repo.Create(ctx, &domain.Region{Name: name}))
	}

	regions, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, regions, 3)
}

func TestRegionRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t, &DBRegion{})
	repo := NewRegionRepository(db)
	ctx := context.Background()

	region := &domain.Region{Name: "Tashkent"}
	require.NoError(t, repo.Create(ctx, region))

	region.Name = "Tashkent City"
	require.NoError(t, repo.Update(ctx, region))

	found, err := repo.FindByID(ctx, region.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tashkent City", found.Name)

	require.NoError(t, repo.Delete(ctx, region.ID))
	assert.ErrorIs(t, repo.Delete(ctx, region.ID), domain.ErrRegionNotFound)
}
