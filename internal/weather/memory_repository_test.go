package weather_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainaweather/ainaweather/internal/weather"
)

func TestMemoryRepository_UpsertCurrent_LastWriteWins(t *testing.T) {
	repo := weather.NewMemoryRepository()
	ctx := context.Background()

	first := *testSnapshot(time.Now())
	second := first
	second.Temperature = 25.0

	require.NoError(t, repo.UpsertCurrent(ctx, "tokyo", first))
	require.NoError(t, repo.UpsertCurrent(ctx, "tokyo", second))

	current, err := repo.ListCurrent(ctx)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, second, current["tokyo"])
}

func TestMemoryRepository_QueryHistory_WindowAndOrder(t *testing.T) {
	repo := weather.NewMemoryRepository()
	ctx := context.Background()
	now := time.Now()

	old := *testSnapshot(now.AddDate(0, 0, -10))
	mid := *testSnapshot(now.Add(-36 * time.Hour))
	recent := *testSnapshot(now.Add(-1 * time.Hour))

	// Append out of chronological order; the query sorts ascending.
	require.NoError(t, repo.AppendHistory(ctx, "tokyo", recent))
	require.NoError(t, repo.AppendHistory(ctx, "tokyo", old))
	require.NoError(t, repo.AppendHistory(ctx, "tokyo", mid))
	require.NoError(t, repo.AppendHistory(ctx, "osaka", mid))

	history, err := repo.QueryHistory(ctx, "tokyo", 3)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, mid, history[0])
	assert.Equal(t, recent, history[1])
}

func TestMemoryRepository_QueryHistory_EmptyWindow(t *testing.T) {
	repo := weather.NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AppendHistory(ctx, "tokyo", *testSnapshot(time.Now().Add(-time.Hour))))

	history, err := repo.QueryHistory(ctx, "tokyo", 0)
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = repo.QueryHistory(ctx, "nowhere", 3)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryRepository_DeleteCity(t *testing.T) {
	repo := weather.NewMemoryRepository()
	ctx := context.Background()
	snap := *testSnapshot(time.Now())

	require.NoError(t, repo.UpsertCurrent(ctx, "tokyo", snap))
	require.NoError(t, repo.AppendHistory(ctx, "tokyo", snap))
	require.NoError(t, repo.UpsertCurrent(ctx, "osaka", snap))
	require.NoError(t, repo.AppendHistory(ctx, "osaka", snap))

	require.NoError(t, repo.DeleteCity(ctx, "tokyo"))

	current, err := repo.ListCurrent(ctx)
	require.NoError(t, err)
	assert.NotContains(t, current, "tokyo")
	assert.Contains(t, current, "osaka")

	history, err := repo.QueryHistory(ctx, "tokyo", 3)
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = repo.QueryHistory(ctx, "osaka", 3)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
