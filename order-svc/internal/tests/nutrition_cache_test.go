package tests

import (
	"context"
	"testing"
	"time"

	"foodfriend/catalog"
	"foodfriend/order-svc/internal/service"
	"foodfriend/order-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCachedNutrition(t *testing.T) (*service.NutritionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log, _ := test.NewNullLogger()
	return service.NewNutritionService(storage.NewRedisCache(client, time.Hour), log), mr
}

func TestNutritionService_CachedReportsFollowFacts(t *testing.T) {
	tests := []struct {
		name     string
		first    []catalog.Portion
		second   []catalog.Portion
		calories float64
	}{
		{
			name:     "lowercase_name_does_not_poison_known_dish",
			first:    []catalog.Portion{{Name: "tacos", Quantity: 2}},
			second:   []catalog.Portion{{Name: "Tacos", Quantity: 2}},
			calories: 1040,
		},
		{
			name:     "known_dish_does_not_leak_to_lowercase",
			first:    []catalog.Portion{{Name: "Tacos", Quantity: 2}},
			second:   []catalog.Portion{{Name: "tacos", Quantity: 2}},
			calories: 1000,
		},
		{
			name:     "separator_in_name",
			first:    []catalog.Portion{{Name: "Tacos=2&Greek Salad", Quantity: 1}},
			second:   []catalog.Portion{{Name: "Tacos", Quantity: 2}, {Name: "Greek Salad", Quantity: 1}},
			calories: 1320,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, mr := setupCachedNutrition(t)
			ctx := context.Background()

			_, err := svc.Generate(ctx, testCase.first)
			require.NoError(t, err)

			report, err := svc.Generate(ctx, testCase.second)
			require.NoError(t, err)
			require.NotNil(t, report.Totals)
			assert.Equal(t, testCase.calories, report.Totals.Calories)
			assert.Len(t, mr.Keys(), 2)
		})
	}
}

func TestNutritionService_CacheHit(t *testing.T) {
	svc, mr := setupCachedNutrition(t)
	ctx := context.Background()
	portions := []catalog.Portion{{Name: "Tacos", Quantity: 2}}

	first, err := svc.Generate(ctx, portions)
	require.NoError(t, err)
	second, err := svc.Generate(ctx, portions)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"nutrition:Tacos=2"}, mr.Keys())
	assert.Equal(t, catalog.HighProteinTip, second.HealthTip)
}
