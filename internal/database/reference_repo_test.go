package database

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/data"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/fractal-rotation-bot/internal/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceStore_SaveAndLoad(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()

	original, err := refdata.NewJSONRepo(data.Files).Load(ctx)
	require.NoError(t, err)

	store := NewReferenceStore(db)
	require.NoError(t, store.Save(ctx, original), "Failed to save reference data")

	loaded, err := store.Load(ctx)
	require.NoError(t, err, "Failed to load reference data")

	assert.Equal(t, original.DailyRotation, loaded.DailyRotation)
	assert.Equal(t, original.Fractals, loaded.Fractals)
	assert.Equal(t, original.Instabilities, loaded.Instabilities)
	assert.Equal(t, original.InstabilityRotation, loaded.InstabilityRotation)
}

func TestReferenceStore_SaveReplaces(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	store := NewReferenceStore(db)

	original, err := refdata.NewJSONRepo(data.Files).Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, original))

	smaller := singleFractalReference()
	require.NoError(t, store.Save(ctx, smaller), "Second save should replace the first")

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Fractals, 1)
	assert.Equal(t, smaller.DailyRotation, loaded.DailyRotation)
}

func TestReferenceStore_SaveAndLoadEmptySlots(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ref *entity.ReferenceData)
	}{
		{
			name: "Should keep an empty middle daily slot",
			mutate: func(ref *entity.ReferenceData) {
				ref.DailyRotation[7] = []string{}
			},
		},
		{
			name: "Should keep an empty trailing daily slot",
			mutate: func(ref *entity.ReferenceData) {
				ref.DailyRotation[domain.RotationLength-1] = []string{}
			},
		},
		{
			name: "Should keep an empty trailing instability slot",
			mutate: func(ref *entity.ReferenceData) {
				ref.InstabilityRotation["98"][domain.RotationLength-1] = []string{}
			},
		},
		{
			name: "Should keep a scale whose slots are all empty",
			mutate: func(ref *entity.ReferenceData) {
				slots := make([][]string, domain.RotationLength)
				for i := range slots {
					slots[i] = []string{}
				}
				ref.InstabilityRotation["98"] = slots
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := SetupTestDB(t)
			defer CleanupTestDB(t, db)

			ctx := context.Background()
			store := NewReferenceStore(db)

			original := singleFractalReference()
			tt.mutate(original)
			require.NoError(t, store.Save(ctx, original), "Failed to save reference data")

			loaded, err := store.Load(ctx)
			require.NoError(t, err, "Failed to load reference data")

			assert.Equal(t, original.DailyRotation, loaded.DailyRotation)
			require.Contains(t, loaded.InstabilityRotation, "98")
			assert.Equal(t, original.InstabilityRotation, loaded.InstabilityRotation)
		})
	}
}

func TestReferenceStore_LoadEmpty(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	_, err := NewReferenceStore(db).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDataConsistency), "an unseeded store has no fractals")
}

func TestReferenceStore_SaveRejectsInconsistentData(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ref := singleFractalReference()
	ref.DailyRotation[0] = []string{"lonely_tower"}

	err := NewReferenceStore(db).Save(context.Background(), ref)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDataConsistency))
}

func singleFractalReference() *entity.ReferenceData {
	daily := make([][]string, domain.RotationLength)
	instabs := make([][]string, domain.RotationLength)
	for i := range daily {
		daily[i] = []string{"kinfall"}
		instabs[i] = []string{"birds", "flux_bomb"}
	}

	return &entity.ReferenceData{
		DailyRotation: daily,
		Fractals: map[string]entity.Fractal{
			"kinfall": {ID: "kinfall", Name: "Kinfall", Scales: []int{23, 48, 73, 98}},
		},
		InstabilityRotation: map[string][][]string{"98": instabs},
		Instabilities: map[string]entity.Instability{
			"birds":     {ID: "birds", Name: "Birds"},
			"flux_bomb": {ID: "flux_bomb", Name: "Flux Bomb"},
		},
	}
}
