package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventascli/internal/dataset"
)

func TestBuildWeightDistribution(t *testing.T) {
	buckets := buildWeightDistribution(sampleDataset(t))

	require.Len(t, buckets, 2)

	assert.Equal(t, "0-10 kg", buckets[0].Label)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 66.67, buckets[0].Percent)

	// Weights at or past the last band edge land in the open bucket.
	assert.Equal(t, ">10 kg", buckets[1].Label)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, 33.33, buckets[1].Percent)
}

func TestBuildWeightDistributionSkipsNilWeights(t *testing.T) {
	ds := sampleDataset(t)
	ds.Rows[0].TotalWeight = nil

	buckets := buildWeightDistribution(ds)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 2, total)
}

func TestBuildWeightDistributionEmpty(t *testing.T) {
	ds := &dataset.Dataset{Client: "Vacío"}
	assert.Nil(t, buildWeightDistribution(ds))
}

func TestBuildComparisonSortedByWeight(t *testing.T) {
	products := aggregateProducts(sampleDataset(t))

	rows := buildComparison(products)

	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Code)
	assert.Equal(t, 15.0, rows[0].TotalWeight)
	assert.Equal(t, "B", rows[1].Code)
}
