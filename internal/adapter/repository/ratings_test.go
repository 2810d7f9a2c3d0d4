package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeBucketsEmpty(t *testing.T) {
	summary := summarizeBuckets(nil)

	assert.Zero(t, summary.Average)
	assert.Zero(t, summary.Count)
	assert.Nil(t, summary.Distribution)
}

func TestSummarizeBucketsSingleRating(t *testing.T) {
	summary := summarizeBuckets([]ratingBucket{{Rating: 4, Count: 3}})

	assert.Equal(t, 4.0, summary.Average)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, map[string]int{"4": 3}, summary.Distribution)
}

func TestSummarizeBucketsWeightedAverage(t *testing.T) {
	summary := summarizeBuckets([]ratingBucket{
		{Rating: 5, Count: 2},
		{Rating: 3, Count: 1},
		{Rating: 1, Count: 1},
	})

	assert.InDelta(t, 3.5, summary.Average, 1e-9)
	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, map[string]int{"5": 2, "3": 1, "1": 1}, summary.Distribution)
}
