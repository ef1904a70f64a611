package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_FeaturedFirstThenMatch(t *testing.T) {
	items := Filter("All", "")
	require.Len(t, items, len(Items()))

	// 精选：mindfulness-101(95) sound-healing(89) aura-cleansing(87) crystal-healing(76)
	ids := make([]string, 0, 5)
	for _, it := range items[:5] {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"mindfulness-101", "sound-healing", "aura-cleansing", "crystal-healing", "chakra-alignment"}, ids)
}

func TestFilter_Category(t *testing.T) {
	items := Filter("Practice", "")
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, "Practice", it.Type)
	}
}

func TestFilter_Query(t *testing.T) {
	items := Filter("", "HEALING")
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.ElementsMatch(t, []string{"crystal-healing", "sound-healing"}, ids)

	assert.Empty(t, Filter("Meditation", "breathwork"))
}

func TestFindItem(t *testing.T) {
	it, ok := FindItem("moon-rituals")
	require.True(t, ok)
	assert.True(t, it.Premium)

	col, ok := FindItem("energy-healing")
	require.True(t, ok)
	assert.True(t, col.Premium)

	_, ok = FindItem("nope")
	assert.False(t, ok)
}

func TestFindMeditationType(t *testing.T) {
	m, ok := FindMeditationType("root-grounding")
	require.True(t, ok)
	assert.Equal(t, "Root Grounding", m.Name)
	assert.False(t, m.Premium)

	_, ok = FindMeditationType("unknown")
	assert.False(t, ok)
}
