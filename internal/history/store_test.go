// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-planner/pkg/types"
)

func testStore(t *testing.T, maxResults int) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{DataDir: t.TempDir(), MaxResults: maxResults})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testPlan(theme string, days int) *types.Plan {
	plan := &types.Plan{Theme: theme, Days: days}
	for i := 1; i <= days; i++ {
		plan.Topics = append(plan.Topics, "Topic")
		plan.Entries = append(plan.Entries, types.ContentEntry{
			Day: i, Topic: "Topic", Caption: "Caption", Hashtags: "#Tag1 #Tag2",
		})
	}
	return plan
}

func TestRecordAndGet(t *testing.T) {
	s := testStore(t, 0)
	ctx := context.Background()

	id, err := s.Record(ctx, testPlan("Fitness", 3), "rule-based")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	plan, rec, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fitness", rec.Theme)
	assert.Equal(t, 3, rec.Days)
	assert.Equal(t, "rule-based", rec.Backend)
	assert.False(t, rec.CreatedAt.IsZero())

	require.Len(t, plan.Entries, 3)
	assert.Equal(t, 1, plan.Entries[0].Day)
	assert.Equal(t, 3, plan.Entries[2].Day)
	assert.Equal(t, "#Tag1 #Tag2", plan.Entries[0].Hashtags)
}

func TestGetUnknownID(t *testing.T) {
	s := testStore(t, 0)
	_, _, err := s.Get(context.Background(), "01JUNKJUNKJUNKJUNKJUNKJUNK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t, 0)
	ctx := context.Background()

	first, err := s.Record(ctx, testPlan("Fitness", 1), "rule-based")
	require.NoError(t, err)
	second, err := s.Record(ctx, testPlan("Business", 1), "model-backed")
	require.NoError(t, err)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// ULIDs are lexically ordered by creation time, so the tie on
	// created_at resolves to the later run first.
	assert.Equal(t, second, records[0].ID)
	assert.Equal(t, first, records[1].ID)
}

func TestListHonorsMaxResults(t *testing.T) {
	s := testStore(t, 2)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, testPlan("Fitness", 1), "rule-based")
		require.NoError(t, err)
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSinkRecords(t *testing.T) {
	s := testStore(t, 0)
	sink := s.SinkFor("rule-based")
	require.NoError(t, sink.Save(context.Background(), testPlan("Mental", 2)))

	records, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Mental", records[0].Theme)
	assert.Equal(t, "rule-based", records[0].Backend)
}
