package joborder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

func jobOrderExt(id, title string, priority models.JobOrderPriority, createdAt time.Time, favorite bool) dbmodels.JobOrderExt {
	rec := dbmodels.JobOrderExt{Favorite: favorite}
	rec.ID = id
	rec.Title = title
	rec.Status = models.JobOrderStatusSourcing
	rec.Priority = priority
	rec.CreatedAt = createdAt
	return rec
}

func TestBuildBoard(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run(`lanes are fixed and ordered High Mid Low`, func(t *testing.T) {
		view := BuildBoard(nil, nil, now)
		require.Len(t, view.Lanes, 3)
		require.Equal(t, models.JobOrderPriorityHigh, view.Lanes[0].Priority)
		require.Equal(t, models.JobOrderPriorityMid, view.Lanes[1].Priority)
		require.Equal(t, models.JobOrderPriorityLow, view.Lanes[2].Priority)
		for _, lane := range view.Lanes {
			require.NotNil(t, lane.Cards)
			require.Empty(t, lane.Cards)
		}
	})

	t.Run(`cards land in their priority lane with counts`, func(t *testing.T) {
		list := []dbmodels.JobOrderExt{
			jobOrderExt("jo-1", "Go Engineer", models.JobOrderPriorityHigh, now.AddDate(0, 0, -10), true),
			jobOrderExt("jo-2", "QA Lead", models.JobOrderPriorityHigh, now.AddDate(0, 0, -3), false),
			jobOrderExt("jo-3", "Designer", models.JobOrderPriorityLow, now, false),
		}
		counts := map[string]int64{"jo-1": 4, "jo-3": 1}
		view := BuildBoard(list, counts, now)

		high := view.Lanes[0]
		require.Len(t, high.Cards, 2)
		require.Equal(t, int64(4), high.Cards[0].CandidateCount)
		require.Equal(t, 10, high.Cards[0].AgeDays)
		require.True(t, high.Cards[0].Favorite)
		require.Equal(t, int64(0), high.Cards[1].CandidateCount)

		require.Empty(t, view.Lanes[1].Cards)

		low := view.Lanes[2]
		require.Len(t, low.Cards, 1)
		require.Equal(t, "jo-3", low.Cards[0].ID)
		require.Equal(t, 0, low.Cards[0].AgeDays)
	})

	t.Run(`future created_at clamps age to zero`, func(t *testing.T) {
		list := []dbmodels.JobOrderExt{
			jobOrderExt("jo-4", "Clock skew", models.JobOrderPriorityMid, now.Add(time.Hour), false),
		}
		view := BuildBoard(list, nil, now)
		require.Equal(t, 0, view.Lanes[1].Cards[0].AgeDays)
	})
}
