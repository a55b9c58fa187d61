package joborder

import (
	"time"

	"ats-backend/models"
	joborderapimodels "ats-backend/models/api/joborder"
	dbmodels "ats-backend/models/db"
)

// BuildBoard partitions job orders into the fixed High/Mid/Low lanes and
// attaches the pre-fetched candidate counts.
func BuildBoard(list []dbmodels.JobOrderExt, counts map[string]int64, now time.Time) joborderapimodels.BoardView {
	lanes := make([]joborderapimodels.BoardLane, 0, len(models.BoardLanes))
	byPriority := map[models.JobOrderPriority][]joborderapimodels.BoardCard{}
	for _, rec := range list {
		card := joborderapimodels.BoardCard{
			ID:             rec.ID,
			Title:          rec.Title,
			Status:         rec.Status,
			StatusName:     rec.Status.ToHuman(),
			CandidateCount: counts[rec.ID],
			AgeDays:        ageDays(rec.CreatedAt, now),
			Favorite:       rec.Favorite,
			CreatedAt:      rec.CreatedAt,
		}
		byPriority[rec.Priority] = append(byPriority[rec.Priority], card)
	}
	for _, priority := range models.BoardLanes {
		cards := byPriority[priority]
		if cards == nil {
			cards = []joborderapimodels.BoardCard{}
		}
		lanes = append(lanes, joborderapimodels.BoardLane{
			Priority: priority,
			Name:     priority.ToHuman(),
			Cards:    cards,
		})
	}
	return joborderapimodels.BoardView{Lanes: lanes}
}

func ageDays(createdAt, now time.Time) int {
	if createdAt.After(now) {
		return 0
	}
	return int(now.Sub(createdAt).Hours() / 24)
}
