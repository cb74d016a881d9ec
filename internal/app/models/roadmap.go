package models

import (
	"crooly-service/internal/pkg/constvars"
	"time"
)

type RoadmapItem struct {
	ID          string
	CompanyID   string
	Title       string
	Description *string
	Status      string
	DueDate     *time.Time
	CreatedAt   time.Time
	Tasks       []Task
}

type Task struct {
	ID            string
	RoadmapItemID string
	CompanyID     string
	Title         string
	Description   *string
	Status        string
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

type TaskProgress struct {
	Total     int
	Completed int
}

// Percent is the rounded share of completed tasks, 0 when there are none.
func (p TaskProgress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Completed*100 + p.Total/2) / p.Total
}

var roadmapStatusCycle = []string{
	constvars.RoadmapStatusPending,
	constvars.RoadmapStatusInProgress,
	constvars.RoadmapStatusCompleted,
	constvars.RoadmapStatusAtRisk,
}

var taskStatusCycle = []string{
	constvars.TaskStatusPending,
	constvars.TaskStatusInProgress,
	constvars.TaskStatusCompleted,
}

// NextRoadmapStatus advances pending -> in_progress -> completed -> at_risk -> pending.
// Unknown statuses restart the cycle.
func NextRoadmapStatus(current string) string {
	return nextInCycle(roadmapStatusCycle, current)
}

// NextTaskStatus advances pending -> in_progress -> completed -> pending.
func NextTaskStatus(current string) string {
	return nextInCycle(taskStatusCycle, current)
}

func nextInCycle(cycle []string, current string) string {
	for i, status := range cycle {
		if status == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
