package utils

import (
	"crooly-service/internal/app/models"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/scoring"
)

func ConvertCompanyToResponse(company *models.Company) responses.Company {
	return responses.Company{
		ID:           company.ID,
		Name:         company.Name,
		RUT:          company.RUT,
		ContactName:  company.ContactName,
		ContactEmail: company.ContactEmail,
		CreatedAt:    company.CreatedAt,
	}
}

func ConvertDiagnosticToResponse(diagnostic *models.Diagnostic) *responses.Diagnostic {
	overall := scoring.ComputeOverallScore(diagnostic.Scores)
	response := &responses.Diagnostic{
		ID:           diagnostic.ID,
		CompanyID:    diagnostic.CompanyID,
		Scores:       diagnostic.Scores,
		Overall:      overall,
		OverallLabel: scoring.ScoreLabel(overall),
		Answers:      diagnostic.Answers,
		Narrative:    diagnostic.Narrative,
		CreatedAt:    diagnostic.CreatedAt,
	}

	for _, dimension := range scoring.Questionnaire() {
		score := diagnostic.Scores.Get(dimension.Key)
		response.Dimensions = append(response.Dimensions, responses.DimensionResult{
			Key:        dimension.Key,
			Label:      dimension.Label,
			Score:      score,
			ScoreLabel: scoring.ScoreLabel(score),
		})
	}

	return response
}

func ConvertTaskToResponse(task *models.Task) responses.Task {
	return responses.Task{
		ID:            task.ID,
		RoadmapItemID: task.RoadmapItemID,
		CompanyID:     task.CompanyID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		CompletedAt:   task.CompletedAt,
		CreatedAt:     task.CreatedAt,
	}
}

func ConvertRoadmapItemToResponse(item *models.RoadmapItem) responses.RoadmapItem {
	response := responses.RoadmapItem{
		ID:          item.ID,
		CompanyID:   item.CompanyID,
		Title:       item.Title,
		Description: item.Description,
		Status:      item.Status,
		DueDate:     FormatOptionalDate(item.DueDate),
		CreatedAt:   item.CreatedAt,
		Tasks:       make([]responses.Task, 0, len(item.Tasks)),
	}
	for i := range item.Tasks {
		response.Tasks = append(response.Tasks, ConvertTaskToResponse(&item.Tasks[i]))
	}
	return response
}

// BuildRoadmapResponse counts progress over every task of every item.
func BuildRoadmapResponse(items []models.RoadmapItem) *responses.Roadmap {
	response := &responses.Roadmap{
		Items: make([]responses.RoadmapItem, 0, len(items)),
	}

	var progress models.TaskProgress
	for i := range items {
		response.Items = append(response.Items, ConvertRoadmapItemToResponse(&items[i]))
		for _, task := range items[i].Tasks {
			progress.Total++
			if task.Status == constvars.TaskStatusCompleted {
				progress.Completed++
			}
		}
	}
	response.Progress = ConvertProgressToResponse(progress)
	return response
}

func ConvertProgressToResponse(progress models.TaskProgress) responses.Progress {
	return responses.Progress{
		Total:     progress.Total,
		Completed: progress.Completed,
		Percent:   progress.Percent(),
	}
}

func ConvertSessionNoteToResponse(note *models.SessionNote) responses.SessionNote {
	return responses.SessionNote{
		ID:          note.ID,
		CompanyID:   note.CompanyID,
		SessionDate: FormatDate(note.SessionDate),
		Notes:       note.Notes,
		Summary:     note.Summary,
		CreatedAt:   note.CreatedAt,
	}
}

func ConvertKPIToResponse(kpi *models.KPI) responses.KPI {
	return responses.KPI{
		ID:               kpi.ID,
		CompanyID:        kpi.CompanyID,
		WeekDate:         FormatDate(kpi.WeekDate),
		ActiveContacts:   kpi.ActiveContacts,
		MonitoredTenders: kpi.MonitoredTenders,
		ProposalsSent:    kpi.ProposalsSent,
		PipelineValue:    kpi.PipelineValue,
		Notes:            kpi.Notes,
		CreatedAt:        kpi.CreatedAt,
	}
}

func ConvertPlaybookToResponse(playbook *models.Playbook) responses.Playbook {
	response := responses.Playbook{
		ID:          playbook.ID.Hex(),
		Title:       playbook.Title,
		Description: playbook.Description,
		Category:    playbook.Category,
		Steps:       make([]responses.PlaybookStep, 0, len(playbook.Content.Steps)),
		CreatedAt:   playbook.CreatedAt,
		UpdatedAt:   playbook.UpdatedAt,
	}
	for _, step := range playbook.Content.Steps {
		response.Steps = append(response.Steps, responses.PlaybookStep{
			Title:   step.Title,
			Content: step.Content,
		})
	}
	return response
}
