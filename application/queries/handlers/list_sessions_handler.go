package handlers

import (
	"context"
	"sort"
	"time"

	"grapheditor/application/ports"
	"grapheditor/application/queries"
	"grapheditor/pkg/utils"
)

// ListSessionsHandler handles ListSessionsQuery
type ListSessionsHandler struct {
	repo ports.SessionRepository
}

// NewListSessionsHandler creates a new ListSessionsHandler
func NewListSessionsHandler(repo ports.SessionRepository) *ListSessionsHandler {
	return &ListSessionsHandler{repo: repo}
}

// Handle returns one page of live sessions
func (h *ListSessionsHandler) Handle(ctx context.Context, query queries.ListSessionsQuery) (*queries.ListSessionsResult, error) {
	summaries, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sortSummaries(summaries, query.SortBy, query.Order)

	start := pageStart(query.Page, query.PageSize, len(summaries))
	end := start + query.PageSize
	if end > len(summaries) {
		end = len(summaries)
	}

	result := &queries.ListSessionsResult{
		Sessions:   make([]queries.SessionSummary, 0, end-start),
		TotalCount: len(summaries),
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	for _, s := range summaries[start:end] {
		result.Sessions = append(result.Sessions, queries.SessionSummary{
			ID:         s.ID,
			NodeCount:  s.NodeCount,
			EdgeCount:  s.EdgeCount,
			CreatedAt:  utils.Timestamp(s.CreatedAt),
			LastActive: utils.Timestamp(s.LastActive),
		})
	}
	return result, nil
}

// pageStart returns the offset of page within total items, clamped to total.
// Pages far past the end never multiply out, so the offset cannot overflow.
func pageStart(page, pageSize, total int) int {
	if page < 1 || pageSize < 1 || page-1 > total/pageSize {
		return total
	}
	start := (page - 1) * pageSize
	if start > total {
		return total
	}
	return start
}

func sortSummaries(summaries []ports.SessionSummary, sortBy, order string) {
	key := func(s ports.SessionSummary) time.Time { return s.CreatedAt }
	if sortBy == "active" {
		key = func(s ports.SessionSummary) time.Time { return s.LastActive }
	}
	desc := order != "asc"

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := key(summaries[i]), key(summaries[j])
		if a.Equal(b) {
			return summaries[i].ID < summaries[j].ID
		}
		if desc {
			return a.After(b)
		}
		return a.Before(b)
	})
}
