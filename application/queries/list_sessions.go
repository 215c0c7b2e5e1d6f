package queries

import "grapheditor/pkg/utils"

// ListSessionsQuery represents a query to list live sessions
type ListSessionsQuery struct {
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=100"`
	SortBy   string `validate:"omitempty,oneof=created active"`
	Order    string `validate:"omitempty,oneof=asc desc"`
}

// Validate validates the query
func (q ListSessionsQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// ListSessionsResult represents the result of listing sessions
type ListSessionsResult struct {
	Sessions   []SessionSummary `json:"sessions"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// SessionSummary represents a summary of a session
type SessionSummary struct {
	ID         string `json:"id"`
	NodeCount  int    `json:"nodeCount"`
	EdgeCount  int    `json:"edgeCount"`
	CreatedAt  string `json:"createdAt"`
	LastActive string `json:"lastActive"`
}
