package api

import (
	"context"
	"net/http"

	"github.com/zfogg/streamline/pkg/logger"
)

// GetSuggestions asks for task suggestions for a free-text context
func (c *Client) GetSuggestions(ctx context.Context, topic string) ([]Suggestion, error) {
	logger.Debug("Requesting suggestions")

	var resp SuggestionsResponse
	if err := c.send(ctx, http.MethodPost, "/ai/suggestions", SuggestionsRequest{Context: topic}, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// AnalyzeTask asks for a priority, category and estimate for a task text
func (c *Client) AnalyzeTask(ctx context.Context, text string) (*TaskAnalysis, error) {
	logger.Debug("Requesting task analysis")

	var analysis TaskAnalysis
	if err := c.send(ctx, http.MethodPost, "/ai/analyze-task", AnalyzeTaskRequest{Text: text}, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// PlanDay asks for a time-blocked plan
func (c *Client) PlanDay(ctx context.Context, req PlanDayRequest) (*DayPlan, error) {
	logger.Debug("Requesting day plan", "hours", req.Hours, "energy", req.Energy)

	var plan DayPlan
	if err := c.send(ctx, http.MethodPost, "/ai/plan-day", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// OptimizeWorkflow asks for workflow improvements over the current todos
func (c *Client) OptimizeWorkflow(ctx context.Context) ([]Suggestion, error) {
	logger.Debug("Requesting workflow optimization")

	var resp SuggestionsResponse
	if err := c.send(ctx, http.MethodPost, "/ai/optimize-workflow", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// GetSmartSuggestions asks for suggestions fitted to mood and free time
func (c *Client) GetSmartSuggestions(ctx context.Context, req SmartSuggestionsRequest) ([]Suggestion, error) {
	logger.Debug("Requesting smart suggestions", "context_type", req.ContextType)

	var resp SuggestionsResponse
	if err := c.send(ctx, http.MethodPost, "/ai/smart-suggestions", req, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}
