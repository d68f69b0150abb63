package app

import (
	"context"
	"errors"
	"strings"

	"github.com/zfogg/streamline/pkg/api"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/logger"
)

// Built-in answers used whenever the AI service fails.
var (
	fallbackSuggestions = []api.Suggestion{
		{Text: "Review your high priority todos", Priority: api.PriorityHigh, Category: api.CategoryWork},
		{Text: "Break a large task into smaller steps", Priority: api.PriorityMedium, Category: api.CategoryWork},
		{Text: "Take a short break and stretch", Priority: api.PriorityLow, Category: api.CategoryHealth},
	}

	fallbackWorkflow = []api.Suggestion{
		{Text: "Group similar tasks and do them together"},
		{Text: "Close resolved tickets at the end of each day"},
		{Text: "Start the day with your most important todo"},
	}
)

// AIResult carries suggestions and whether they came from the fallback.
type AIResult struct {
	Suggestions []api.Suggestion
	Fallback    bool
}

func fallback(s []api.Suggestion) []api.Suggestion {
	out := make([]api.Suggestion, len(s))
	copy(out, s)
	return out
}

func (a *App) degrade(operation string, err error) {
	logger.Warn("AI call failed, using fallback", "operation", operation, "error", err)
	a.notifier.Notify(apperrors.AIUnavailable(err))
}

// Suggestions asks for todo ideas about topic.
func (a *App) Suggestions(ctx context.Context, topic string) (AIResult, error) {
	if err := a.requireSession(); err != nil {
		return AIResult{}, err
	}
	s, err := a.api.GetSuggestions(ctx, strings.TrimSpace(topic))
	if err != nil || len(s) == 0 {
		a.degrade("suggestions", errOrEmpty(err))
		return AIResult{Suggestions: fallback(fallbackSuggestions), Fallback: true}, nil
	}
	return AIResult{Suggestions: s}, nil
}

// AnalyzeTask asks for a priority, category and estimate for text.
func (a *App) AnalyzeTask(ctx context.Context, text string) (*api.TaskAnalysis, bool, error) {
	if err := a.requireSession(); err != nil {
		return nil, false, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false, apperrors.Validation("task", "cannot be empty")
	}

	analysis, err := a.api.AnalyzeTask(ctx, text)
	if err != nil {
		a.degrade("analyze-task", err)
		return &api.TaskAnalysis{
			Priority:         api.PriorityMedium,
			Category:         api.CategoryPersonal,
			EstimatedMinutes: 30,
			Suggestions:      fallback(fallbackSuggestions),
		}, true, nil
	}
	return analysis, false, nil
}

// PlanDay asks for a schedule for the available hours.
func (a *App) PlanDay(ctx context.Context, req api.PlanDayRequest) (*api.DayPlan, bool, error) {
	if err := a.requireSession(); err != nil {
		return nil, false, err
	}
	if req.Hours <= 0 || req.Hours > 24 {
		return nil, false, apperrors.Validation("hours", "must be between 0 and 24")
	}
	if req.Energy == "" {
		req.Energy = "medium"
	}

	plan, err := a.api.PlanDay(ctx, req)
	if err != nil {
		a.degrade("plan-day", err)
		return &api.DayPlan{Suggestions: fallback(fallbackSuggestions)}, true, nil
	}
	return plan, false, nil
}

// OptimizeWorkflow asks for process improvements.
func (a *App) OptimizeWorkflow(ctx context.Context) (AIResult, error) {
	if err := a.requireSession(); err != nil {
		return AIResult{}, err
	}
	s, err := a.api.OptimizeWorkflow(ctx)
	if err != nil || len(s) == 0 {
		a.degrade("optimize-workflow", errOrEmpty(err))
		return AIResult{Suggestions: fallback(fallbackWorkflow), Fallback: true}, nil
	}
	return AIResult{Suggestions: s}, nil
}

// SmartSuggestions asks for ideas fitted to mood and free time.
func (a *App) SmartSuggestions(ctx context.Context, req api.SmartSuggestionsRequest) (AIResult, error) {
	if err := a.requireSession(); err != nil {
		return AIResult{}, err
	}
	if req.ContextType == "" {
		req.ContextType = "general"
	}
	if req.AvailableMinutes < 0 {
		return AIResult{}, apperrors.Validation("available minutes", "cannot be negative")
	}

	s, err := a.api.GetSmartSuggestions(ctx, req)
	if err != nil || len(s) == 0 {
		a.degrade("smart-suggestions", errOrEmpty(err))
		return AIResult{Suggestions: fallback(fallbackSuggestions), Fallback: true}, nil
	}
	return AIResult{Suggestions: s}, nil
}

var errNoSuggestions = errors.New("AI service returned no suggestions")

func errOrEmpty(err error) error {
	if err != nil {
		return err
	}
	return errNoSuggestions
}
