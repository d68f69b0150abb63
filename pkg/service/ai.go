package service

import (
	"context"
	"fmt"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/formatter"
	"github.com/zfogg/streamline/pkg/output"
	"github.com/zfogg/streamline/pkg/prompter"
)

type AIService struct {
	app *app.App
}

// NewAIService creates a new AI assistant service
func NewAIService(a *app.App) *AIService {
	return &AIService{app: a}
}

func printSuggestions(title string, res app.AIResult) error {
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(res)
	}
	if res.Fallback {
		title += formatter.Faint.Sprint(" (offline tips)")
	}
	output.PrintHeading(title)
	for i, s := range res.Suggestions {
		line := fmt.Sprintf("%2d. %s", i+1, s.Text)
		if s.Priority != "" {
			line += "  " + formatter.Priority(s.Priority)
		}
		if s.Category != "" {
			line += "  " + formatter.Faint.Sprint(s.Category)
		}
		fmt.Fprintln(output.Out, line)
		if s.Reason != "" {
			fmt.Fprintf(output.Out, "    %s\n", formatter.Faint.Sprint(s.Reason))
		}
	}
	return nil
}

// Suggest prints todo ideas about topic
func (s *AIService) Suggest(ctx context.Context, topic string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	res, err := s.app.Suggestions(ctx, topic)
	if err != nil {
		return err
	}
	return printSuggestions("Suggestions", res)
}

// Analyze prints the suggested priority, category and estimate for text
func (s *AIService) Analyze(ctx context.Context, text string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	if text == "" {
		var err error
		if text, err = prompter.PromptString("Task: "); err != nil {
			return err
		}
	}

	analysis, fallback, err := s.app.AnalyzeTask(ctx, text)
	if err != nil {
		return err
	}
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(struct {
			*api.TaskAnalysis
			Fallback bool `json:"fallback"`
		}{analysis, fallback})
	}

	title := "Analysis"
	if fallback {
		title += formatter.Faint.Sprint(" (defaults)")
	}
	fields := []output.Field{
		{Key: "Task", Value: text},
		{Key: "Priority", Value: formatter.Priority(analysis.Priority)},
		{Key: "Category", Value: string(analysis.Category)},
		{Key: "Estimate", Value: formatter.FormatDuration(analysis.EstimatedMinutes)},
	}
	if err := output.PrintRecord(title, analysis, fields); err != nil {
		return err
	}
	if len(analysis.Suggestions) > 0 {
		fmt.Fprintln(output.Out)
		return printSuggestions("Tips", app.AIResult{Suggestions: analysis.Suggestions})
	}
	return nil
}

// Plan prints a schedule for the available hours
func (s *AIService) Plan(ctx context.Context, req api.PlanDayRequest) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	plan, fallback, err := s.app.PlanDay(ctx, req)
	if err != nil {
		return err
	}
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(struct {
			*api.DayPlan
			Fallback bool `json:"fallback"`
		}{plan, fallback})
	}

	if len(plan.Blocks) > 0 {
		output.PrintHeading("Plan")
		rows := make([][]string, 0, len(plan.Blocks))
		for _, b := range plan.Blocks {
			rows = append(rows, []string{b.Start + "-" + b.End, b.Task})
		}
		output.PrintTable([]string{"Time", "Task"}, rows)
		fmt.Fprintln(output.Out)
	}
	return printSuggestions("Tips", app.AIResult{Suggestions: plan.Suggestions, Fallback: fallback})
}

// Optimize prints workflow tips
func (s *AIService) Optimize(ctx context.Context) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	res, err := s.app.OptimizeWorkflow(ctx)
	if err != nil {
		return err
	}
	return printSuggestions("Workflow", res)
}

// Smart prints suggestions for the given context, mood and time
func (s *AIService) Smart(ctx context.Context, req api.SmartSuggestionsRequest) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	res, err := s.app.SmartSuggestions(ctx, req)
	if err != nil {
		return err
	}
	return printSuggestions("Smart suggestions", res)
}
