package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/service"
)

var (
	planHours   float64
	planEnergy  string
	planFocus   []string
	smartKind   string
	smartMood   string
	smartMinute int
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "AI assistant commands",
	Long: `Ask the AI assistant for help. When the assistant is unavailable
built-in tips are shown instead.`,
}

var aiSuggestCmd = &cobra.Command{
	Use:   "suggest [topic]",
	Short: "Suggest todos",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAIService(application)
		return svc.Suggest(cmd.Context(), strings.Join(args, " "))
	},
}

var aiAnalyzeCmd = &cobra.Command{
	Use:   "analyze [task]",
	Short: "Suggest priority, category and estimate for a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAIService(application)
		return svc.Analyze(cmd.Context(), strings.Join(args, " "))
	},
}

var aiPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan your day",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAIService(application)
		return svc.Plan(cmd.Context(), api.PlanDayRequest{
			Hours:      planHours,
			Energy:     planEnergy,
			FocusAreas: planFocus,
		})
	},
}

var aiOptimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Suggest workflow improvements",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAIService(application)
		return svc.Optimize(cmd.Context())
	},
}

var aiSmartCmd = &cobra.Command{
	Use:   "smart",
	Short: "Suggestions for your context, mood and free time",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAIService(application)
		return svc.Smart(cmd.Context(), api.SmartSuggestionsRequest{
			ContextType:      smartKind,
			Mood:             smartMood,
			AvailableMinutes: smartMinute,
		})
	},
}

func init() {
	aiPlanCmd.Flags().Float64Var(&planHours, "hours", 8, "Hours available today")
	aiPlanCmd.Flags().StringVar(&planEnergy, "energy", "medium", "Energy level: low, medium, high")
	aiPlanCmd.Flags().StringSliceVar(&planFocus, "focus", nil, "Focus areas, comma separated")

	aiSmartCmd.Flags().StringVar(&smartKind, "context", "general", "Context: general, work, personal")
	aiSmartCmd.Flags().StringVar(&smartMood, "mood", "", "Current mood")
	aiSmartCmd.Flags().IntVar(&smartMinute, "minutes", 0, "Minutes available")

	aiCmd.AddCommand(aiSuggestCmd)
	aiCmd.AddCommand(aiAnalyzeCmd)
	aiCmd.AddCommand(aiPlanCmd)
	aiCmd.AddCommand(aiOptimizeCmd)
	aiCmd.AddCommand(aiSmartCmd)
}
