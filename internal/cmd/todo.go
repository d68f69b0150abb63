package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/service"
	"github.com/zfogg/streamline/pkg/views"
)

var (
	todoFilter   string
	todoQuery    string
	todoPriority string
	todoCategory string
	todoForce    bool
)

var todoCmd = &cobra.Command{
	Use:     "todo",
	Aliases: []string{"todos"},
	Short:   "Todo commands",
	Long: `Manage your todos. Todo ids may be shortened to any unique
suffix, such as the 8 characters shown by 'streamline todo list'.`,
}

var todoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTodoService(application)
		return svc.List(cmd.Context(), views.FilterMode(todoFilter), todoQuery)
	},
}

var todoShowCmd = &cobra.Command{
	Use:   "show <todo-id>",
	Short: "Show a todo and its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTodoService(application)
		return svc.Show(cmd.Context(), args[0])
	},
}

var todoAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a todo",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTodoService(application)
		return svc.Add(cmd.Context(), strings.Join(args, " "), api.Priority(todoPriority), api.Category(todoCategory))
	},
}

var todoToggleCmd = &cobra.Command{
	Use:     "toggle <todo-id>",
	Aliases: []string{"done"},
	Short:   "Mark a todo completed, or active again",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTodoService(application)
		return svc.Toggle(cmd.Context(), args[0])
	},
}

var todoRemoveCmd = &cobra.Command{
	Use:     "rm <todo-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTodoService(application)
		return svc.Remove(cmd.Context(), args[0], todoForce)
	},
}

var todoCommentCmd = &cobra.Command{
	Use:   "comment <todo-id> [text]",
	Short: "Comment on a todo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTodoService(application)
		return svc.Comment(cmd.Context(), args[0], strings.Join(args[1:], " "))
	},
}

var todoUncommentCmd = &cobra.Command{
	Use:   "uncomment <todo-id> <comment-id>",
	Short: "Delete a comment from a todo",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTodoService(application)
		return svc.Uncomment(cmd.Context(), args[0], args[1])
	},
}

func init() {
	todoListCmd.Flags().StringVarP(&todoFilter, "filter", "f", "all", "Filter: all, active, completed")
	todoListCmd.Flags().StringVarP(&todoQuery, "query", "q", "", "Only todos whose text contains this")

	todoAddCmd.Flags().StringVarP(&todoPriority, "priority", "p", "", "Priority: low, medium, high (default medium)")
	todoAddCmd.Flags().StringVarP(&todoCategory, "category", "c", "", "Category: personal, work, shopping, health (default personal)")

	todoRemoveCmd.Flags().BoolVarP(&todoForce, "force", "f", false, "Skip confirmation")

	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoShowCmd)
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoToggleCmd)
	todoCmd.AddCommand(todoRemoveCmd)
	todoCmd.AddCommand(todoCommentCmd)
	todoCmd.AddCommand(todoUncommentCmd)
}
