package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/usecase"
)

// taskJSON is the JSON form of a task in `gantt list --json`.
type taskJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// newListCommand creates the list command.
func newListCommand(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the seeded tasks in row order.

Output format is tab-separated with columns:
  ROW, NAME, START, END, DAYS

Examples:
  # List tasks from the configuration
  gantt list

  # List tasks from a YAML file as JSON
  gantt list --tasks plan.yaml --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := e.container().ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}
			if asJSON {
				return printTaskJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskList(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// printTaskList prints tasks in TSV format followed by the overall range.
func printTaskList(w io.Writer, out *usecase.ListTasksOutput) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ROW\tNAME\tSTART\tEND\tDAYS")
	for i, t := range out.Tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n",
			i, t.Name, domain.FormatDate(t.Start), domain.FormatDate(t.End), t.Days())
	}
	_ = tw.Flush()

	if len(out.Tasks) > 0 {
		_, _ = fmt.Fprintf(w, "\nRange: %s .. %s\n", domain.FormatDate(out.MinDate), domain.FormatDate(out.MaxDate))
	}
}

// printTaskJSON prints tasks as an indented JSON array.
func printTaskJSON(w io.Writer, tasks []*domain.Task) error {
	items := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskJSON{
			ID:    t.ID,
			Name:  t.Name,
			Start: domain.FormatDate(t.Start),
			End:   domain.FormatDate(t.End),
			Days:  t.Days(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
