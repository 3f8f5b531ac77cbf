package cmd

import (
	"fmt"

	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/quiz"
	"github.com/faraz/beestudy/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider := content.Load(resolveContentDir(cmd))
		prog := progress.NewService(ctx, st.SnapshotRepo(), st.EventRepo())

		fmt.Printf("Streak:           %d days\n", prog.CurrentStreak())
		fmt.Printf("Topics reviewed:  %d\n", prog.ReviewedCount())
		if last := prog.LastStudyDate(); last != nil {
			fmt.Printf("Last studied:     %s\n", last.Format("Jan 2, 2006"))
		}

		history := prog.History(10)
		if len(history) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, r := range history {
				fmt.Printf("  %s  %-22s %-16s %d/%d\n",
					r.Date.Format("Jan 02"), r.Subject, quiz.Mode(r.Mode).Label(), r.Score, r.Total)
			}
		}

		weak := prog.WeakTopicIDs(10)
		if len(weak) > 0 {
			fmt.Println("\nWeak topics:")
			for _, id := range weak {
				name := id
				if topic, ok := provider.TopicByID(id); ok {
					name = topic.Title
				}
				fmt.Printf("  %-34s missed %d times\n", name, prog.WrongCount(id))
			}
		}

		return nil
	},
}
