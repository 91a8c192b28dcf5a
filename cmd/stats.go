package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
	"github.com/abhisek/rekishi/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prog := progress.Open(ctx, st.Documents())
		provider := questions.NewProvider(resolveDataDir(cmd))

		stats := prog.Stats
		if stats.TotalQuestionsAnswered == 0 {
			fmt.Println("No study history yet.")
			return nil
		}

		fmt.Printf("Questions answered:  %d\n", stats.TotalQuestionsAnswered)
		fmt.Printf("Correct answers:     %d\n", stats.CorrectAnswers)
		fmt.Printf("Overall accuracy:    %d%%\n", stats.OverallAccuracy)
		fmt.Printf("Study time:          %d min\n", stats.TotalStudyTimeMinutes)
		fmt.Printf("Study streak:        %d days\n", prog.Progress.ConsecutiveStudyDays)
		fmt.Printf("Sessions:            %d\n", prog.Progress.TotalStudySessions)

		if len(prog.Progress.EraStats) == 0 {
			return nil
		}

		fmt.Println("\nPer era:")
		for _, era := range provider.LoadEras().Eras {
			es, ok := prog.Progress.EraStats[era.ID]
			if !ok || es.TotalQuestions == 0 {
				continue
			}
			line := fmt.Sprintf("  %-8s %3d%%  (%d/%d)", era.ID, es.Accuracy(), es.CorrectAnswers, es.TotalQuestions)
			if n := es.WrongQuestions.Len(); n > 0 {
				line += fmt.Sprintf("  %d to review", n)
			}
			fmt.Println(line)
		}

		if days := recentDates(prog.Progress.DailyStats, 7); len(days) > 0 {
			fmt.Println("\nRecent days:")
			for _, d := range days {
				day := prog.Progress.DailyStats[d]
				fmt.Printf("  %s  %d questions, %d correct, %d min\n",
					d, day.QuestionsAnswered, day.CorrectAnswers, day.StudyTimeMinutes)
			}
		}
		return nil
	},
}

// recentDates returns up to n most recent keys of the daily buckets, newest
// first.
func recentDates(daily map[string]progress.DayStats, n int) []string {
	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > n {
		dates = dates[:n]
	}
	return dates
}
