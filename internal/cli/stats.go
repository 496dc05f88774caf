package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	ledger := ctx.App.Store.Streak().Ledger()
	count, words := ctx.App.Store.Entries().Totals()

	fmt.Println("Writing stats:")
	fmt.Printf("  Current streak:  %d day(s)\n", ledger.CurrentStreak)
	fmt.Printf("  Longest streak:  %d day(s)\n", ledger.LongestStreak)
	if ledger.LastWriteDate != "" {
		fmt.Printf("  Last write:      %s\n", ledger.LastWriteDate)
	} else {
		fmt.Println("  Last write:      never")
	}
	fmt.Printf("  Writing days:    %d\n", len(ledger.WritingDays))
	fmt.Printf("  Entries:         %d\n", count)
	fmt.Printf("  Total words:     %d\n", words)
	return nil
}
