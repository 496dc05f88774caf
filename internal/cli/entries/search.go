package entries

import (
	"fmt"
	"strings"

	"github.com/quilljot/quill/internal/cli"
)

type SearchCmd struct {
	Query []string `arg:"" help:"Text to look for in prompts and entry bodies."`
}

func (c *SearchCmd) Run(ctx *cli.Context) error {
	query := strings.Join(c.Query, " ")

	matches := ctx.App.Store.Entries().Search(query)
	if len(matches) == 0 {
		fmt.Printf("No entries matching %q.\n", query)
		return nil
	}

	for _, e := range matches {
		fmt.Println(cli.FormatEntryLine(e))
	}
	fmt.Printf("\n%d matching entries.\n", len(matches))
	return nil
}
