package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/cli"
)

func main() {

	ctx := context.Background()
	if err := cli.NewRootCommand(ctx, os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}

}
