package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/storefront/internal/buildinfo"
	"github.com/dmitrijs2005/storefront/internal/server"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := server.Main(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}

}
