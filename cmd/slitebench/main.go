package main

import (
	"context"
	"log"

	"github.com/slitedb/slite/internal/slitebench"
)

func main() {
	if err := slitebench.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
