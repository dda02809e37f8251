package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotgraph/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const outKey = "out"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed slot accessors",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Path of the generated file",
				Value: "slot/accessors.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for slot accessors started")
	defer func() {
		log.Printf("Codegen for slot accessors finished in %v", time.Since(start))
	}()

	out := cmd.String(outKey)
	contents := templates.AccessorsGen(templates.Builtins)
	return os.WriteFile(out, []byte(contents), 0644)
}
