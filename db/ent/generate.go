package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/scouter-app/receipt-pipeline/gen/ent",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
