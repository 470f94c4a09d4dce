// bench-init times the startup path: definitions loading, knowledge base
// compilation, and path filter construction. Useful when changing the
// embedded definitions or the regex inventory.
package main

import (
	"fmt"
	"time"

	"github.com/petrarca/language-detector/internal/knowledge"
	"github.com/petrarca/language-detector/internal/pathfilter"
	"github.com/petrarca/language-detector/internal/rules"
	"github.com/petrarca/language-detector/internal/strategy"
)

func main() {
	start := time.Now()

	t1 := time.Now()
	payload, err := rules.LoadEmbedded()
	if err != nil {
		panic(err)
	}
	fmt.Printf("LoadEmbedded: %v (%d languages, %d disambiguations)\n",
		time.Since(t1), len(payload.Languages), len(payload.Disambiguations))

	t2 := time.Now()
	kb, err := knowledge.Build(payload)
	if err != nil {
		panic(err)
	}
	fmt.Printf("knowledge.Build: %v (%d languages, %d models)\n",
		time.Since(t2), kb.Len(), kb.Models().Len())

	t3 := time.Now()
	_, err = pathfilter.New(payload.PathRules, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("pathfilter.New: %v (%d rules)\n", time.Since(t3), len(payload.PathRules))

	t4 := time.Now()
	strategy.NewPipeline(kb, nil)
	fmt.Printf("strategy.NewPipeline: %v\n", time.Since(t4))

	fmt.Printf("\nTotal init: %v\n", time.Since(start))
}
