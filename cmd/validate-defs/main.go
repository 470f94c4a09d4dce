// validate-defs checks a directory of language definition files: schema
// validation, version compatibility, named pattern references, and full
// knowledge base compilation. Exits non-zero on the first problem.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/petrarca/language-detector/internal/knowledge"
	"github.com/petrarca/language-detector/internal/pathfilter"
	"github.com/petrarca/language-detector/internal/rules"
	"github.com/petrarca/language-detector/internal/types"
)

func main() {
	standalone := flag.Bool("standalone", false, "Validate the directory on its own instead of as an overlay on the embedded definitions")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-standalone] <definitions-dir>\n", os.Args[0])
		os.Exit(2)
	}
	dir := flag.Arg(0)

	var payload *types.DefinitionsPayload
	var err error
	if *standalone {
		payload = &types.DefinitionsPayload{}
	} else {
		payload, err = rules.LoadEmbedded()
		if err != nil {
			fmt.Fprintf(os.Stderr, "embedded definitions are broken: %v\n", err)
			os.Exit(1)
		}
	}

	if err := rules.LoadExternal(payload, dir); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	kb, err := knowledge.Build(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if _, err := pathfilter.New(payload.PathRules, nil); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %d languages, %d disambiguations, %d path rules, %d token tables (version %s)\n",
		kb.Len(), len(payload.Disambiguations), len(payload.PathRules),
		len(payload.TokenTables), payload.Version)
}
