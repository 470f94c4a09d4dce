package main

import (
	"github.com/petrarca/language-detector/internal/cmd"
)

func main() {
	cmd.Execute()
}
