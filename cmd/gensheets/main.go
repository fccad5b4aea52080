package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/damselgrove/internal/placeholders"
)

func main() {
	dataDir := flag.String("data", "data", "Data directory to write sheets and maps into")
	flag.Parse()

	fmt.Println("Damselgrove Placeholder Sheet Generator")
	fmt.Println("=======================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder sheets are ready to use.")
	fmt.Println("Run the game to see them in action!")
}
