package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/declxml/xcsc/compiler"
)

func main() {
	// Paths are relative to the repository root.
	inputs, err := filepath.Glob("compiler/testdata/*.xml")
	if err != nil {
		log.Fatalf("Failed to glob files: %v", err)
	}

	for _, inputFile := range inputs {
		goldenDir := strings.TrimSuffix(inputFile, ".xml") + "_golden"

		fmt.Printf("Processing %s -> %s\n", inputFile, goldenDir)

		runes, err := compiler.ReadSource(inputFile)
		if err != nil {
			log.Printf("Failed to read %s: %v", inputFile, err)
			continue
		}
		tokens, err := compiler.Scan(runes)
		if err != nil {
			log.Printf("Scan failed for %s: %v", inputFile, err)
			continue
		}
		xmlTokens, err := compiler.Parse(tokens)
		if err != nil {
			log.Printf("Parse failed for %s: %v", inputFile, err)
			continue
		}
		root, err := compiler.BuildTree(xmlTokens)
		if err != nil {
			log.Printf("Tree build failed for %s: %v", inputFile, err)
			continue
		}
		typedRoot, types, err := compiler.Analyze(root)
		if err != nil {
			log.Printf("Analysis failed for %s: %v", inputFile, err)
			continue
		}
		code, err := compiler.Generate(typedRoot, types)
		if err != nil {
			log.Printf("Intermediate generation failed for %s: %v", inputFile, err)
			continue
		}
		files := compiler.Emit(code)

		if err := os.RemoveAll(goldenDir); err != nil {
			log.Printf("Failed to clear golden dir %s: %v", goldenDir, err)
			continue
		}
		if err := compiler.WriteFiles(goldenDir, files); err != nil {
			log.Printf("Failed to write golden files for %s: %v", inputFile, err)
			continue
		}
	}

	fmt.Println("Done. Golden files updated.")
}
