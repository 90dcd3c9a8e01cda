package main

import (
	"log"
	"os"

	"github.com/grovetools/keyview/pkg/config"
)

func main() {
	data, err := config.SchemaJSON()
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	// Write to the package root
	if err := os.WriteFile("keyview.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated keyview schema at keyview.schema.json")
}
