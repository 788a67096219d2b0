// Command openapi-export writes the service's API document to
// interfaces/openapi.json so frontend and tooling consumers can pick up the
// current schema without running the server.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/tracklet/tracker-api/internal/api"
	"github.com/tracklet/tracker-api/internal/openapi"
)

func main() {
	output := flag.String("output", filepath.Join("interfaces", "openapi.json"),
		"path the API document is written to")
	flag.Parse()

	doc := openapi.Build(api.ServiceName)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal API document: %v", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("Failed to write API document: %v", err)
	}

	log.Printf("Wrote API document to %s", *output)
}
