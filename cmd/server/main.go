// Package main implements the entry point for the tracker API server,
// which exposes CRUD endpoints for tasks and habits backed by in-memory
// storage.
package main

import (
	"context"
	"log"
)

// main loads configuration, sets up logging, wires the application
// dependencies and runs the HTTP server until it is signalled to stop.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
