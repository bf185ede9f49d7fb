package main

import (
	"flag"
	"log"
	"os"

	"github.com/WillDeJs/ray-tracing/pkg/scene"
	"github.com/WillDeJs/ray-tracing/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "", "Directory of YAML scene files (default: ./scenes or ../scenes)")
	flag.Parse()

	dir := *scenesDir
	if dir == "" {
		dir = scene.FindScenesDir()
	}

	webServer := server.NewServer(*port, dir)

	log.Printf("Ray Tracing Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
