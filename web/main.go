package main

import (
	"flag"
	"log"
	"os"

	"github.com/jnguye27/Task-VS-Data-Parallelism/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Sphere Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scale=1&workers=4", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
