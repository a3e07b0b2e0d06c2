package main

import (
	"flag"
	"log"
	"os"

	"github.com/joegreene/go-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Raytracer preview server")
	log.Printf("GET http://localhost:%d/api/render?scene=default&width=400&height=300", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
