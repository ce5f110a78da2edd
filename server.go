package main

import (
	"log"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

func startServer(addr, openapiPath string) {
	var doc *openapi3.T
	if openapiPath != "" {
		loader := openapi3.NewLoader()
		d, err := loader.LoadFromFile(openapiPath)
		if err != nil {
			log.Fatalf("failed to load openapi: %v", err)
		}
		if err := d.Validate(loader.Context); err != nil {
			log.Fatalf("invalid openapi schema: %v", err)
		}
		doc = d
	}

	store := NewStore()
	app := fiber.New()

	RegisterRoutes(app, store)
	if doc != nil {
		SeedCollections(doc, store)
	}

	log.Printf("🚀 Mock server running at http://%s", addr)
	if openapiPath != "" {
		log.Printf("📄 OpenAPI: %s", openapiPath)
	}

	log.Fatal(app.Listen(addr))
}
