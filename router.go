package main

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the two catch-all routes. Any path is a valid
// collection, so routing stays a pure method dispatch.
func RegisterRoutes(app *fiber.App, store *Store) {
	app.Get("/*", func(c *fiber.Ctx) error {
		return handleGet(c, store)
	})
	app.Post("/*", func(c *fiber.Ctx) error {
		return handlePost(c, store)
	})
}

// SeedCollections walks an OpenAPI document, inserts any JSON request
// examples it declares into their collections, and prints the declared
// endpoints so a fresh server advertises the API it stands in for.
func SeedCollections(doc *openapi3.T, store *Store) {
	endpointsMap := map[string]struct{}{}

	for docPath, item := range doc.Paths {
		if item.Get != nil {
			endpointsMap[fiber.MethodGet+" "+docPath] = struct{}{}
		}
		if item.Post != nil {
			endpointsMap[fiber.MethodPost+" "+docPath] = struct{}{}

			collection := collectionPath(docPath)
			if example := requestExample(item.Post); example != nil {
				if _, err := store.Insert(context.Background(), collection, example); err != nil {
					log.Printf("failed to seed %s: %v", collection, err)
				} else {
					log.Printf("Seeded %s with example document", collection)
				}
			}
		}
	}

	if len(endpointsMap) > 0 {
		var endpoints []string
		for e := range endpointsMap {
			endpoints = append(endpoints, e)
		}
		sort.Strings(endpoints)
		log.Println("Declared endpoints:")
		for _, e := range endpoints {
			log.Printf("  %s", e)
		}
	}
}

// collectionPath maps an OpenAPI path to the collection it addresses: a
// trailing parameter segment ("/pets/{petId}") belongs to its parent
// collection ("/pets").
func collectionPath(docPath string) string {
	trimmed := strings.TrimSuffix(docPath, "/")
	if i := strings.LastIndex(trimmed, "/"); i > 0 {
		last := trimmed[i+1:]
		if strings.HasPrefix(last, "{") && strings.HasSuffix(last, "}") {
			return trimmed[:i]
		}
	}
	return trimmed
}

// requestExample pulls a JSON request example from a POST operation,
// checking the media type first and its schema second.
func requestExample(op *openapi3.Operation) any {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil {
		return nil
	}
	if media.Example != nil {
		return media.Example
	}
	if media.Schema != nil && media.Schema.Value != nil && media.Schema.Value.Example != nil {
		return media.Schema.Value.Example
	}
	return nil
}
