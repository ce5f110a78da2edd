package main

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// handleGet resolves the request path against the store: a single
// document when the last segment is a known id, the items envelope
// otherwise. Unknown paths are an empty collection, never a 404.
func handleGet(c *fiber.Ctx, store *Store) error {
	logger := NewLogger()
	logger.RequestReceived(fiber.MethodGet, c.Path())

	value, err := store.Get(c.UserContext(), c.Path())
	if err != nil {
		return storeError(c, logger, err)
	}

	logger.RespondWith(fiber.StatusOK)
	return c.JSON(value)
}

// handlePost decodes the body as an arbitrary JSON value and inserts it
// under the request path. Malformed bodies never reach the store.
func handlePost(c *fiber.Ctx, store *Store) error {
	logger := NewLogger()
	logger.RequestReceived(fiber.MethodPost, c.Path())

	var document any
	if err := json.Unmarshal(c.Body(), &document); err != nil {
		logger.Warning(ComponentHTTPServer, "Request body is not valid JSON")
		logger.RespondWith(fiber.StatusBadRequest)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("invalid JSON body: %v", err),
		})
	}

	stored, err := store.Insert(c.UserContext(), c.Path(), document)
	if err != nil {
		return storeError(c, logger, err)
	}

	logger.Success(ComponentStore, fmt.Sprintf("Stored document under %s", c.Path()))
	logger.RespondWith(fiber.StatusCreated)
	return c.Status(fiber.StatusCreated).JSON(stored)
}

// storeError maps the store's single error kind to the 500 envelope.
// Not-found never takes this path — absence is data, not an error.
func storeError(c *fiber.Ctx, logger *Logger, err error) error {
	logger.Error(ComponentStore, err.Error())
	logger.RespondWith(fiber.StatusInternalServerError)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
