package handler

import (
	"github.com/gofiber/fiber/v2"

	"runbot/internal/model"
	"runbot/internal/service"
)

// ListEvents returns a page of events with a total count.
func ListEvents(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePaging(c)
		if err != nil {
			return err
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateEvent creates an event from a JSON body.
func CreateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e model.Event
		if err := c.BodyParser(&e); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.Create(c.UserContext(), &e)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// GetEvent returns one event by ID.
func GetEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		e, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// UpdateEvent overwrites an event's mutable fields.
func UpdateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		var e model.Event
		if err := c.BodyParser(&e); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		e.ID = id
		out, err := svc.Update(c.UserContext(), &e)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}

// DeleteEvent removes an event by ID.
func DeleteEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
