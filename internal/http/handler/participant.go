package handler

import (
	"github.com/gofiber/fiber/v2"

	"runbot/internal/model"
	"runbot/internal/service"
)

// ListParticipants returns a page of participants with a total count.
func ListParticipants(svc service.ParticipantService) fiber.Handler {
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

// CreateParticipant registers a participant from a JSON body.
func CreateParticipant(svc service.ParticipantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p model.Participant
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.Create(c.UserContext(), &p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// GetParticipant returns one participant by ID.
func GetParticipant(svc service.ParticipantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateParticipant overwrites a participant's mutable fields.
func UpdateParticipant(svc service.ParticipantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		var p model.Participant
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p.ID = id
		out, err := svc.Update(c.UserContext(), &p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}

// DeleteParticipant removes a participant by ID.
func DeleteParticipant(svc service.ParticipantService) fiber.Handler {
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
