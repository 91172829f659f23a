package handler

import (
	"github.com/gofiber/fiber/v2"

	"runbot/internal/model"
	"runbot/internal/service"
)

// ListChallenges returns a page of challenges with a total count.
func ListChallenges(svc service.ChallengeService) fiber.Handler {
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

// CreateChallenge creates a challenge from a JSON body.
func CreateChallenge(svc service.ChallengeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ch model.Challenge
		if err := c.BodyParser(&ch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.Create(c.UserContext(), &ch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// GetChallenge returns one challenge by ID.
func GetChallenge(svc service.ChallengeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		ch, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ch)
	}
}

// UpdateChallenge overwrites a challenge's mutable fields.
func UpdateChallenge(svc service.ChallengeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		var ch model.Challenge
		if err := c.BodyParser(&ch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		ch.ID = id
		out, err := svc.Update(c.UserContext(), &ch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}

// DeleteChallenge removes a challenge by ID. Attached submissions go with it.
func DeleteChallenge(svc service.ChallengeService) fiber.Handler {
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
