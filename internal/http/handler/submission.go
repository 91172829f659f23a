package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"runbot/internal/service"
)

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, nil
}

func parsePaging(c *fiber.Ctx) (limit, offset int, err error) {
	limit, err = strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}
	return limit, offset, nil
}

// ListSubmissions returns a page of submissions with a total count.
func ListSubmissions(svc service.SubmissionService) fiber.Handler {
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

// GetSubmission returns one submission by ID.
func GetSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		sub, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sub)
	}
}

type moderateRequest struct {
	Status           string `json:"status"`
	ModeratorComment string `json:"moderator_comment"`
}

// ModerateSubmission records an approve/reject decision.
func ModerateSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		var req moderateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.Moderate(c.UserContext(), id, req.Status, req.ModeratorComment); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadSubmissionMedia attaches a multipart file (field name: file) to a
// submission.
func UploadSubmissionMedia(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		obj, err := svc.AttachMedia(c.UserContext(), id, f, fh.Filename)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(obj)
	}
}

// GetSubmissionMedia resolves the submission's media to an access URL.
func GetSubmissionMedia(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		url, err := svc.MediaURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DeleteSubmission removes a submission together with its stored media.
func DeleteSubmission(svc service.SubmissionService) fiber.Handler {
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
