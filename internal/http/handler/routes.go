package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"runbot/internal/http/middleware"
	"runbot/internal/service"
)

// Services bundles everything the routes need.
type Services struct {
	Auth        service.AuthService
	Participant service.ParticipantService
	Challenge   service.ChallengeService
	Event       service.EventService
	Submission  service.SubmissionService
	StorageOps  service.StorageOpsService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; business rules live in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, jwtSecret string, svcs Services) {
	// Health endpoint: checks DB connectivity only
	app.Get("/health", HealthCheck(db))

	// Bare liveness probe
	app.Get("/healthz", LivenessProbe())

	app.Post("/login", Login(svcs.Auth))

	// Everything below requires an admin token.
	admin := app.Group("/", middleware.RequireAuth(jwtSecret))

	admin.Get("/participants", ListParticipants(svcs.Participant))
	admin.Post("/participants", CreateParticipant(svcs.Participant))
	admin.Get("/participants/:id", GetParticipant(svcs.Participant))
	admin.Put("/participants/:id", UpdateParticipant(svcs.Participant))
	admin.Delete("/participants/:id", DeleteParticipant(svcs.Participant))

	admin.Get("/challenges", ListChallenges(svcs.Challenge))
	admin.Post("/challenges", CreateChallenge(svcs.Challenge))
	admin.Get("/challenges/:id", GetChallenge(svcs.Challenge))
	admin.Put("/challenges/:id", UpdateChallenge(svcs.Challenge))
	admin.Delete("/challenges/:id", DeleteChallenge(svcs.Challenge))

	admin.Get("/events", ListEvents(svcs.Event))
	admin.Post("/events", CreateEvent(svcs.Event))
	admin.Get("/events/:id", GetEvent(svcs.Event))
	admin.Put("/events/:id", UpdateEvent(svcs.Event))
	admin.Delete("/events/:id", DeleteEvent(svcs.Event))

	admin.Get("/submissions", ListSubmissions(svcs.Submission))
	admin.Get("/submissions/:id", GetSubmission(svcs.Submission))
	admin.Patch("/submissions/:id", ModerateSubmission(svcs.Submission))
	admin.Delete("/submissions/:id", DeleteSubmission(svcs.Submission))
	admin.Post("/submissions/:id/media", UploadSubmissionMedia(svcs.Submission))
	admin.Get("/submissions/:id/media", GetSubmissionMedia(svcs.Submission))

	admin.Get("/storage/stats", StorageStats(svcs.StorageOps))
	admin.Post("/storage/cleanup", StorageCleanup(svcs.StorageOps))
}
