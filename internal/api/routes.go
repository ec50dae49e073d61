package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/input", handler.AuthRequired, handler.ShowInputPage)
	app.Get("/settings", handler.AuthRequired, handler.ShowSettings)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	records := api.Group("/records", handler.AuthRequired)
	records.Get("", handler.GetRecords)
	records.Post("/today", handler.SaveTodayRecords)

	api.Get("/advice", handler.AuthRequired, handler.GetAdvice)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("", handler.UpdateSettings)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
