package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/phrazzld/polyglot-api/docs"
	"github.com/phrazzld/polyglot-api/internal/api"
	apiMiddleware "github.com/phrazzld/polyglot-api/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.CORS(app.config.CORS))

	translationHandler := api.NewTranslationHandler(
		app.translationService,
		app.config.Server.MaxUploadBytes,
		app.logger,
	)
	learningHandler := api.NewLearningHandler(app.learningService, app.logger)
	practiceHandler := api.NewPracticeHandler(app.practiceService, app.logger)
	chatbotHandler := api.NewChatbotHandler(app.chatbotService, app.logger)
	captionHandler := api.NewCaptionHandler(app.captionService, app.logger)
	historyHandler := api.NewHistoryHandler(app.historyService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/translate/text", translationHandler.TranslateText)
		r.Post("/translate/voice", translationHandler.TranslateVoice)
		r.Post("/translate/examples", translationHandler.Examples)

		r.Post("/learning/lesson", learningHandler.Lesson)
		r.Get("/lessons", learningHandler.Courses)

		r.Post("/practice/generate", practiceHandler.Generate)
		r.Post("/chatbot", chatbotHandler.Chat)
		r.Get("/youtube/captions", captionHandler.Captions)

		r.Get("/languages", api.Languages)
		r.Get("/history", historyHandler.List)
		r.Get("/achievements", historyHandler.Achievements)
	})

	r.Get("/health", api.Health)

	// Swagger UI serves the registered OpenAPI document.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
