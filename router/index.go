package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/steellight541/cinema-app/handler"
	"github.com/steellight541/cinema-app/middleware"
	"github.com/steellight541/cinema-app/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Get("/me", middleware.Protected(), handler.Me)

	movies := api.Group("/movies")
	movies.Get("/", handler.GetMovies)
	movies.Get("/popular", handler.GetPopularMovies)
	movies.Get("/upcoming", handler.GetUpcomingMovies)
	movies.Get("/genres", handler.GetMovieGenres)
	movies.Get("/genre/:genreId", handler.GetMoviesByGenre)

	screenings := api.Group("/screenings")
	screenings.Get("/", middleware.Protected(), handler.GetScreenings)
	screenings.Get("/movies/suggestions", middleware.Protected(), handler.GetMovieSuggestions)
	screenings.Post("/reserve", middleware.Protected(), validate.Reserve(), handler.ReserveTicket)
	screenings.Post("/", middleware.Protected(), middleware.ManagerOnly(), validate.CreateScreening(), handler.CreateScreening)
	screenings.Put("/:id", middleware.Protected(), middleware.ManagerOnly(), validate.EditScreening(), handler.EditScreening)
	screenings.Delete("/:id", middleware.Protected(), middleware.ManagerOnly(), handler.DeleteScreening)

	app.Get("/ws/screenings", websocket.New(handler.ScreeningsWebsocket))
}
