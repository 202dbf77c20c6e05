package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/utils"
)

// Movie browsing is a thin pass-through over the catalog service.

func GetMovies(c *fiber.Ctx) error {
	movies, err := tmdb.Popular()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM_UNAVAILABLE, "Failed to fetch movies")
	}
	return c.JSON(movies)
}

func GetPopularMovies(c *fiber.Ctx) error {
	movies, err := tmdb.Popular()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM_UNAVAILABLE, "Failed to fetch popular movies")
	}
	return c.JSON(movies)
}

func GetUpcomingMovies(c *fiber.Ctx) error {
	movies, err := tmdb.Upcoming()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM_UNAVAILABLE, "Failed to fetch upcoming movies")
	}
	return c.JSON(movies)
}

func GetMovieGenres(c *fiber.Ctx) error {
	genres, err := tmdb.Genres()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM_UNAVAILABLE, "Failed to fetch genres")
	}
	return c.JSON(genres)
}

func GetMoviesByGenre(c *fiber.Ctx) error {
	genreID, err := c.ParamsInt("genreId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Genre id must be an integer")
	}
	movies, err := tmdb.MoviesByGenre(genreID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM_UNAVAILABLE, "Failed to fetch movies for genre")
	}
	return c.JSON(movies)
}

// GetMovieSuggestions powers the scheduling form's title autocomplete.
func GetMovieSuggestions(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Query parameter is required")
	}
	suggestions, err := tmdb.Suggestions(query)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM_UNAVAILABLE, "Failed to fetch movie suggestions")
	}
	return c.JSON(suggestions)
}
