package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/steellight541/cinema-app/catalog"
	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/helper"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/utils"
)

// GetScreenings lists all screenings, optionally narrowed to a calendar day
// via ?date=YYYY-MM-DD (prefix match on the stored ISO string).
func GetScreenings(c *fiber.Ctx) error {
	screenings, err := db.LoadScreenings()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to load screenings")
	}
	if date := c.Query("date"); date != "" {
		screenings = helper.FilterScreeningsByDate(screenings, date)
	}
	return c.JSON(screenings)
}

func CreateScreening(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateScreeningInput)

	// resolve the movie before entering the store's critical section
	movie, err := tmdb.SearchMovie(input.MovieTitle)
	if err != nil {
		utils.Logger.Errorw("catalog search failed", "title", input.MovieTitle, "error", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM_UNAVAILABLE, "Failed to search for movie")
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_NOT_FOUND, "Movie with title \""+input.MovieTitle+"\" not found")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	screenings, err := db.LoadScreenings()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to load screenings")
	}

	newScreening := model.Screening{
		ID:                      helper.NextScreeningID(screenings),
		Date:                    input.Date,
		InitialTicketsAvailable: *input.TicketsAvailable,
		TicketsAvailable:        *input.TicketsAvailable,
	}
	helper.ApplyMovie(&newScreening, movie)

	screenings = append(screenings, newScreening)
	if err := db.SaveScreenings(screenings); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to save screenings")
	}

	broadcastScreenings()
	return c.Status(fiber.StatusCreated).JSON(newScreening)
}

func EditScreening(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Screening id must be an integer")
	}
	input := c.Locals("input").(model.UpdateScreeningInput)

	// A failed title resolution is not fatal on update: the screening keeps
	// its previous movie fields.
	var movie *catalog.Movie
	if input.MovieTitle != "" {
		found, searchErr := tmdb.SearchMovie(input.MovieTitle)
		if searchErr != nil {
			utils.Logger.Warnw("catalog search failed during update, keeping existing movie fields",
				"title", input.MovieTitle, "error", searchErr)
		} else if found == nil {
			utils.Logger.Warnw("movie title not found during update, keeping existing movie fields",
				"title", input.MovieTitle)
		} else {
			movie = found
		}
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	screenings, err := db.LoadScreenings()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to load screenings")
	}
	idx := helper.FindScreening(screenings, id)
	if idx == -1 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, "Screening not found")
	}

	s := &screenings[idx]
	if movie != nil {
		helper.ApplyMovie(s, movie)
	} else if input.MovieTitle == "" && input.MovieID != nil {
		// a direct id overwrite only applies when no title was given; a title
		// that failed to resolve keeps the screening's movie untouched
		s.MovieID = *input.MovieID
	}
	if input.Date != "" {
		s.Date = input.Date
	}
	if input.TicketsAvailable != nil {
		// a capacity change resets the remaining count, discarding prior sales
		s.InitialTicketsAvailable = *input.TicketsAvailable
		s.TicketsAvailable = *input.TicketsAvailable
	}

	if err := db.SaveScreenings(screenings); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to save screenings")
	}

	broadcastScreenings()
	return c.JSON(screenings[idx])
}

func DeleteScreening(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Screening id must be an integer")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	screenings, err := db.LoadScreenings()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to load screenings")
	}
	remaining := []model.Screening{}
	for _, s := range screenings {
		if s.ID != id {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == len(screenings) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, "Screening not found")
	}

	if err := db.SaveScreenings(remaining); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to save screenings")
	}

	broadcastScreenings()
	return c.SendStatus(fiber.StatusNoContent)
}
