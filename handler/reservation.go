package handler

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/helper"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/utils"
)

// ReserveTicket books one ticket for the authenticated user. Ordering
// inside the critical section matters: the duplicate-movie rule is checked
// before capacity, and capacity before the decrement, so each failure mode
// is reported distinctly and inventory is never touched on a rejected
// request. QR generation and the receipt email run after the lock is
// released; their failure never rolls the booking back.
func ReserveTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ReserveInput)
	claim := helper.GetUserFromToken(c)
	screeningID := *input.ScreeningID
	userKey := strconv.Itoa(claim.UserID)

	storeMu.Lock()

	screenings, err := db.LoadScreenings()
	if err != nil {
		storeMu.Unlock()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to load screenings")
	}
	reservations, err := db.LoadReservations()
	if err != nil {
		storeMu.Unlock()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to load reservations")
	}

	idx := helper.FindScreening(screenings, screeningID)
	if idx == -1 {
		storeMu.Unlock()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, "Screening not found")
	}

	if helper.HasMovieReservation(screenings, reservations[userKey], screenings[idx].MovieID) {
		storeMu.Unlock()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_ALREADY_RESERVED, "You have already reserved a ticket for this movie.")
	}
	if screenings[idx].TicketsAvailable <= 0 {
		storeMu.Unlock()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_SOLD_OUT, "No tickets available for this screening")
	}

	screenings[idx].TicketsAvailable--
	if err := db.SaveScreenings(screenings); err != nil {
		storeMu.Unlock()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to save screenings")
	}

	reservations[userKey] = append(reservations[userKey], screeningID)
	if err := db.SaveReservations(reservations); err != nil {
		storeMu.Unlock()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to save reservations")
	}

	booked := screenings[idx]
	broadcastScreenings()
	storeMu.Unlock()

	record := model.ReservationRecord{
		ReservationRef: uuid.NewString(),
		UserID:         claim.UserID,
		Username:       claim.Username,
		ScreeningID:    booked.ID,
		ScreeningDate:  booked.Date,
		ReservedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := copier.Copy(&record, &booked); err != nil { // fills the shared movie fields
		utils.Logger.Errorw("failed to copy movie fields onto reservation record", "error", err)
	}

	qrDataURL := ""
	var qrPNG []byte
	if payload, err := json.Marshal(record); err != nil {
		utils.Logger.Errorw("failed to encode reservation record", "error", err)
	} else if qrPNG, err = utils.GenerateQRCode(string(payload), 256); err != nil {
		utils.Logger.Errorw("failed to generate QR code", "error", err)
		qrPNG = nil
	} else {
		qrDataURL = utils.QRDataURL(qrPNG)
	}

	message := "Ticket reserved and email sent successfully!"
	emailErr := utils.SendTicketEmail(utils.TicketEmailData{
		Recipient:      input.Email,
		Username:       claim.Username,
		MovieTitle:     booked.MovieTitle,
		ScreeningDate:  booked.Date,
		ReservationRef: record.ReservationRef,
		QRCodePNG:      qrPNG,
	})
	if emailErr != nil {
		if errors.Is(emailErr, utils.ErrMailNotConfigured) {
			message = "Ticket reserved successfully, but email could not be sent (email service not configured)."
		} else {
			utils.Logger.Warnw("failed to send confirmation email", "recipient", input.Email, "error", emailErr)
			message = "Ticket reserved successfully, but failed to send confirmation email."
		}
	}

	response := fiber.Map{
		"message":       message,
		"screening":     booked,
		"qrCodeDataUrl": qrDataURL,
	}
	if emailErr != nil {
		response["error"] = constants.ERROR_DELIVERY_DEGRADED
	}
	return c.JSON(response)
}
