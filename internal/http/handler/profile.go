package handler

import (
	"github.com/gofiber/fiber/v2"

	"appraisalapi/internal/service"
)

// SaveProfile godoc
// @Summary      Save a faculty profile
// @Description  Creates or fully replaces the profile stored under uid.
// @Tags         profile
// @Accept       json
// @Produce      plain
// @Param        profile  body      service.SaveProfileInput  true  "Profile"
// @Success      200      {string}  string  "Profile saved successfully"
// @Failure      400      {string}  string  "Missing profile information"
// @Failure      500      {string}  string  "Error saving profile: <reason>"
// @Router       /saveProfile [post]
func SaveProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SaveProfileInput
		if err := c.BodyParser(&in); err != nil {
			return writeText(c, fiber.StatusBadRequest, service.MsgMissingProfile)
		}

		if err := svc.SaveProfile(c.UserContext(), in); err != nil {
			return writeServiceError(c, err, "Error saving profile: ")
		}
		return writeText(c, fiber.StatusOK, "Profile saved successfully")
	}
}
