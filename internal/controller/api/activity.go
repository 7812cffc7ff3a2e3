package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"fittrack.dev/backend/internal/model"
	"fittrack.dev/backend/internal/model/types"
	"fittrack.dev/backend/internal/pkg/apperr"
	"fittrack.dev/backend/internal/server/svr"
	"fittrack.dev/backend/internal/service"
)

type Activity struct {
	fx.In

	UserService     *service.User
	ActivityService *service.Activity
}

func RegisterActivity(api *svr.Api, c Activity) {
	api.Get("/activities", c.GetActivities)
	api.Get("/activities/:activityId", c.GetActivityById)
	api.Post("/activities", c.CreateActivity)
	api.Put("/activities/:activityId", c.UpdateActivityById)
	api.Delete("/activities/:activityId", c.DeleteActivityById)
	api.Get("/users/:userId/activities", c.GetActivitiesByUserId)
	api.Delete("/users/:userId/activities", c.DeleteActivitiesByUserId)
}

// activityPayload is the request body for create and update. Numeric fields
// use the loose types so quoted numbers from older clients keep working.
type activityPayload struct {
	UserID      types.Int   `json:"userId"`
	Description string      `json:"description"`
	Duration    types.Float `json:"duration"`
	Calories    types.Int   `json:"calories"`
	Started     time.Time   `json:"started"`
}

func (p *activityPayload) toModel() *model.Activity {
	return &model.Activity{
		UserID:      int(p.UserID),
		Description: p.Description,
		Duration:    float64(p.Duration),
		Calories:    int(p.Calories),
		Started:     p.Started,
	}
}

func (c *Activity) GetActivities(ctx *fiber.Ctx) error {
	activities, err := c.ActivityService.GetActivities(ctx.UserContext())
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		return apperr.ErrNotFound.Msg("no activities found")
	}
	return ctx.JSON(activities)
}

// GetActivitiesByUserId distinguishes a missing user (404) from an existing
// user with no activities (204).
func (c *Activity) GetActivitiesByUserId(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("userId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid userId: expect an integer")
	}

	exists, err := c.UserService.IsUserExistWithId(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrNotFound.Msg("user not found with id %d", userId)
	}

	activities, err := c.ActivityService.GetActivitiesByUserId(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		return ctx.SendStatus(fiber.StatusNoContent)
	}
	return ctx.JSON(activities)
}

func (c *Activity) GetActivityById(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid activityId: expect an integer")
	}

	activity, err := c.ActivityService.GetActivityById(ctx.UserContext(), activityId)
	if err != nil {
		return err
	}
	return ctx.JSON(activity)
}

func (c *Activity) CreateActivity(ctx *fiber.Ctx) error {
	var payload activityPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request body: %s", err)
	}

	activity, err := c.ActivityService.CreateActivity(ctx.UserContext(), payload.toModel())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(activity)
}

func (c *Activity) UpdateActivityById(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid activityId: expect an integer")
	}

	var payload activityPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request body: %s", err)
	}

	if err := c.ActivityService.UpdateActivityById(ctx.UserContext(), activityId, payload.toModel()); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Activity) DeleteActivityById(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid activityId: expect an integer")
	}

	if err := c.ActivityService.DeleteActivityById(ctx.UserContext(), activityId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Activity) DeleteActivitiesByUserId(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("userId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid userId: expect an integer")
	}

	if err := c.ActivityService.DeleteActivitiesByUserId(ctx.UserContext(), userId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
