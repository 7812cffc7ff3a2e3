package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"fittrack.dev/backend/internal/model"
	"fittrack.dev/backend/internal/pkg/apperr"
	"fittrack.dev/backend/internal/server/svr"
	"fittrack.dev/backend/internal/service"
)

type User struct {
	fx.In

	UserService *service.User
}

func RegisterUser(api *svr.Api, c User) {
	// the email lookup is registered ahead of the id lookup so that
	// /users/email/... is not captured by the :userId parameter
	api.Get("/users/email/:email", c.GetUserByEmail)
	api.Get("/users", c.GetUsers)
	api.Get("/users/:userId", c.GetUserById)
	api.Post("/users", c.CreateUser)
	api.Patch("/users/:userId", c.UpdateUser)
	api.Delete("/users/:userId", c.DeleteUser)
}

// userPayload is the request body for create and update. The id is
// deliberately absent: ids are assigned by the store only.
type userPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *User) GetUsers(ctx *fiber.Ctx) error {
	users, err := c.UserService.GetUsers(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(users)
}

func (c *User) GetUserById(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("userId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid userId: expect an integer")
	}

	user, err := c.UserService.GetUserById(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(user)
}

func (c *User) GetUserByEmail(ctx *fiber.Ctx) error {
	user, err := c.UserService.GetUserByEmail(ctx.UserContext(), ctx.Params("email"))
	if err != nil {
		return err
	}
	return ctx.JSON(user)
}

func (c *User) CreateUser(ctx *fiber.Ctx) error {
	var payload userPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request body: %s", err)
	}

	user, err := c.UserService.CreateUser(ctx.UserContext(), &model.User{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

func (c *User) UpdateUser(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("userId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid userId: expect an integer")
	}

	var payload userPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request body: %s", err)
	}

	err = c.UserService.UpdateUser(ctx.UserContext(), userId, &model.User{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *User) DeleteUser(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("userId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid userId: expect an integer")
	}

	if err := c.UserService.DeleteUser(ctx.UserContext(), userId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
