package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"wired-people-backend/lib/apperrors"
	apimodels "wired-people-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("could not read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError converts handler errors into the response envelope. Typed
// errors keep their message and map to a matching status; anything else
// is masked behind fallbackMsg so internals never leak to the browser.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, fallbackMsg string) error {
	kind := apperrors.KindOf(err)
	status := statusForKind(kind)
	message := fallbackMsg
	if kind != 0 {
		message = err.Error()
	}
	if status >= fiber.StatusInternalServerError {
		logger.WithError(err).Error(fallbackMsg)
	} else {
		logger.WithError(err).Warn(fallbackMsg)
	}
	return ctx.Status(status).JSON(apimodels.NewError(message))
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindPreconditionFailed:
		return fiber.StatusPreconditionFailed
	case apperrors.KindAuthenticationRequired:
		return fiber.StatusUnauthorized
	case apperrors.KindConflict:
		return fiber.StatusConflict
	case apperrors.KindUpstream:
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}
