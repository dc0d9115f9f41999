package http_transport

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type structValidator struct {
	validate *validator.Validate
}

var _ fiber.StructValidator = &structValidator{}

func NewStructValidator() fiber.StructValidator {
	return &structValidator{validator.New(validator.WithRequiredStructEnabled())}
}

func (this *structValidator) Validate(out any) error {
	return this.validate.Struct(out)
}
