package ticket

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// RegisterValidators wires the ticketstatus rule into gin's binding engine so
// request bodies are rejected before they reach a use case.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
			return vo.TicketStatus(fl.Field().String()).IsValid()
		})
	}
}
