package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskhub/internal/model"
)

// RegisterValidators добавляет правило taskstatus, используемое в биндингах задач
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
			switch model.TaskStatus(fl.Field().String()) {
			case model.StatusTodo, model.StatusDoing, model.StatusDone:
				return true
			}
			return false
		})
	}
}
