package handlers

import (
	"sync"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the enum tags used by the DTO binding rules on
// gin's validator engine. It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("itemkind", func(fl validator.FieldLevel) bool {
			return domain.ItemKind(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("itemstatus", func(fl validator.FieldLevel) bool {
			return domain.ItemStatus(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("membershipclass", func(fl validator.FieldLevel) bool {
			return domain.MembershipClass(fl.Field().String()).IsValid()
		})
	})
}
