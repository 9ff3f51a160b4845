// Package validate registers the custom binding tags used by request types.
package validate

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"kentkonut/internal/model"
	"kentkonut/internal/utils"
)

var (
	once    sync.Once
	initErr error
)

// Register installs the slug and moduletype tags on gin's validator and reports
// field names by their json tag. Safe to call more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		if initErr = v.RegisterValidation("slug", isSlug); initErr != nil {
			return
		}
		initErr = v.RegisterValidation("moduletype", isModuleType)
	})
	return initErr
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	return name
}

func isSlug(fl validator.FieldLevel) bool {
	return utils.IsSlug(fl.Field().String())
}

func isModuleType(fl validator.FieldLevel) bool {
	return model.ModuleType(fl.Field().String()).Valid()
}
