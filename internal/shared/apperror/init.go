package apperror

import (
	"reflect"
	"strings"

	"safety-api/internal/shared/optional"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init registers the json tag name with Gin's validator so that
// validation errors report field names the way clients sent them
// (e.g. `completion_date`, not `CompletionDate`), and teaches the
// validator to look through optional update fields.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(optional.Underlying,
			optional.Value[string]{}, optional.Value[int]{})
	}
}
