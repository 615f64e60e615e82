package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 欄位名稱取 json tag，錯誤表的 key 才會對上請求欄位
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct 依 validate tag 檢查所有欄位，回傳欄位錯誤表，通過時回傳 nil
// 所有欄位一次驗完才回傳，不會在第一個錯誤就中斷
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["payload"] = []string{err.Error()}
		return fieldErrors
	}
	for _, fe := range verrs {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fieldErrorMessage(fe))
	}
	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", fe.Field())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
