package wxpay

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tradeNoPattern 商户订单号 / 退款单号：6-32 位数字、大小写字母、_-|*
var tradeNoPattern = regexp.MustCompile(`^[0-9A-Za-z_\-|*]{6,32}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 错误信息里使用 json 字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("tradeno", func(fl validator.FieldLevel) bool {
		return tradeNoPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		return isRFC3339(fl.Field().String())
	})
	return v
}

// validateRequest 校验请求结构体，返回第一个不合法字段
func validateRequest(req any) error {
	if req == nil || (reflect.ValueOf(req).Kind() == reflect.Ptr && reflect.ValueOf(req).IsNil()) {
		return ErrNilRequest
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return WrapError(ErrCodeInvalidParam, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()), err)
	}
	return WrapError(ErrCodeInvalidParam, "invalid request", err)
}
