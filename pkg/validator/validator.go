package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// shard.realm.num, 例如 0.0.1001
var accountIDPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Init 在 gin 自带的 validator 上注册自定义规则
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = Register(v)
	}
}

// Register 注册 hedera_account 规则
func Register(v *validator.Validate) error {
	return v.RegisterValidation("hedera_account", func(fl validator.FieldLevel) bool {
		return IsAccountID(fl.Field().String())
	})
}

// IsAccountID 是否为 shard.realm.num 格式
func IsAccountID(s string) bool {
	return accountIDPattern.MatchString(s)
}

// GetErrorMsg 将校验错误翻译为可读信息
func GetErrorMsg(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var errMsgs []string
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			switch tag {
			case "required":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不能为空", field))
			case "min":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 至少为 %s", field, param))
			case "max":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不能超过 %s", field, param))
			case "oneof":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 [%s] 之一", field, param))
			case "hedera_account":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 shard.realm.num 格式", field))
			default:
				errMsgs = append(errMsgs, fmt.Sprintf("%s 校验失败 (%s)", field, tag))
			}
		}
		return strings.Join(errMsgs, "; ")
	}
	return "请求参数错误"
}
