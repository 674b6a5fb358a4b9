package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrors バリデーションエラーをレスポンス用の構造化リストに変換
func ValidationErrors(err error) []gin.H {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []gin.H{{"msg": err.Error()}}
	}

	result := make([]gin.H, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		result = append(result, gin.H{
			"param": fieldError.Field(),
			"msg":   validationMessage(fieldError),
		})
	}
	return result
}

// validationMessage 違反したルールからメッセージを組み立てる
func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fieldError.Field())
	case "email":
		return "Email format should be correct."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", fieldError.Field(), fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fieldError.Field())
	}
}
