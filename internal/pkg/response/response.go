package response

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/service"
	stdjson "encoding/json"
	"errors"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误，未知错误只记录日志，不向外暴露细节
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, err.Error())
		return
	}

	if isJSONError(err) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	var numError *strconv.NumError
	if errors.As(err, &numError) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	if code, msg, ok := service.ResolveError(err); ok {
		Fail(c, code, msg)
		return
	}

	log.ErrorContext(c.Request.Context(), "Error", "err", err)
	Fail(c, InternalServerError, service.UnExpectedError.Error())
}

// isJSONError gin 默认用标准库解码请求体，go-json 构建标签下则是 go-json 的错误类型
func isJSONError(err error) bool {
	var unmarshalTypeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	var stdUnmarshalTypeError *stdjson.UnmarshalTypeError
	var stdSyntaxError *stdjson.SyntaxError
	return errors.As(err, &unmarshalTypeError) ||
		errors.As(err, &syntaxError) ||
		errors.As(err, &stdUnmarshalTypeError) ||
		errors.As(err, &stdSyntaxError)
}
