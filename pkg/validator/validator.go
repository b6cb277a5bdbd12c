// Package validator 注册gin binding使用的自定义校验规则
package validator

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	once    sync.Once
	isbnRe  = regexp.MustCompile(`^(\d{9}[\dXx]|\d{13})$`)
	sortRe  = regexp.MustCompile(`^[A-Za-z_]+(,(?i:asc|desc))?$`)
	initErr error
)

// Register 向gin的默认校验器注册自定义规则（只执行一次）
//
//	isbn:     10位或13位ISBN，允许连字符和空格分隔
//	notblank: 去除空白后不能为空
//	sortexpr: "field" 或 "field,ASC|DESC"
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if initErr = v.RegisterValidation("isbn", validateISBN); initErr != nil {
			return
		}
		if initErr = v.RegisterValidation("notblank", validateNotBlank); initErr != nil {
			return
		}
		initErr = v.RegisterValidation("sortexpr", validateSortExpr)
	})
	return initErr
}

// IsValidISBN 校验ISBN格式（供领域层复用）
func IsValidISBN(isbn string) bool {
	return isbnRe.MatchString(NormalizeISBN(isbn))
}

// NormalizeISBN 去掉ISBN中的分隔符
func NormalizeISBN(isbn string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(isbn))
}

func validateISBN(fl validator.FieldLevel) bool {
	return IsValidISBN(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateSortExpr(fl validator.FieldLevel) bool {
	return sortRe.MatchString(strings.ReplaceAll(fl.Field().String(), " ", ""))
}
