package validator

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
)

// gin默认使用binding tag，这里统一换成validate tag，并支持翻译错误信息
type defaultValidator struct {
	once     sync.Once
	language string
	validate *validator.Validate
	trans    ut.Translator
}

var _ binding.StructValidator = (*defaultValidator)(nil)

var (
	lazyOnce sync.Once
	instance *defaultValidator
)

// LazyInitGinValidator 替换gin的默认validator
func LazyInitGinValidator(language string) {
	lazyOnce.Do(func() {
		instance = &defaultValidator{language: language}
		binding.Validator = instance
	})
}

func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.ValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		v.lazyInit()
		if err := v.validate.Struct(obj); err != nil {
			return v.translate(err)
		}
	}
	return nil
}

func (v *defaultValidator) Engine() interface{} {
	v.lazyInit()
	return v.validate
}

func (v *defaultValidator) lazyInit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("validate")

		// 错误信息里优先使用label tag，其次是json字段名
		v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			if label := field.Tag.Get("label"); label != "" {
				return label
			}
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		enT := en.New()
		uni := ut.New(enT, enT, zh.New())
		if strings.HasPrefix(strings.ToLower(v.language), "zh") {
			v.trans, _ = uni.GetTranslator("zh")
			_ = zhTranslations.RegisterDefaultTranslations(v.validate, v.trans)
		} else {
			v.trans, _ = uni.GetTranslator("en")
			_ = enTranslations.RegisterDefaultTranslations(v.validate, v.trans)
		}
	})
}

// ValidationError 翻译后的校验错误
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func (v *defaultValidator) translate(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = fe.Translate(v.trans)
	}
	return &ValidationError{Fields: fields}
}
