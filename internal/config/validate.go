package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spearit/dashboard/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the config rules
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true
			}
			d, err := time.ParseDuration(s)
			return err == nil && d >= 0
		})

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.New(errors.CodeInvalidConfig).Wrap(err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	return errors.New(errors.CodeInvalidConfig).
		WithDetail(strings.Join(problems, "; "))
}

// describe renders one field error with its yaml path, e.g.
// "server.addr: must be host:port".
func describe(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "required_if":
		msg = "is required when enabled"
	case "hostname_port":
		msg = "must be host:port"
	case "duration":
		msg = "must be a duration such as 30s or 5m"
	case "oneof":
		msg = "must be one of " + fe.Param()
	case "gte":
		msg = "must be at least " + fe.Param()
	case "startswith":
		msg = fmt.Sprintf("must start with %q", fe.Param())
	case "url":
		msg = "must be a URL"
	default:
		msg = "failed " + fe.Tag()
	}
	return fmt.Sprintf("%s: %s (got %v)", path, msg, fe.Value())
}
