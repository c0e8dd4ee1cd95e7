package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Placeholder values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

var validate = newValidator()

// newValidator reports fields by their environment variable name
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("envconfig"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks the loaded values against the validate tags on Config
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " must be set"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "min", "max", "gt", "gte":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must list at least %s entries", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s out of range: %v", fe.Field(), fe.Value())
	case "url":
		return fmt.Sprintf("%s is not a valid URL: %q", fe.Field(), fe.Value())
	case "required_with":
		return fmt.Sprintf("%s must be set together with %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}

// Warnings lists settings that load fine but look unsafe for the environment
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StorageBackend == StorageBackendPostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.UsesS3() && (c.S3AccessKeyID == "" || c.S3SecretAccessKey == "") {
		warnings = append(warnings, "S3_BUCKET is set without S3 credentials - the default AWS credential chain will be used")
	}
	if c.StorageBackend == StorageBackendMemory && c.Environment == EnvironmentProduction {
		warnings = append(warnings, "STORAGE_BACKEND=memory in production - all progress is lost on restart")
	}
	return warnings
}
