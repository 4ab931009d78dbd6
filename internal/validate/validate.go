// ABOUTME: Input validation for login and product forms
// ABOUTME: Wraps go-playground/validator with the catalog's field rules and friendly messages

package validate

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxThumbnailSize caps uploaded product images at 5MB
const MaxThumbnailSize = 5 << 20

var titleChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.,!?]+$`)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the json field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("titlechars", func(fl validator.FieldLevel) bool {
		return titleChars.MatchString(fl.Field().String())
	})

	return v
}

// Credentials are the login form fields
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProductFields are the create/edit form fields shared by both modes
type ProductFields struct {
	Title       string `json:"title" validate:"required,min=3,max=100,titlechars"`
	Description string `json:"description" validate:"required,min=10,max=1000"`
}

// FieldError ties a message to the form field it belongs to
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Login checks the credential fields and returns one error per bad field
func Login(c Credentials) []FieldError {
	return check(c)
}

// Product checks the title and description fields
func Product(p ProductFields) []FieldError {
	return check(p)
}

func check(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var out []FieldError
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			out = append(out, FieldError{Field: e.Field(), Message: message(e)})
		}
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "titlechars":
		return "only letters, numbers, spaces, and basic punctuation are allowed"
	default:
		return "invalid value"
	}
}

// Thumbnail checks that a path points at an acceptable product image:
// it must exist, be jpeg/png/webp by extension, and stay under 5MB
func Thumbnail(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read thumbnail: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("thumbnail is a directory: %s", path)
	}

	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	if !allowedImageTypes[mediaType] {
		return fmt.Errorf("unsupported image type %q, use jpeg, png, or webp", filepath.Ext(path))
	}

	if info.Size() > MaxThumbnailSize {
		return fmt.Errorf("thumbnail is %dMB, the limit is 5MB", info.Size()>>20)
	}
	return nil
}
