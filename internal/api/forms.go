package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/foldertasks/internal/api/shared"
	"github.com/phrazzld/foldertasks/internal/domain"
)

// errMalformedBody marks a request body that could not be decoded at all.
var errMalformedBody = errors.New("malformed request body")

// CreateTaskRequest is the payload of POST /folders/{folder}/tasks/create.
type CreateTaskRequest struct {
	Title   string `form:"title"    json:"title"    validate:"required,max=100"`
	DueDate string `form:"due_date" json:"due_date" validate:"required,datetime=2006-01-02,notpast"`
}

// EditTaskRequest is the payload of POST /folders/{folder}/tasks/{task}/edit.
type EditTaskRequest struct {
	Title   string `form:"title"    json:"title"    validate:"required,max=100"`
	Status  string `form:"status"   json:"status"   validate:"required,oneof=not_started in_progress done"`
	DueDate string `form:"due_date" json:"due_date" validate:"required,datetime=2006-01-02"`
}

// FolderRequest is the payload of POST /folders/create.
type FolderRequest struct {
	Title string `form:"title" json:"title" validate:"required,max=20"`
}

// CredentialsRequest is the payload of the login and register forms.
type CredentialsRequest struct {
	Email    string `form:"email"    json:"email"    validate:"required,email"`
	Password string `form:"password,raw" json:"password" validate:"required,min=8,max=72"`
}

// FormDecoder decodes form posts or JSON bodies into request structs and
// validates them.
type FormDecoder struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewFormDecoder creates a FormDecoder. now is the clock used by the notpast
// rule; nil means time.Now.
func NewFormDecoder(now func() time.Time) *FormDecoder {
	if now == nil {
		now = time.Now
	}
	d := &FormDecoder{validate: validator.New(), now: now}

	d.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// ALLOW-PANIC: the rule name is a constant, registration only fails on an empty name
	if err := d.validate.RegisterValidation("notpast", d.notPast); err != nil {
		panic(err)
	}
	return d
}

// notPast accepts dates of today or later. Unparseable values pass here and
// are reported by the datetime rule.
func (d *FormDecoder) notPast(fl validator.FieldLevel) bool {
	due, err := time.Parse(domain.DueDateLayout, fl.Field().String())
	if err != nil {
		return true
	}
	return !due.Before(domain.DateOf(d.now().UTC()))
}

// Decode fills dst from the request body and validates it. A body that
// cannot be decoded yields an error wrapping errMalformedBody; failed rules
// yield a map of per-field messages and an error wrapping domain.ErrValidation.
func (d *FormDecoder) Decode(w http.ResponseWriter, r *http.Request, dst any) (map[string]string, error) {
	if shared.IsJSONRequest(r) {
		if err := shared.DecodeJSON(w, r, dst); err != nil {
			return nil, fmt.Errorf("%w: %w", errMalformedBody, err)
		}
	} else {
		if err := shared.ParseForm(w, r); err != nil {
			return nil, fmt.Errorf("%w: %w", errMalformedBody, err)
		}
		bindForm(r, dst)
	}

	return d.Validate(dst)
}

// Validate runs the struct rules of v and returns per-field messages.
func (d *FormDecoder) Validate(v any) (map[string]string, error) {
	err := d.validate.Struct(v)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}

	messages := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages[fe.Field()] = fmt.Sprintf("%s %s", fieldLabel(fe.Field()), getValidationTagMessage(fe.Tag(), fe.Param()))
	}
	return messages, fmt.Errorf("%w: %w", domain.ErrValidation, fieldErrs)
}

// bindForm copies posted values into the string fields of dst that carry a
// form tag. Values are trimmed of surrounding whitespace unless the tag has
// the raw option.
func bindForm(r *http.Request, dst any) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, opts, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" || field.Type.Kind() != reflect.String || !v.Field(i).CanSet() {
			continue
		}
		value := r.PostForm.Get(name)
		if opts != "raw" {
			value = strings.TrimSpace(value)
		}
		v.Field(i).SetString(value)
	}
}

// fieldMessages turns a service validation failure into form messages.
func fieldMessages(err error) map[string]string {
	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) && domainErr.Field != "" {
		return map[string]string{
			domainErr.Field: fmt.Sprintf("%s %s", fieldLabel(domainErr.Field), domainErr.Message),
		}
	}
	return map[string]string{"form": SanitizeValidationError(err)}
}
