package validator

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"article-generator/internal/domain"
)

const (
	msgIdeaRequired        = "Idea is required"
	msgIdeaNotString       = "Idea must be a string"
	msgIdeaLength          = "Idea must be between 100 and 5000 characters"
	msgArticleTypeRequired = "Article type is required"
	msgArticleTypeString   = "Article type must be a string"
	msgArticleTypeInvalid  = "Invalid article type"
)

var validArticleTypes = func() []interface{} {
	out := make([]interface{}, len(domain.ValidArticleTypes))
	for i, t := range domain.ValidArticleTypes {
		out[i] = string(t)
	}
	return out
}()

// Result is the outcome of validating a request payload. Errors keep the
// order the checks ran in.
type Result struct {
	Valid  bool
	Errors []string
}

// Validator provides validation methods for incoming payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerationRequest checks a decoded JSON object. The required,
// bounds and enumeration checks run independently, so one field can report
// more than one error.
func (v *Validator) ValidateGenerationRequest(payload map[string]interface{}) Result {
	var errs []string
	add := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	idea, ideaIsString := payload["idea"].(string)
	add(validation.Validate(payload["idea"],
		validation.Required.Error(msgIdeaRequired),
		validation.By(stringRule(msgIdeaNotString)),
	))
	if ideaIsString && idea != "" {
		add(validation.Validate(idea,
			validation.RuneLength(domain.MinIdeaLength, domain.MaxIdeaLength).Error(msgIdeaLength),
		))
	}

	articleType, typeIsString := payload["articleType"].(string)
	add(validation.Validate(payload["articleType"],
		validation.Required.Error(msgArticleTypeRequired),
		validation.By(stringRule(msgArticleTypeString)),
	))
	if typeIsString && articleType != "" {
		add(validation.Validate(articleType,
			validation.In(validArticleTypes...).Error(msgArticleTypeInvalid),
		))
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidatePublishRequest validates an article submitted for publishing.
func (v *Validator) ValidatePublishRequest(r *domain.PublishRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Headline,
			validation.Required.Error("is required"),
			validation.RuneLength(1, 300).Error("must be at most 300 characters"),
		),
		validation.Field(&r.Article,
			validation.Required.Error("is required"),
			validation.RuneLength(1, 20000).Error("must be at most 20000 characters"),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("is required"),
			validation.RuneLength(1, 2000).Error("must be at most 2000 characters"),
		),
		validation.Field(&r.ArticleType,
			validation.In(validArticleTypes...).Error("is not a recognized article type"),
		),
	)
}

// stringRule rejects non-string values. Nil is left to the Required rule.
func stringRule(message string) validation.RuleFunc {
	return func(value interface{}) error {
		if value == nil {
			return nil
		}
		if _, ok := value.(string); !ok {
			return validation.NewError("not_a_string", message)
		}
		return nil
	}
}

// ErrorMessages flattens ozzo validation errors into "field: reason" strings
// sorted by field.
func ErrorMessages(err error) []string {
	if err == nil {
		return nil
	}

	ve, ok := err.(validation.Errors)
	if !ok {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, field+": "+ve[field].Error())
	}
	return messages
}
