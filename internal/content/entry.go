package content

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/go-playground/validator/v10"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/format"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/model"
)

// Date formats accepted in frontmatter, tried in order.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RejectionError reports a collection entry that does not match the post schema.
type RejectionError struct {
	Path   string
	Reason string
	Err    error
}

func (e *RejectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *RejectionError) Unwrap() error { return e.Err }

// rawFrontmatter mirrors the document as written. Title and description are
// decoded untyped because yaml.v2 would turn any scalar into a string.
type rawFrontmatter struct {
	Title           interface{} `yaml:"title" toml:"title" validate:"required"`
	Description     interface{} `yaml:"description" toml:"description" validate:"required"`
	Date            interface{} `yaml:"date" toml:"date" validate:"required"`
	Tags            []string    `yaml:"tags" toml:"tags"`
	Image           string      `yaml:"image" toml:"image"`
	ImageAlt        string      `yaml:"imageAlt" toml:"imageAlt"`
	RelatedProjects []string    `yaml:"relatedProjects" toml:"relatedProjects"`
	Draft           bool        `yaml:"draft" toml:"draft"`
	Slug            string      `yaml:"slug" toml:"slug"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ParseEntry builds a post from a collection document. It returns either a
// complete post or a *RejectionError, never a partial post.
func ParseEntry(path, slug string, src []byte, r *Renderer) (model.Post, error) {
	var raw rawFrontmatter
	body, err := frontmatter.MustParse(bytes.NewReader(src), &raw)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return model.Post{}, &RejectionError{Path: path, Reason: "missing frontmatter"}
		}
		return model.Post{}, &RejectionError{Path: path, Reason: "invalid frontmatter", Err: err}
	}

	if err := validate.Struct(raw); err != nil {
		return model.Post{}, &RejectionError{Path: path, Reason: describe(err)}
	}

	title, err := requireString("title", raw.Title)
	if err != nil {
		return model.Post{}, &RejectionError{Path: path, Reason: "invalid field", Err: err}
	}
	description, err := requireString("description", raw.Description)
	if err != nil {
		return model.Post{}, &RejectionError{Path: path, Reason: "invalid field", Err: err}
	}

	date, err := coerceDate(raw.Date)
	if err != nil {
		return model.Post{}, &RejectionError{Path: path, Reason: "invalid date", Err: err}
	}

	html, err := r.Render(body)
	if err != nil {
		return model.Post{}, &RejectionError{Path: path, Reason: "render markdown", Err: err}
	}

	if raw.Slug != "" {
		slug = strings.Trim(raw.Slug, "/")
	}
	if slug == "" {
		return model.Post{}, &RejectionError{Path: path, Reason: "empty slug"}
	}

	return model.Post{
		Slug:       slug,
		SourcePath: path,
		Data: model.Frontmatter{
			Title:           title,
			Description:     description,
			Date:            date,
			Tags:            orEmpty(raw.Tags),
			Image:           raw.Image,
			ImageAlt:        raw.ImageAlt,
			RelatedProjects: orEmpty(raw.RelatedProjects),
			Draft:           raw.Draft,
		},
		Body:        string(body),
		ContentHTML: html,
		ReadingTime: format.ReadingTime(string(body)),
	}, nil
}

func requireString(field string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", field, v)
	}
	return s, nil
}

func coerceDate(v interface{}) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateFormats {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse %q, use YYYY-MM-DD or RFC3339", d)
	default:
		return time.Time{}, fmt.Errorf("expected a date, got %T", v)
	}
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return "missing required field(s): " + strings.Join(fields, ", ")
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
