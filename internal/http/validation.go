package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

// FieldError is one entry of the details list on a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// rootField is what gojsonschema reports as the field of object-level errors.
const rootField = "(root)"

var tagNameOnce sync.Once

// useJSONFieldNames makes validator report json/form names instead of Go field names.
func useJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return ""
		})
	})
}

// bindJSON validates the raw body against schema (when set) and then binds it
// into dst with gin's validator. On failure the 400 is already written.
func (s *Server) bindJSON(c *gin.Context, schema *gojsonschema.Schema, dst any) bool {
	raw, err := c.GetRawData()
	if err != nil {
		s.badRequest(c, []FieldError{{Field: "body", Message: "unreadable body"}})
		return false
	}

	if schema != nil {
		res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			s.badRequest(c, []FieldError{{Field: "body", Message: "malformed JSON"}})
			return false
		}
		if !res.Valid() {
			s.badRequest(c, schemaDetails(res))
			return false
		}
	}

	if err := binding.JSON.BindBody(raw, dst); err != nil {
		s.badRequest(c, bindingDetails(err, "body"))
		return false
	}
	return true
}

func (s *Server) bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		s.badRequest(c, bindingDetails(err, "query"))
		return false
	}
	return true
}

func schemaDetails(res *gojsonschema.Result) []FieldError {
	out := make([]FieldError, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		field := e.Field()
		if field == rootField {
			if p, ok := e.Details()["property"].(string); ok {
				field = p
			}
		}
		out = append(out, FieldError{Field: field, Message: e.Description()})
	}
	return out
}

func bindingDetails(err error, fallback string) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: fallback, Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "numeric":
		return "must contain only digits"
	case "email":
		return "must be a valid email address"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag() + " check"
}
