package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsRequestValid validates the struct tags of req. On failure it returns a
// message naming every failing field and tag.
func IsRequestValid(req any) (bool, string) {
	err := validate.Struct(req)
	if err == nil {
		return true, ""
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false, err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}
	return false, strings.Join(msgs, "; ")
}
