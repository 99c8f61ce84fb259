package gateway

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"storefront-backend/internal/models"
)

var validate = validator.New()

// Bind decodes the JSON body into dst and checks its validate tags. Any
// failed rule is reported as a 400 carrying missingMessage, before the
// handler touches the store.
func Bind(req *Request, dst any, missingMessage string) error {
	if err := decode(req.Body, dst); err != nil {
		return err
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return BadRequest(missingMessage)
		}
		return err
	}
	return nil
}

func decode(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		if errors.Is(err, models.ErrInvalidID) {
			return BadRequest("Invalid id")
		}
		return BadRequest("Invalid JSON body")
	}
	return nil
}
