package chat

import (
	"fmt"

	"travelmate/internal/domain/errs"
)

var ErrInvalidRole = fmt.Errorf("%w: role must be user or bot", errs.ErrValidation)
