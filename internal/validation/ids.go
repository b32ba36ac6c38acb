package validation

import (
	"strconv"
	"strings"

	"github.com/deppfellow/hotel-booking/internal/errs"
)

// ParseID parses a positive integer path id. Anything else is a 400
// "Invalid ID format".
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError("Invalid ID format", true, nil, nil, nil)
	}
	return id, nil
}
