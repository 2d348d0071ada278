package review

import (
	"strings"

	"github.com/google/uuid"
)

// PlaceholderPrefix marks locally issued review identifiers. The upstream
// gateway never issues identifiers with this prefix, so a pending review is
// always recognizable for reconciliation matching.
const PlaceholderPrefix = "pending-"

func NewPlaceholderID() string {
	return PlaceholderPrefix + uuid.NewString()
}

func IsPlaceholderID(id string) bool {
	return strings.HasPrefix(id, PlaceholderPrefix)
}
