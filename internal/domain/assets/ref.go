package assets

import (
	"regexp"
	"strconv"
	"strings"
)

// References arrive in two historical shapes: the numeric row id from the
// auto-increment era, and the UUID embedded in the storage key. Both must
// keep working indefinitely; no migration ever rewrote old references.
type RefKind int

const (
	RefByID RefKind = iota
	RefByKey
)

// Ref is a parsed asset reference. Exactly one of ID/UUID is meaningful,
// selected by Kind.
type Ref struct {
	Kind RefKind
	ID   uint
	UUID string
}

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ParseRef classifies a raw reference string once, at the API boundary.
// UUID shape wins over numeric parse; anything else is ErrInvalidReference.
func ParseRef(raw string) (Ref, error) {
	raw = strings.TrimSpace(raw)

	if uuidPattern.MatchString(raw) {
		return Ref{Kind: RefByKey, UUID: strings.ToLower(raw)}, nil
	}

	// Any base-10 integer is an id lookup. Ids that no row can ever carry
	// still classify as valid references and simply fail to resolve.
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return Ref{Kind: RefByID, ID: uint(n)}, nil
	}

	return Ref{}, ErrInvalidReference
}
