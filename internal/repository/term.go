// internal/repository/term.go
package repository

import (
	"github.com/google/uuid"
)

type TermKind int

const (
	// TermID routes the lookup by primary key. There is no fallback: an
	// id-shaped term that matches no row is a miss even if some product
	// carries that string as its title.
	TermID TermKind = iota
	// TermSlugOrTitle routes the lookup by lower-cased slug or
	// case-insensitive title.
	TermSlugOrTitle
)

// Term is the parsed form of a lookup string. Dispatch branches on Kind
// rather than re-checking the raw value's shape.
type Term struct {
	Kind  TermKind
	ID    uuid.UUID
	Value string
}

func ParseTerm(raw string) Term {
	if id, err := uuid.Parse(raw); err == nil {
		return Term{Kind: TermID, ID: id, Value: raw}
	}
	return Term{Kind: TermSlugOrTitle, Value: raw}
}
