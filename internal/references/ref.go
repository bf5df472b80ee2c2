// Package references parses document references such as
// Actor.<id>.Item.<itemID> and resolves them against stored documents
package references

import (
	"strings"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Kind is the document type a reference points at
type Kind string

const (
	KindActor     Kind = "Actor"
	KindItem      Kind = "Item"
	KindMacro     Kind = "Macro"
	KindRollTable Kind = "RollTable"
)

// Ref is a parsed reference. OwnerID is set for embedded items only.
type Ref struct {
	Kind    Kind
	ID      string
	OwnerID string
}

// Parse splits a reference string. Accepted forms are Actor.<id>,
// Actor.<id>.Item.<itemID>, Macro.<id> and RollTable.<id>.
func Parse(s string) (Ref, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	for _, p := range parts {
		if p == "" {
			return Ref{}, dnderr.InvalidArgumentf("malformed reference %q", s)
		}
	}

	switch {
	case len(parts) == 2:
		switch kind := Kind(parts[0]); kind {
		case KindActor, KindMacro, KindRollTable:
			return Ref{Kind: kind, ID: parts[1]}, nil
		}
	case len(parts) == 4 && Kind(parts[0]) == KindActor && Kind(parts[2]) == KindItem:
		return Ref{Kind: KindItem, ID: parts[3], OwnerID: parts[1]}, nil
	}
	return Ref{}, dnderr.InvalidArgumentf("unsupported reference %q", s)
}

// MustParse is Parse for references known to be valid
func MustParse(s string) Ref {
	ref, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// String formats the reference back into its canonical form
func (r Ref) String() string {
	if r.Kind == KindItem {
		return string(KindActor) + "." + r.OwnerID + "." + string(KindItem) + "." + r.ID
	}
	return string(r.Kind) + "." + r.ID
}

// DocumentID is the id of the stored document holding the reference:
// the owning actor for items
func (r Ref) DocumentID() string {
	if r.Kind == KindItem {
		return r.OwnerID
	}
	return r.ID
}

// ActorRef builds an Actor.<id> reference
func ActorRef(id string) string {
	return Ref{Kind: KindActor, ID: id}.String()
}

// ItemRef builds an Actor.<owner>.Item.<id> reference
func ItemRef(ownerID, itemID string) string {
	return Ref{Kind: KindItem, ID: itemID, OwnerID: ownerID}.String()
}
