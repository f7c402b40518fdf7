package service

import (
	"context"
	"fmt"

	"github.com/akarpov/notelink/internal/store"
	"github.com/akarpov/notelink/models"
)

// resolveAccess decides whether the requesting user may read a note that
// was resolved by slug.
//
// The rules, applied in order:
//  1. The owner always passes.
//  2. A deleted note is reported as missing, never as forbidden.
//  3. A private note denies everyone else.
//  4. A friend-only note requires an established friendship with the owner.
//  5. A public note grants read access.
//  6. A note with no flag set behaves as private.
//
// The private and friend-only denials both return ErrForbidden, so a
// caller cannot tell which rule rejected them.
func (n *noteService) resolveAccess(ctx context.Context, note models.Note, requesterID int64) error {
	if requesterID == note.OwnerID {
		return nil
	}

	if note.IsDeleted {
		return store.ErrNoteNotFound
	}

	switch {
	case note.IsPrivate:
		return ErrForbidden

	case note.IsFriendOnly:
		friends, err := n.friendRepository.AreFriends(ctx, requesterID, note.OwnerID)
		if err != nil {
			return fmt.Errorf("friendship check failed: %w", err)
		}
		if !friends {
			return ErrForbidden
		}
		return nil

	case note.IsPublic:
		return nil

	default:
		return ErrForbidden
	}
}
