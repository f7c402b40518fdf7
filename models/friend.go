package models

import "time"

// Friendship is the symmetric relation between two users, stored once as a
// canonicalized pair: UserLo < UserHi regardless of who initiated it.
// Canonical ordering makes symmetric-membership checks a single lookup
// instead of a dual-direction query.
type Friendship struct {
	UserLo    int64     `json:"user_lo"`
	UserHi    int64     `json:"user_hi"`
	CreatedAt time.Time `json:"created_at"`
}

// CanonicalPair orders two user ids into the (lo, hi) form used by the
// friendships table.
func CanonicalPair(a, b int64) (lo, hi int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// TableName returns the name of the database table
// associated with the Friendship model.
func (f Friendship) TableName() string {
	return "friendships"
}

// FriendRequest is the directed pending relation from sender to receiver.
// It exists only between send and accept/reject/cancel; acceptance replaces
// it with a Friendship.
type FriendRequest struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the FriendRequest model.
func (f FriendRequest) TableName() string {
	return "friend_requests"
}

// FriendsOverview is the payload of the friends index: established
// friendships plus pending requests in both directions.
type FriendsOverview struct {
	FriendList        []User          `json:"friendList"`
	FriendRequestList []FriendRequest `json:"friendRequestList"`
	FriendSentList    []FriendRequest `json:"friendSentList"`
}
