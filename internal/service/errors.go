package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when a note resolves but the requester is
	// not allowed to read it. The private and friend-only branches are
	// deliberately indistinguishable.
	ErrForbidden = errors.New("access to this note is forbidden")

	ErrSelfFriendRequest            = errors.New("you cannot send friend request to yourself")
	ErrAlreadyFriends               = errors.New("you are already friends with this user")
	ErrFriendRequestAlreadySent     = errors.New("you already sent a friend request to this user")
	ErrFriendRequestAlreadyReceived = errors.New("you already received a friend request from this user")
)
