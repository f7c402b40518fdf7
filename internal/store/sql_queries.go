package store

const (
	createUser = `INSERT INTO users (name, email, username, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, username, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT id, name, email, username, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT id, name, email, username, password_hash, created_at, updated_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, name, email, username, password_hash, created_at, updated_at
    FROM users
    WHERE id = $1;`

	createSession = `INSERT INTO sessions (id, user_id, expires_at)
    VALUES ($1, $2, $3);`

	getActiveSession = `SELECT id, user_id, expires_at, revoked, created_at
    FROM sessions
    WHERE id = $1 AND revoked = false AND expires_at > now();`

	revokeSession = `UPDATE sessions
    SET revoked = true
    WHERE id = $1 AND revoked = false;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= now();`

	createFriendRequest = `INSERT INTO friend_requests (sender_id, receiver_id)
    VALUES ($1, $2)
    RETURNING id, sender_id, receiver_id, created_at;`

	findFriendRequest = `SELECT id, sender_id, receiver_id, created_at
    FROM friend_requests
    WHERE sender_id = $1 AND receiver_id = $2;`

	deleteFriendRequest = `DELETE FROM friend_requests
    WHERE sender_id = $1 AND receiver_id = $2;`

	createFriendship = `INSERT INTO friendships (user_lo, user_hi)
    VALUES ($1, $2)
    RETURNING user_lo, user_hi, created_at;`

	friendshipExists = `SELECT EXISTS (
        SELECT 1 FROM friendships WHERE user_lo = $1 AND user_hi = $2
    );`

	deleteFriendship = `DELETE FROM friendships
    WHERE user_lo = $1 AND user_hi = $2;`

	listFriendIDs = `SELECT CASE WHEN user_lo = $1 THEN user_hi ELSE user_lo END
    FROM friendships
    WHERE user_lo = $1 OR user_hi = $1
    ORDER BY 1;`
)
