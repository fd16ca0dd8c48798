package params

// Client-facing 400 bodies. Existing consumers match on these strings, so
// they must stay byte-identical.
const (
	ErrTextUser = "Invalid or missing `user` param; must be a valid osu! user ID (default) or username (if `userMode` is set to `username`)"

	ErrTextMode = "Invalid or missing `mode` param; must be a valid osu! game mode; 0=osu!, 1=taiko, 2=ctb, 3=mania"

	ErrTextLimit = "Invalid `limit` param; must be a non-zero integer greater than 0 and less than or equal to 10000"

	ErrTextUserNotFound = "User not found; check the user id provided"
)
