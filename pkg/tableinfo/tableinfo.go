package tableinfo

const (
	TweetsTableName = "tweets"

	TweetIDColumn        = "id"
	TweetTextColumn      = "text"
	TweetUserIDColumn    = "user_id"
	TweetCreatedAtColumn = "created_at"
)

const (
	UsersTableName = "users"

	UserIDColumn        = "id"
	UserNameColumn      = "name"
	UserCreatedAtColumn = "created_at"
)
