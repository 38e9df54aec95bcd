package users

const (
	TopicUserCreated = "user.created"
	TopicUserUpdated = "user.updated"
	TopicUserDeleted = "user.deleted"
)

var Topics = []string{TopicUserCreated, TopicUserUpdated, TopicUserDeleted}
