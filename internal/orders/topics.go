package orders

const (
	TopicOrderCreated = "order.created"
	TopicOrderUpdated = "order.updated"
	TopicOrderDeleted = "order.deleted"
)

// Topics lists every topic this service publishes to.
var Topics = []string{TopicOrderCreated, TopicOrderUpdated, TopicOrderDeleted}
