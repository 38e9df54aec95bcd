package redisx

import "time"

const (
	// idem:order:create:{Idempotency-Key} -> order id
	KeyIdemOrderCreate = "idem:order:create:%s"
)

var TTLIdempotency = 24 * time.Hour
