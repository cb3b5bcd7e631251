package topic

import "fmt"

// pushRoot is the fixed namespace the cloud broker publishes push telemetry
// and command results under. It is part of the wire contract, not
// configuration -- changing it would desynchronize from the server.
const pushRoot = "oversea/res"

// Builder constructs the MQTT topic strings this client subscribes to.
// It exists mainly so a single userID substitution point is exercised by
// both the real subscribe call and its tests.
type Builder struct{}

// NewBuilder returns a Builder. It carries no state today, but keeping it a
// type rather than bare functions leaves room for a per-tenant root without
// changing every call site.
func NewBuilder() *Builder {
	return &Builder{}
}

// PushTopic returns the topic a given user's push channel is published on:
// "oversea/res/<userID>".
func (b *Builder) PushTopic(userID string) string {
	return fmt.Sprintf("%s/%s", pushRoot, userID)
}
