package services

import (
	"log"

	"arabyprompts/internal/repositories"
)

// ChangeRoutingPrefix prefixes the collection name in published routing keys.
const ChangeRoutingPrefix = "store."

// EventPublisher sends an event payload under a routing key.
type EventPublisher interface {
	PublishEvent(routingKey string, payload interface{}) error
}

// PublishChanges forwards every store change event to pub. Publish failures
// are logged and never affect the mutation that caused them.
func PublishChanges(store *repositories.EntityStore, pub EventPublisher) {
	store.Subscribe(func(ev repositories.ChangeEvent) {
		if err := pub.PublishEvent(ChangeRoutingPrefix+ev.Collection, ev); err != nil {
			log.Printf("Failed to publish %s change event: %v", ev.Collection, err)
		}
	})
}
