package listener

import (
	"log"

	"carmarket-service/event"
)

var (
	ApiChannel = make(chan event.EventChannelData)
)

// Api drains events addressed to this service. Nothing acts on them yet;
// the backoffice consumes the queues this service publishes to.
func Api() {
	for e := range ApiChannel {
		log.Printf("api event received: %s (%d bytes)", e.Action, len(e.Data))
	}
}
