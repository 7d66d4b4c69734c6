package eventpubsub

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/index-predictor/src/models"
)

const StageCompletedTopic = "pipeline:stage-completed"

// StageBus delivers pipeline stage events to subscribers synchronously, in subscription order.
type StageBus struct {
	bus EventBus.Bus
}

// Publish is a no-op on a nil bus.
func (b *StageBus) Publish(event models.StageEvent) {
	if b == nil {
		return
	}

	b.bus.Publish(StageCompletedTopic, event)
}

func (b *StageBus) Subscribe(callbackFn func(models.StageEvent)) error {
	if err := b.bus.Subscribe(StageCompletedTopic, callbackFn); err != nil {
		return fmt.Errorf("StageBus.Subscribe: %w", err)
	}

	log.Debugf("Subscribed to topic %s", StageCompletedTopic)
	return nil
}

func NewStageBus() *StageBus {
	return &StageBus{
		bus: EventBus.New(),
	}
}
