package events

import (
	"testing"

	"github.com/improvemycity/portal-go/models"
	"github.com/stretchr/testify/assert"
)

func TestHub_PublishReachesCategorySubscribers(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Publish(Event{Type: EventComplaintCreated, ComplaintID: 10, CategoryID: 1, Status: models.ComplaintStatusPending})

	select {
	case ev := <-ch:
		assert.Equal(t, EventComplaintCreated, ev.Type)
		assert.Equal(t, uint(10), ev.ComplaintID)
	default:
		t.Fatal("expected an event")
	}
}

func TestHub_OtherCategoryDoesNotReceive(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(2)
	defer cancel()

	hub.Publish(Event{Type: EventComplaintCreated, ComplaintID: 10, CategoryID: 1})

	select {
	case <-ch:
		t.Fatal("subscriber of another category must not receive the event")
	default:
	}
}

func TestHub_SlowConsumerDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	// Overfill the subscriber buffer; Publish must never block.
	for i := 0; i < 100; i++ {
		hub.Publish(Event{Type: EventComplaintCreated, ComplaintID: uint(i), CategoryID: 1})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	assert.Greater(t, received, 0)
	assert.Less(t, received, 100)
}

func TestHub_CancelRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe(1)
	assert.Equal(t, 1, hub.SubscriberCount(1))

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount(1))

	// Double cancel is a no-op.
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount(1))
}
