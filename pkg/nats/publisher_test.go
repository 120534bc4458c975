package nats

import (
	"testing"

	"style-weaver-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	evt := events.BaseEvent{Type: "STYLE_BOARD_GENERATED"}
	assert.Equal(t, "events.STYLE_BOARD_GENERATED", Subject(evt))
}
