package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck_NoConnection(t *testing.T) {
	p := NewAlertPublisher(nil)

	status := p.HealthCheck()
	assert.False(t, status.IsHealthy)
	assert.Equal(t, AlertQueue, status.Queue)
	assert.Zero(t, status.MessagesPublished)
	assert.Zero(t, status.MessagesFailed)
}
