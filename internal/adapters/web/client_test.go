package web

import (
	"testing"

	"github.com/corey/operator-gui/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AgainstServer(t *testing.T) {
	inv := &mockInvoker{}
	_, ts := setupTestServer(t, inv, writePage(t, testPage))
	c := NewClient(ts.URL)

	assert.True(t, c.Ping())

	h, err := c.Health()
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "operator-cli", h.Command)

	require.NoError(t, c.Invoke(ports.ActionStart))
	require.NoError(t, c.Invoke(ports.ActionStop))
	assert.Equal(t, []ports.Action{ports.ActionStart, ports.ActionStop}, inv.calls())
}

func TestClient_NoServer(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")

	assert.False(t, c.Ping())
	_, err := c.Health()
	assert.Error(t, err)
	assert.Error(t, c.Invoke(ports.ActionStart))
}

func TestClient_BadAction(t *testing.T) {
	_, ts := setupTestServer(t, &mockInvoker{}, writePage(t, testPage))

	err := NewClient(ts.URL).Invoke(ports.Action("restart"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
