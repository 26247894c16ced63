package orderControllers

import (
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

// Handlers register and unregister concurrently while broadcasts range
// over the registry; the map must survive that without corruption.
func TestClientRegistryConcurrentAccess(t *testing.T) {
	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				conn := &websocket.Conn{}
				registerClient(conn)
				unregisterClient(conn)
			}
		}()
	}
	wg.Wait()

	wsMu.Lock()
	defer wsMu.Unlock()
	assert.Empty(t, wsClients)
}
