package registry

import (
	"fmt"
	"sync"

	"github.com/estatedesk/lead-notification-service/configs"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/channel"
)

// ChannelFactory builds a delivery channel from the loaded configuration.
type ChannelFactory func(cfg *configs.Config) (channel.Channel, error)

var (
	channelRegistry = make(map[string]ChannelFactory)
	registryMutex   sync.RWMutex
)

// RegisterChannelFactory registers a new channel factory. It is called from
// the init() of each channel package.
func RegisterChannelFactory(name string, factory ChannelFactory) error {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if _, exists := channelRegistry[name]; exists {
		return fmt.Errorf("channel factory already registered: %s", name)
	}
	channelRegistry[name] = factory
	return nil
}

// GetChannelFactory retrieves a channel factory by name.
func GetChannelFactory(name string) (ChannelFactory, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	factory, exists := channelRegistry[name]
	if !exists {
		return nil, fmt.Errorf("no channel factory registered for name: %s", name)
	}
	return factory, nil
}
