package endpoint

import (
	"fmt"
	"strconv"
)

// Transport identifies the message-bus transport of a subscriber endpoint.
type Transport string

const (
	// TransportTCP addresses each publisher instance over host:port.
	TransportTCP Transport = "zmq_tcp"
	// TransportIPC addresses publishers through a shared local socket directory.
	TransportIPC Transport = "zmq_ipc"
)

const labelPrefix = "SUBSCRIBER_default"

// Config carries the inputs of subscriber endpoint resolution.
type Config struct {
	// InstanceCount is the number of upstream publisher replicas. Must be >= 1.
	InstanceCount int
	// BasePort is the publish port of the first (or only) instance.
	BasePort int
	// UpstreamName is the service-name prefix of the publishers.
	UpstreamName string
	// IPCEnabled selects the IPC transport instead of TCP.
	IPCEnabled bool
	// SocketDir is the shared socket directory used when IPCEnabled is set.
	SocketDir string
}

// Entry is one resolved subscriber binding.
type Entry struct {
	Label     string
	Address   string
	Transport Transport
}

// Resolve maps cfg to the ordered subscriber endpoint entries of the deployed
// container. A single instance keeps the bare "SUBSCRIBER_default" label and
// BasePort; N instances get 1-based label/host suffixes and ports
// BasePort..BasePort+N-1. In IPC mode every entry shares cfg.SocketDir, so the
// transport address does not distinguish between upstream instances.
func Resolve(cfg Config) ([]Entry, error) {
	if cfg.InstanceCount < 1 {
		return nil, &Error{
			Field:   "instances",
			Message: fmt.Sprintf("at least one publisher instance is required, got %d", cfg.InstanceCount),
		}
	}

	if cfg.InstanceCount == 1 {
		return []Entry{newEntry(cfg, labelPrefix, cfg.UpstreamName, cfg.BasePort)}, nil
	}

	entries := make([]Entry, 0, cfg.InstanceCount)
	for i := 0; i < cfg.InstanceCount; i++ {
		suffix := strconv.Itoa(i + 1)
		entries = append(entries, newEntry(
			cfg,
			labelPrefix+suffix,
			cfg.UpstreamName+suffix,
			cfg.BasePort+i,
		))
	}

	return entries, nil
}

func newEntry(cfg Config, label, host string, port int) Entry {
	if cfg.IPCEnabled {
		return Entry{
			Label:     label,
			Address:   cfg.SocketDir,
			Transport: TransportIPC,
		}
	}

	return Entry{
		Label:     label,
		Address:   fmt.Sprintf("%s:%d", host, port),
		Transport: TransportTCP,
	}
}

// Env returns the environment variables the deployed container reads for this
// entry.
func (e Entry) Env() map[string]string {
	return map[string]string{
		e.Label + "_ENDPOINT": e.Address,
		e.Label + "_TYPE":     string(e.Transport),
	}
}
