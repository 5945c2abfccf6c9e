package base

import (
	"context"
	"fmt"
	"sync"
)

// PortPool hands out chromedriver ports so concurrent imports never share a driver.
type PortPool struct {
	first int
	free  chan int
}

var (
	driverPorts     *PortPool
	driverPortsOnce sync.Once
)

// driverPortPool returns the process-wide pool, creating it on first use.
func driverPortPool() *PortPool {
	driverPortsOnce.Do(func() {
		driverPorts = NewPortPool(4444, 16)
	})
	return driverPorts
}

// NewPortPool creates a pool of size ports starting at first.
func NewPortPool(first, size int) *PortPool {
	p := &PortPool{first: first, free: make(chan int, size)}
	for i := 0; i < size; i++ {
		p.free <- first + i
	}
	return p
}

// Acquire blocks until a port is free or ctx is done.
func (p *PortPool) Acquire(ctx context.Context) (int, error) {
	select {
	case port := <-p.free:
		return port, nil
	case <-ctx.Done():
		return 0, fmt.Errorf("no free driver port in range %d-%d: %w", p.first, p.first+cap(p.free)-1, ctx.Err())
	}
}

// Release returns port to the pool.
func (p *PortPool) Release(port int) {
	select {
	case p.free <- port:
	default:
		// released twice; drop it rather than block
	}
}
