package d3d11

import (
	"sync"
	"testing"
)

func TestDevice_Name(t *testing.T) {
	dev := NewDevice("arx-test")
	defer dev.Release()

	if got := dev.Name(); got != "arx-test" {
		t.Errorf("Name() = %q, want %q", got, "arx-test")
	}
}

func TestDevice_ShareCounting(t *testing.T) {
	dev := NewDevice("test")
	if got := dev.refCount(); got != 1 {
		t.Fatalf("new device refCount = %d, want 1", got)
	}

	if got := dev.Retain(); got != dev {
		t.Error("Retain() returned a different device")
	}
	if got := dev.refCount(); got != 2 {
		t.Errorf("after Retain, refCount = %d, want 2", got)
	}

	dev.Release()
	dev.Release()
	if got := dev.refCount(); got != 0 {
		t.Errorf("after final Release, refCount = %d, want 0", got)
	}
}

func TestDevice_ConcurrentShares(t *testing.T) {
	dev := NewDevice("test")

	var wg sync.WaitGroup
	const goroutines = 50
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				d := dev.Retain()
				d.Release()
			}
		}()
	}
	wg.Wait()

	if got := dev.refCount(); got != 1 {
		t.Errorf("after concurrent retain/release pairs, refCount = %d, want 1", got)
	}
	dev.Release()
}
