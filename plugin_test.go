package vfdclock

import (
	"errors"
	"testing"

	"gotest.tools/assert"
)

func TestPluginInfo(t *testing.T) {
	info := New().Info()
	assert.Equal(t, info.Slug, "vfdclock")
	assert.Equal(t, info.Type, TypeService)
	assert.Equal(t, info.Name, "VFD Clock")
}

func TestPluginInitFailure(t *testing.T) {
	p := &ClockPlugin{
		openDisplay: func() (Display, error) {
			return nil, ErrDeviceOpen
		},
		scan: func(int) ([]uint16, error) { return nil, nil },
	}

	ctx := &stubContext{}
	err := p.Init(ctx)
	assert.Assert(t, errors.Is(err, ErrDeviceOpen))
	assert.Assert(t, p.display == nil)
	assert.Equal(t, ctx.errs, 1)
}

func TestPluginScanIsBestEffort(t *testing.T) {
	opened := false
	p := &ClockPlugin{
		openDisplay: func() (Display, error) {
			opened = true
			return &fakeDisplay{}, nil
		},
		scan: func(int) ([]uint16, error) {
			return nil, errors.New("bus missing")
		},
	}

	// A failed scan never prevents or alters the open step.
	ctx := &stubContext{}
	assert.NilError(t, p.Init(ctx))
	assert.Assert(t, opened)
}

func TestPluginScanLogsFoundDevices(t *testing.T) {
	var scanned []int
	p := &ClockPlugin{
		openDisplay: func() (Display, error) { return &fakeDisplay{}, nil },
		scan: func(device int) ([]uint16, error) {
			scanned = append(scanned, device)
			return []uint16{DefaultAddr}, nil
		},
	}

	ctx := &stubContext{}
	assert.NilError(t, p.Init(ctx))
	assert.DeepEqual(t, scanned, []int{0, 1})
}

func TestPluginLifecycle(t *testing.T) {
	d := &fakeDisplay{}
	p := &ClockPlugin{
		openDisplay: func() (Display, error) { return d, nil },
		scan:        func(int) ([]uint16, error) { return nil, nil },
	}

	ctx := &stubContext{stops: []bool{false, false, true}}
	assert.NilError(t, p.Init(ctx))
	p.Run(ctx)

	// Two time writes, then the service shutdown blank.
	assert.Equal(t, len(d.texts), 3)
	assert.Equal(t, d.texts[len(d.texts)-1], "")
	assert.DeepEqual(t, d.shows, []bool{false})

	p.Cleanup(ctx)
	assert.Equal(t, d.closed, 1)
	assert.Assert(t, p.display == nil)

	// A second cleanup is a no-op.
	p.Cleanup(ctx)
	assert.Equal(t, d.closed, 1)
}
