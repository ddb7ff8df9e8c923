package wgpu

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	_ "github.com/gogpu/wgpu/hal/allbackends"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/render"
)

// Name is the registry name of this backend.
const Name = "wgpu"

// ErrNoWindow is returned by Open for a Target without native handles.
var ErrNoWindow = errors.New("wgpu: target has no window handle")

// Context is a render.Context backed by a gogpu/wgpu device and window
// surface.
type Context struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	format   gputypes.TextureFormat
	info     GPUInfo

	pipe      *voxelPipeline
	depth     *wgpu.Texture
	depthView *wgpu.TextureView

	width, height uint32
}

var (
	_ render.Context            = (*Context)(nil)
	_ gpucontext.DeviceProvider = (*Context)(nil)
)

// Open creates a Context presenting to t using every backend gogpu/wgpu
// supports on this platform. The surface is configured for t's size when it
// is non-zero.
func Open(t render.Target) (render.Context, error) {
	c, err := OpenWithBackends(t, wgpu.BackendsAll)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// OpenWithBackends is Open restricted to the given graphics APIs.
func OpenWithBackends(t render.Target, backends wgpu.Backends) (*Context, error) {
	if err := checkTarget(t, runtime.GOOS); err != nil {
		return nil, err
	}
	c, err := openDevice(t.Display, t.Window, backends)
	if err != nil {
		return nil, err
	}
	vox.Logger().Info("wgpu: adapter selected", "gpu", c.info.String(), "format", c.format)

	c.pipe, err = newVoxelPipeline(c.device, c.format)
	if err != nil {
		c.Release()
		return nil, err
	}

	if t.Width > 0 && t.Height > 0 {
		if err := c.Configure(t.Width, t.Height); err != nil {
			c.Release()
			return nil, err
		}
	}
	return c, nil
}

// checkTarget rejects handles gogpu/wgpu cannot create a surface from.
// Windows takes no display handle.
func checkTarget(t render.Target, goos string) error {
	if t.Window == 0 {
		return ErrNoWindow
	}
	if t.Display == 0 && goos != "windows" {
		return fmt.Errorf("%w: display handle is zero", ErrNoWindow)
	}
	return nil
}

// Configure sizes the surface and the depth buffer.
func (c *Context) Configure(width, height uint32) error {
	err := c.surface.Configure(c.device, &wgpu.SurfaceConfiguration{
		Width:       width,
		Height:      height,
		Format:      c.format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: gputypes.PresentModeFifo,
		AlphaMode:   gputypes.CompositeAlphaModeAuto,
	})
	if err != nil {
		return fmt.Errorf("wgpu: configure surface %dx%d: %w", width, height, err)
	}
	if err := c.createDepth(width, height); err != nil {
		return err
	}
	c.width, c.height = width, height
	return nil
}

func (c *Context) createDepth(width, height uint32) error {
	c.releaseDepth()

	tex, err := c.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "voxel-depth",
		Size:          wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        depthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create depth texture: %w", err)
	}
	view, err := c.device.CreateTextureView(tex, nil)
	if err != nil {
		tex.Release()
		return fmt.Errorf("wgpu: create depth view: %w", err)
	}
	c.depth, c.depthView = tex, view
	return nil
}

func (c *Context) releaseDepth() {
	if c.depthView != nil {
		c.depthView.Release()
		c.depthView = nil
	}
	if c.depth != nil {
		c.depth.Release()
		c.depth = nil
	}
}

// Draw acquires the next surface texture, draws f and presents.
// Acquire failures are returned unwrapped so render.Classify sees the
// gogpu/wgpu sentinels.
func (c *Context) Draw(f *render.Frame) error {
	tex, suboptimal, err := c.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	if suboptimal {
		vox.Logger().Debug("wgpu: suboptimal surface texture")
	}

	if err := c.encode(tex, f); err != nil {
		c.surface.DiscardTexture()
		return err
	}
	if err := c.surface.Present(tex); err != nil {
		return fmt.Errorf("wgpu: present: %w", err)
	}
	return nil
}

func (c *Context) encode(tex *wgpu.SurfaceTexture, f *render.Frame) error {
	view, err := tex.CreateView(nil)
	if err != nil {
		return fmt.Errorf("wgpu: create surface view: %w", err)
	}
	defer view.Release()

	if err := c.pipe.upload(c.queue, f); err != nil {
		return fmt.Errorf("wgpu: write uniforms: %w", err)
	}

	encoder, err := c.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "voxel-frame"})
	if err != nil {
		return fmt.Errorf("wgpu: create encoder: %w", err)
	}

	pass, err := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "voxel-pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: f.Clear,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            c.depthView,
			DepthLoadOp:     gputypes.LoadOpClear,
			DepthStoreOp:    gputypes.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: begin render pass: %w", err)
	}
	c.pipe.record(pass, f)
	if err := pass.End(); err != nil {
		return fmt.Errorf("wgpu: end render pass: %w", err)
	}

	cmd, err := encoder.Finish()
	if err != nil {
		return fmt.Errorf("wgpu: finish encoder: %w", err)
	}
	if _, err := c.queue.Submit(cmd); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	return nil
}

// Release frees GPU resources in reverse creation order.
func (c *Context) Release() {
	if c.device != nil {
		if err := c.device.WaitIdle(); err != nil {
			vox.Logger().Warn("wgpu: wait idle before release", "error", err)
		}
	}
	c.releaseDepth()
	if c.pipe != nil {
		c.pipe.release()
		c.pipe = nil
	}
	if c.surface != nil {
		c.surface.Unconfigure()
		c.surface.Release()
		c.surface = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
		c.queue = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}

// Info returns the selected GPU.
func (c *Context) Info() GPUInfo { return c.info }

// Device returns the wgpu device.
func (c *Context) Device() gpucontext.Device { return c.device }

// Queue returns the wgpu queue.
func (c *Context) Queue() gpucontext.Queue { return c.queue }

// SurfaceFormat returns the configured surface format.
func (c *Context) SurfaceFormat() gputypes.TextureFormat { return c.format }

// Adapter returns the wgpu adapter.
func (c *Context) Adapter() gpucontext.Adapter { return c.adapter }

// AdapterInfo returns the adapter name and type.
func (c *Context) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: c.info.Name, Type: adapterType(c.info.DeviceType)}
}

// logSink forwards vox logging configuration to gogpu/wgpu.
type logSink struct{}

func (logSink) SetLogger(l *slog.Logger) { wgpu.SetLogger(l) }

func init() {
	render.Register(Name, render.PriorityGPU, Open, nil)
	vox.AttachLogger(logSink{})
}
