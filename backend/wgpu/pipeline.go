package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/render"
	"github.com/gogpu/vox/render/shader"
)

// depthFormat is the depth buffer format used by the voxel pass.
const depthFormat = gputypes.TextureFormatDepth24Plus

// voxelPipeline holds the GPU objects of the instanced cube pass.
type voxelPipeline struct {
	module    *wgpu.ShaderModule
	bgLayout  *wgpu.BindGroupLayout
	layout    *wgpu.PipelineLayout
	pipeline  *wgpu.RenderPipeline
	uniforms  *wgpu.Buffer
	bindGroup *wgpu.BindGroup

	staging [shader.UniformSize]byte
}

// newVoxelPipeline compiles the voxel shader and builds the pipeline for
// colour format format.
func newVoxelPipeline(device *wgpu.Device, format gputypes.TextureFormat) (*voxelPipeline, error) {
	// Validate the WGSL before any GPU object exists.
	spirv, err := shader.Compile("voxel", shader.Voxel)
	if err != nil {
		return nil, err
	}
	vox.Logger().Debug("wgpu: voxel shader compiled", "spirv_words", len(spirv))

	p := &voxelPipeline{}
	if err := p.init(device, format); err != nil {
		p.release()
		return nil, err
	}
	return p, nil
}

func (p *voxelPipeline) init(device *wgpu.Device, format gputypes.TextureFormat) error {
	var err error
	p.module, err = device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "voxel",
		WGSL:  shader.Voxel,
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}

	p.bgLayout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "voxel-globals",
		Entries: []gputypes.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: shader.UniformSize,
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}

	p.layout, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "voxel-layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{p.bgLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}

	p.pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "voxel",
		Layout: p.layout,
		Vertex: wgpu.VertexState{
			Module:     p.module,
			EntryPoint: shader.VertexEntry,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
		},
		Multisample: gputypes.DefaultMultisampleState(),
		Fragment: &wgpu.FragmentState{
			Module:     p.module,
			EntryPoint: shader.FragmentEntry,
			Targets: []gputypes.ColorTargetState{{
				Format:    format,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}

	p.uniforms, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "voxel-globals",
		Size:  shader.UniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}

	p.bindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "voxel-globals",
		Layout: p.bgLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  p.uniforms,
			Size:    shader.UniformSize,
		}},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	return nil
}

// encodeUniforms packs f into the uniform layout of shader.Voxel.
func encodeUniforms(dst []byte, f *render.Frame) {
	for i, v := range f.ViewProjection {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
	off := 16 * 4
	binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(float32(f.Columns)))
	binary.LittleEndian.PutUint32(dst[off+4:], math.Float32bits(f.Spacing))
	binary.LittleEndian.PutUint32(dst[off+8:], 0)
	binary.LittleEndian.PutUint32(dst[off+12:], 0)
}

// upload writes the frame uniforms to the GPU.
func (p *voxelPipeline) upload(queue *wgpu.Queue, f *render.Frame) error {
	encodeUniforms(p.staging[:], f)
	return queue.WriteBuffer(p.uniforms, 0, p.staging[:])
}

// record draws f.Instances cubes into pass.
func (p *voxelPipeline) record(pass *wgpu.RenderPassEncoder, f *render.Frame) {
	if f.Instances == 0 {
		return
	}
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, p.bindGroup, nil)
	pass.Draw(shader.VerticesPerInstance, f.Instances, 0, 0)
}

func (p *voxelPipeline) release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
	}
	if p.uniforms != nil {
		p.uniforms.Release()
	}
	if p.pipeline != nil {
		p.pipeline.Release()
	}
	if p.layout != nil {
		p.layout.Release()
	}
	if p.bgLayout != nil {
		p.bgLayout.Release()
	}
	if p.module != nil {
		p.module.Release()
	}
}
