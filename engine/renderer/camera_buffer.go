package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// cameraUniformSize is the byte size of camera.GPUCameraUniform.
var cameraUniformSize = uint64((&camera.GPUCameraUniform{}).Size())

// CameraBuffer owns the GPU uniform buffer a shader reads camera state from.
// It is written once per frame from whichever camera is active.
type CameraBuffer struct {
	label  string
	buffer *wgpu.Buffer
}

// CameraBufferDescriptor describes a uniform buffer sized for camera.GPUCameraUniform.
//
// Parameters:
//   - label: debug label for the buffer
//
// Returns:
//   - *wgpu.BufferDescriptor: the descriptor to pass to Device.CreateBuffer
func CameraBufferDescriptor(label string) *wgpu.BufferDescriptor {
	return &wgpu.BufferDescriptor{
		Label:            label + " Camera Uniform Buffer",
		Size:             cameraUniformSize,
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	}
}

// NewCameraBuffer allocates the camera uniform buffer on a device.
//
// Parameters:
//   - device: the device to allocate on
//   - label: debug label for the buffer
//
// Returns:
//   - *CameraBuffer: the allocated buffer
//   - error: error if the device rejects the allocation
func NewCameraBuffer(device *wgpu.Device, label string) (*CameraBuffer, error) {
	buf, err := device.CreateBuffer(CameraBufferDescriptor(label))
	if err != nil {
		return nil, fmt.Errorf("failed to create camera buffer %q: %w", label, err)
	}
	return &CameraBuffer{label: label, buffer: buf}, nil
}

// Buffer returns the underlying GPU buffer for bind group creation.
//
// Returns:
//   - *wgpu.Buffer: the uniform buffer
func (cb *CameraBuffer) Buffer() *wgpu.Buffer {
	return cb.buffer
}

// Write packs the camera's current view-projection and position and queues the upload.
//
// Parameters:
//   - queue: the device queue to write through
//   - c: the camera to upload
//
// Returns:
//   - error: error if the queue rejects the write
func (cb *CameraBuffer) Write(queue *wgpu.Queue, c camera.Camera) error {
	uniform := camera.NewGPUCameraUniform(c)
	if err := queue.WriteBuffer(cb.buffer, 0, uniform.Marshal()); err != nil {
		return fmt.Errorf("failed to write camera buffer %q: %w", cb.label, err)
	}
	return nil
}

// Release frees the GPU buffer. The CameraBuffer must not be used afterwards.
func (cb *CameraBuffer) Release() {
	if cb.buffer != nil {
		cb.buffer.Release()
		cb.buffer = nil
	}
}
