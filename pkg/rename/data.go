package rename

// defaultEntries returns the CUDA-to-HIP mapping in registration order,
// preserved verbatim from the reference table including its duplicate
// registrations (later wins) and deprecated aliases.
func defaultEntries() []Entry {
	return []Entry{
		// Defines
		{"__CUDACC__", "__HIPCC__", CategoryMacro},

		// Includes
		{"cuda_runtime.h", "hip_runtime.h", CategoryInclude},
		{"cuda_runtime_api.h", "hip_runtime_api.h", CategoryInclude},

		// Error codes and return types
		{"cudaError_t", "hipError_t", CategoryType},
		{"cudaError", "hipError", CategoryType},
		{"cudaSuccess", "hipSuccess", CategoryErrorCode},

		{"cudaErrorUnknown", "hipErrorUnknown", CategoryErrorCode},
		{"cudaErrorMemoryAllocation", "hipErrorMemoryAllocation", CategoryErrorCode},
		{"cudaErrorMemoryFree", "hipErrorMemoryFree", CategoryErrorCode},
		{"cudaErrorUnknownSymbol", "hipErrorUnknownSymbol", CategoryErrorCode},
		{"cudaErrorOutOfResources", "hipErrorOutOfResources", CategoryErrorCode},
		{"cudaErrorInvalidValue", "hipErrorInvalidValue", CategoryErrorCode},
		{"cudaErrorInvalidResourceHandle", "hipErrorInvalidResourceHandle", CategoryErrorCode},
		{"cudaErrorInvalidDevice", "hipErrorInvalidDevice", CategoryErrorCode},
		{"cudaErrorNoDevice", "hipErrorNoDevice", CategoryErrorCode},
		{"cudaErrorNotReady", "hipErrorNotReady", CategoryErrorCode},
		{"cudaErrorUnknown", "hipErrorUnknown", CategoryErrorCode},

		// Error APIs
		{"cudaGetLastError", "hipGetLastError", CategoryFunction},
		{"cudaPeekAtLastError", "hipPeekAtLastError", CategoryFunction},
		{"cudaGetErrorName", "hipGetErrorName", CategoryFunction},
		{"cudaGetErrorString", "hipGetErrorString", CategoryFunction},

		// Memcpy
		{"cudaMemcpy", "hipMemcpy", CategoryFunction},
		{"cudaMemcpyHostToHost", "hipMemcpyHostToHost", CategoryEnumConstant},
		{"cudaMemcpyHostToDevice", "hipMemcpyHostToDevice", CategoryEnumConstant},
		{"cudaMemcpyDeviceToHost", "hipMemcpyDeviceToHost", CategoryEnumConstant},
		{"cudaMemcpyDeviceToDevice", "hipMemcpyDeviceToDevice", CategoryEnumConstant},
		{"cudaMemcpyDefault", "hipMemcpyDefault", CategoryEnumConstant},
		{"cudaMemcpyToSymbol", "hipMemcpyToSymbol", CategoryFunction},
		{"cudaMemset", "hipMemset", CategoryFunction},
		{"cudaMemsetAsync", "hipMemsetAsync", CategoryFunction},
		{"cudaMemcpyAsync", "hipMemcpyAsync", CategoryFunction},
		{"cudaMemGetInfo", "hipMemGetInfo", CategoryFunction},
		{"cudaMemcpyKind", "hipMemcpyKind", CategoryType},

		// Memory management
		{"cudaMalloc", "hipMalloc", CategoryFunction},
		{"cudaMallocHost", "hipMallocHost", CategoryFunction},
		{"cudaFree", "hipFree", CategoryFunction},
		{"cudaFreeHost", "hipFreeHost", CategoryFunction},

		// Coordinate indexing and dimensions
		{"threadIdx.x", "hipThreadIdx_x", CategoryBuiltinField},
		{"threadIdx.y", "hipThreadIdx_y", CategoryBuiltinField},
		{"threadIdx.z", "hipThreadIdx_z", CategoryBuiltinField},

		{"blockIdx.x", "hipBlockIdx_x", CategoryBuiltinField},
		{"blockIdx.y", "hipBlockIdx_y", CategoryBuiltinField},
		{"blockIdx.z", "hipBlockIdx_z", CategoryBuiltinField},

		{"blockDim.x", "hipBlockDim_x", CategoryBuiltinField},
		{"blockDim.y", "hipBlockDim_y", CategoryBuiltinField},
		{"blockDim.z", "hipBlockDim_z", CategoryBuiltinField},

		{"gridDim.x", "hipGridDim_x", CategoryBuiltinField},
		{"gridDim.y", "hipGridDim_y", CategoryBuiltinField},
		{"gridDim.z", "hipGridDim_z", CategoryBuiltinField},

		{"blockIdx.x", "hipBlockIdx_x", CategoryBuiltinField},
		{"blockIdx.y", "hipBlockIdx_y", CategoryBuiltinField},
		{"blockIdx.z", "hipBlockIdx_z", CategoryBuiltinField},

		{"blockDim.x", "hipBlockDim_x", CategoryBuiltinField},
		{"blockDim.y", "hipBlockDim_y", CategoryBuiltinField},
		{"blockDim.z", "hipBlockDim_z", CategoryBuiltinField},

		{"gridDim.x", "hipGridDim_x", CategoryBuiltinField},
		{"gridDim.y", "hipGridDim_y", CategoryBuiltinField},
		{"gridDim.z", "hipGridDim_z", CategoryBuiltinField},

		{"warpSize", "hipWarpSize", CategoryBuiltinField},

		// Events
		{"cudaEvent_t", "hipEvent_t", CategoryType},
		{"cudaEventCreate", "hipEventCreate", CategoryFunction},
		{"cudaEventCreateWithFlags", "hipEventCreateWithFlags", CategoryFunction},
		{"cudaEventDestroy", "hipEventDestroy", CategoryFunction},
		{"cudaEventRecord", "hipEventRecord", CategoryFunction},
		{"cudaEventElapsedTime", "hipEventElapsedTime", CategoryFunction},
		{"cudaEventSynchronize", "hipEventSynchronize", CategoryFunction},

		// Streams
		{"cudaStream_t", "hipStream_t", CategoryType},
		{"cudaStreamCreate", "hipStreamCreate", CategoryFunction},
		{"cudaStreamCreateWithFlags", "hipStreamCreateWithFlags", CategoryFunction},
		{"cudaStreamDestroy", "hipStreamDestroy", CategoryFunction},
		{"cudaStreamWaitEvent", "hipStreamWaitEven", CategoryFunction},
		{"cudaStreamSynchronize", "hipStreamSynchronize", CategoryFunction},
		{"cudaStreamDefault", "hipStreamDefault", CategoryEnumConstant},
		{"cudaStreamNonBlocking", "hipStreamNonBlocking", CategoryEnumConstant},

		// Other synchronization
		{"cudaDeviceSynchronize", "hipDeviceSynchronize", CategoryFunction},
		{"cudaThreadSynchronize", "hipDeviceSynchronize", CategoryFunction}, // deprecated alias
		{"cudaDeviceReset", "hipDeviceReset", CategoryFunction},
		{"cudaThreadExit", "hipDeviceReset", CategoryFunction}, // deprecated alias
		{"cudaSetDevice", "hipSetDevice", CategoryFunction},
		{"cudaGetDevice", "hipGetDevice", CategoryFunction},

		// Device
		{"cudaDeviceProp", "hipDeviceProp_t", CategoryType},
		{"cudaGetDeviceProperties", "hipDeviceGetProperties", CategoryFunction},

		// Cache config
		{"cudaDeviceSetCacheConfig", "hipDeviceSetCacheConfig", CategoryFunction},
		{"cudaThreadSetCacheConfig", "hipDeviceSetCacheConfig", CategoryFunction}, // deprecated alias
		{"cudaDeviceGetCacheConfig", "hipDeviceGetCacheConfig", CategoryFunction},
		{"cudaThreadGetCacheConfig", "hipDeviceGetCacheConfig", CategoryFunction}, // deprecated alias
		{"cudaFuncCache", "hipFuncCache", CategoryType},
		{"cudaFuncCachePreferNone", "hipFuncCachePreferNone", CategoryEnumConstant},
		{"cudaFuncCachePreferShared", "hipFuncCachePreferShared", CategoryEnumConstant},
		{"cudaFuncCachePreferL1", "hipFuncCachePreferL1", CategoryEnumConstant},
		{"cudaFuncCachePreferEqual", "hipFuncCachePreferEqual", CategoryEnumConstant},
		{"cudaFuncSetCacheConfig", "hipFuncSetCacheConfig", CategoryFunction},

		{"cudaDriverGetVersion", "hipDriverGetVersion", CategoryFunction},

		// Peer to peer
		{"cudaDeviceCanAccessPeer", "hipDeviceCanAccessPeer", CategoryFunction},
		{"cudaDeviceDisablePeerAccess", "hipDeviceDisablePeerAccess", CategoryFunction},
		{"cudaDeviceEnablePeerAccess", "hipDeviceEnablePeerAccess", CategoryFunction},
		{"cudaMemcpyPeerAsync", "hipMemcpyPeerAsync", CategoryFunction},
		{"cudaMemcpyPeer", "hipMemcpyPeer", CategoryFunction},

		// Shared memory
		{"cudaDeviceSetSharedMemConfig", "hipDeviceSetSharedMemConfig", CategoryFunction},
		{"cudaThreadSetSharedMemConfig", "hipDeviceSetSharedMemConfig", CategoryFunction}, // deprecated alias
		{"cudaDeviceGetSharedMemConfig", "hipDeviceGetSharedMemConfig", CategoryFunction},
		{"cudaThreadGetSharedMemConfig", "hipDeviceGetSharedMemConfig", CategoryFunction}, // deprecated alias
		{"cudaSharedMemConfig", "hipSharedMemConfig", CategoryType},
		{"cudaSharedMemBankSizeDefault", "hipSharedMemBankSizeDefault", CategoryEnumConstant},
		{"cudaSharedMemBankSizeFourByte", "hipSharedMemBankSizeFourByte", CategoryEnumConstant},
		{"cudaSharedMemBankSizeEightByte", "hipSharedMemBankSizeEightByte", CategoryEnumConstant},

		{"cudaGetDeviceCount", "hipGetDeviceCount", CategoryFunction},

		// Profiler
		// {"cudaProfilerInitialize", "hipProfilerInitialize", CategoryFunction},
		{"cudaProfilerStart", "hipProfilerStart", CategoryFunction},
		{"cudaProfilerStop", "hipProfilerStop", CategoryFunction},

		// Textures and channel descriptors
		{"cudaChannelFormatDesc", "hipChannelFormatDesc", CategoryType},
		{"cudaFilterModePoint", "hipFilterModePoint", CategoryEnumConstant},
		{"cudaReadModeElementType", "hipReadModeElementType", CategoryEnumConstant},

		{"cudaCreateChannelDesc", "hipCreateChannelDesc", CategoryFunction},
		{"cudaBindTexture", "hipBindTexture", CategoryFunction},
		{"cudaUnbindTexture", "hipUnbindTexture", CategoryFunction},
	}
}

// defaultTable is the process-wide CUDA-to-HIP table.
//
//nolint:gochecknoglobals // Process-wide static data by design
var defaultTable = NewTable(defaultEntries())

// DefaultTable returns the process-wide CUDA-to-HIP rename table.
func DefaultTable() *Table {
	return defaultTable
}
