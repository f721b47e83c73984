package cuast

// View selects which compilation view a snapshot was parsed under.
// CUDA sources are compiled twice, once for the host and once for the
// device, and conditionally-compiled regions differ between the two.
// The translator parses both views and merges their edits.
type View uint8

const (
	// ViewHost parses the source as the host compiler sees it:
	// __CUDACC__ is defined, __CUDA_ARCH__ is not.
	ViewHost View = iota

	// ViewDevice parses the source as the device compiler sees it:
	// both __CUDACC__ and __CUDA_ARCH__ are defined.
	ViewDevice
)

func (v View) String() string {
	switch v {
	case ViewHost:
		return "host"
	case ViewDevice:
		return "device"
	default:
		return "unknown"
	}
}

// AllViews returns the compilation views in processing order.
func AllViews() []View {
	return []View{ViewHost, ViewDevice}
}
