package grammar

import (
	"fmt"

	"github.com/wippyai/spirv-tables/enumset"
	"github.com/wippyai/spirv-tables/errors"
)

// Capability is a hardware feature a module declares with OpCapability.
// Values are the binary encodings.
type Capability uint32

const (
	CapabilityMatrix                             Capability = 0
	CapabilityShader                             Capability = 1
	CapabilityGeometry                           Capability = 2
	CapabilityTessellation                       Capability = 3
	CapabilityAddresses                          Capability = 4
	CapabilityLinkage                            Capability = 5
	CapabilityKernel                             Capability = 6
	CapabilityVector16                           Capability = 7
	CapabilityFloat16Buffer                      Capability = 8
	CapabilityFloat16                            Capability = 9
	CapabilityFloat64                            Capability = 10
	CapabilityInt64                              Capability = 11
	CapabilityInt64Atomics                       Capability = 12
	CapabilityImageBasic                         Capability = 13
	CapabilityImageReadWrite                     Capability = 14
	CapabilityImageMipmap                        Capability = 15
	CapabilityPipes                              Capability = 17
	CapabilityGroups                             Capability = 18
	CapabilityDeviceEnqueue                      Capability = 19
	CapabilityLiteralSampler                     Capability = 20
	CapabilityAtomicStorage                      Capability = 21
	CapabilityInt16                              Capability = 22
	CapabilityTessellationPointSize              Capability = 23
	CapabilityGeometryPointSize                  Capability = 24
	CapabilityImageGatherExtended                Capability = 25
	CapabilityStorageImageMultisample            Capability = 27
	CapabilityUniformBufferArrayDynamicIndexing  Capability = 28
	CapabilitySampledImageArrayDynamicIndexing   Capability = 29
	CapabilityStorageBufferArrayDynamicIndexing  Capability = 30
	CapabilityStorageImageArrayDynamicIndexing   Capability = 31
	CapabilityClipDistance                       Capability = 32
	CapabilityCullDistance                       Capability = 33
	CapabilityImageCubeArray                     Capability = 34
	CapabilitySampleRateShading                  Capability = 35
	CapabilityImageRect                          Capability = 36
	CapabilitySampledRect                        Capability = 37
	CapabilityGenericPointer                     Capability = 38
	CapabilityInt8                               Capability = 39
	CapabilityInputAttachment                    Capability = 40
	CapabilitySparseResidency                    Capability = 41
	CapabilityMinLod                             Capability = 42
	CapabilitySampled1D                          Capability = 43
	CapabilityImage1D                            Capability = 44
	CapabilitySampledCubeArray                   Capability = 45
	CapabilitySampledBuffer                      Capability = 46
	CapabilityImageBuffer                        Capability = 47
	CapabilityImageMSArray                       Capability = 48
	CapabilityStorageImageExtendedFormats        Capability = 49
	CapabilityImageQuery                         Capability = 50
	CapabilityDerivativeControl                  Capability = 51
	CapabilityInterpolationFunction              Capability = 52
	CapabilityTransformFeedback                  Capability = 53
	CapabilityGeometryStreams                    Capability = 54
	CapabilityStorageImageReadWithoutFormat      Capability = 55
	CapabilityStorageImageWriteWithoutFormat     Capability = 56
	CapabilityMultiViewport                      Capability = 57
	CapabilitySubgroupDispatch                   Capability = 58
	CapabilityNamedBarrier                       Capability = 59
	CapabilityPipeStorage                        Capability = 60
	CapabilitySubgroupBallotKHR                  Capability = 4423
	CapabilityDrawParameters                     Capability = 4427
	CapabilitySubgroupVoteKHR                    Capability = 4431
	CapabilityStorageBuffer16BitAccess           Capability = 4433
	CapabilityUniformAndStorageBuffer16BitAccess Capability = 4434
	CapabilityStoragePushConstant16              Capability = 4435
	CapabilityStorageInputOutput16               Capability = 4436
	CapabilityDeviceGroup                        Capability = 4437
	CapabilityMultiView                          Capability = 4439
)

var capabilityNames = map[Capability]string{
	CapabilityMatrix:                             "Matrix",
	CapabilityShader:                             "Shader",
	CapabilityGeometry:                           "Geometry",
	CapabilityTessellation:                       "Tessellation",
	CapabilityAddresses:                          "Addresses",
	CapabilityLinkage:                            "Linkage",
	CapabilityKernel:                             "Kernel",
	CapabilityVector16:                           "Vector16",
	CapabilityFloat16Buffer:                      "Float16Buffer",
	CapabilityFloat16:                            "Float16",
	CapabilityFloat64:                            "Float64",
	CapabilityInt64:                              "Int64",
	CapabilityInt64Atomics:                       "Int64Atomics",
	CapabilityImageBasic:                         "ImageBasic",
	CapabilityImageReadWrite:                     "ImageReadWrite",
	CapabilityImageMipmap:                        "ImageMipmap",
	CapabilityPipes:                              "Pipes",
	CapabilityGroups:                             "Groups",
	CapabilityDeviceEnqueue:                      "DeviceEnqueue",
	CapabilityLiteralSampler:                     "LiteralSampler",
	CapabilityAtomicStorage:                      "AtomicStorage",
	CapabilityInt16:                              "Int16",
	CapabilityTessellationPointSize:              "TessellationPointSize",
	CapabilityGeometryPointSize:                  "GeometryPointSize",
	CapabilityImageGatherExtended:                "ImageGatherExtended",
	CapabilityStorageImageMultisample:            "StorageImageMultisample",
	CapabilityUniformBufferArrayDynamicIndexing:  "UniformBufferArrayDynamicIndexing",
	CapabilitySampledImageArrayDynamicIndexing:   "SampledImageArrayDynamicIndexing",
	CapabilityStorageBufferArrayDynamicIndexing:  "StorageBufferArrayDynamicIndexing",
	CapabilityStorageImageArrayDynamicIndexing:   "StorageImageArrayDynamicIndexing",
	CapabilityClipDistance:                       "ClipDistance",
	CapabilityCullDistance:                       "CullDistance",
	CapabilityImageCubeArray:                     "ImageCubeArray",
	CapabilitySampleRateShading:                  "SampleRateShading",
	CapabilityImageRect:                          "ImageRect",
	CapabilitySampledRect:                        "SampledRect",
	CapabilityGenericPointer:                     "GenericPointer",
	CapabilityInt8:                               "Int8",
	CapabilityInputAttachment:                    "InputAttachment",
	CapabilitySparseResidency:                    "SparseResidency",
	CapabilityMinLod:                             "MinLod",
	CapabilitySampled1D:                          "Sampled1D",
	CapabilityImage1D:                            "Image1D",
	CapabilitySampledCubeArray:                   "SampledCubeArray",
	CapabilitySampledBuffer:                      "SampledBuffer",
	CapabilityImageBuffer:                        "ImageBuffer",
	CapabilityImageMSArray:                       "ImageMSArray",
	CapabilityStorageImageExtendedFormats:        "StorageImageExtendedFormats",
	CapabilityImageQuery:                         "ImageQuery",
	CapabilityDerivativeControl:                  "DerivativeControl",
	CapabilityInterpolationFunction:              "InterpolationFunction",
	CapabilityTransformFeedback:                  "TransformFeedback",
	CapabilityGeometryStreams:                    "GeometryStreams",
	CapabilityStorageImageReadWithoutFormat:      "StorageImageReadWithoutFormat",
	CapabilityStorageImageWriteWithoutFormat:     "StorageImageWriteWithoutFormat",
	CapabilityMultiViewport:                      "MultiViewport",
	CapabilitySubgroupDispatch:                   "SubgroupDispatch",
	CapabilityNamedBarrier:                       "NamedBarrier",
	CapabilityPipeStorage:                        "PipeStorage",
	CapabilitySubgroupBallotKHR:                  "SubgroupBallotKHR",
	CapabilityDrawParameters:                     "DrawParameters",
	CapabilitySubgroupVoteKHR:                    "SubgroupVoteKHR",
	CapabilityStorageBuffer16BitAccess:           "StorageBuffer16BitAccess",
	CapabilityUniformAndStorageBuffer16BitAccess: "UniformAndStorageBuffer16BitAccess",
	CapabilityStoragePushConstant16:              "StoragePushConstant16",
	CapabilityStorageInputOutput16:               "StorageInputOutput16",
	CapabilityDeviceGroup:                        "DeviceGroup",
	CapabilityMultiView:                          "MultiView",
}

var capabilityByName = invert(capabilityNames)

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Capability(%d)", uint32(c))
}

// Known reports whether c is a member of the enumeration.
func (c Capability) Known() bool {
	_, ok := capabilityNames[c]
	return ok
}

// CapabilityFromString returns the capability with the exact name s.
func CapabilityFromString(s string) (Capability, error) {
	if c, ok := capabilityByName[s]; ok {
		return c, nil
	}
	return 0, errors.NotFound(errors.PhaseParse, "capability", s)
}

// CapabilitySet is an immutable set of capabilities.
type CapabilitySet = enumset.Set[Capability]

// Capabilities builds a CapabilitySet.
func Capabilities(caps ...Capability) CapabilitySet {
	return enumset.Of(caps...)
}

// FormatCapabilities renders a set as "{Shader|Kernel}".
func FormatCapabilities(s CapabilitySet) string {
	return s.Format(Capability.String)
}

// ParseCapabilities resolves a list of capability names into a set.
func ParseCapabilities(names []string) (CapabilitySet, error) {
	var s CapabilitySet
	for _, name := range names {
		c, err := CapabilityFromString(name)
		if err != nil {
			return CapabilitySet{}, err
		}
		s = s.With(c)
	}
	return s, nil
}

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
