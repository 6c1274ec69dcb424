package spvgrammar

import "github.com/wippyai/spirv-tables/grammar"

var operandGroups = []operandGroup{
	{typ: grammar.OperandSourceLanguage, entries: []operandEntry{
		value("Unknown", 0),
		value("ESSL", 1),
		value("GLSL", 2),
		value("OpenCL_C", 3),
		value("OpenCL_CPP", 4),
	}},
	{typ: grammar.OperandExecutionModel, entries: []operandEntry{
		value("Vertex", 0).caps(grammar.CapabilityShader),
		value("TessellationControl", 1).caps(grammar.CapabilityTessellation),
		value("TessellationEvaluation", 2).caps(grammar.CapabilityTessellation),
		value("Geometry", 3).caps(grammar.CapabilityGeometry),
		value("Fragment", 4).caps(grammar.CapabilityShader),
		value("GLCompute", 5).caps(grammar.CapabilityShader),
		value("Kernel", 6).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandAddressingModel, entries: []operandEntry{
		value("Logical", 0),
		value("Physical32", 1).caps(grammar.CapabilityAddresses),
		value("Physical64", 2).caps(grammar.CapabilityAddresses),
	}},
	{typ: grammar.OperandMemoryModel, entries: []operandEntry{
		value("Simple", 0).caps(grammar.CapabilityShader),
		value("GLSL450", 1).caps(grammar.CapabilityShader),
		value("OpenCL", 2).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandExecutionMode, entries: []operandEntry{
		value("Invocations", 0, lit).caps(grammar.CapabilityGeometry),
		value("SpacingEqual", 1).caps(grammar.CapabilityTessellation),
		value("SpacingFractionalEven", 2).caps(grammar.CapabilityTessellation),
		value("SpacingFractionalOdd", 3).caps(grammar.CapabilityTessellation),
		value("VertexOrderCw", 4).caps(grammar.CapabilityTessellation),
		value("VertexOrderCcw", 5).caps(grammar.CapabilityTessellation),
		value("PixelCenterInteger", 6).caps(grammar.CapabilityShader),
		value("OriginUpperLeft", 7).caps(grammar.CapabilityShader),
		value("OriginLowerLeft", 8).caps(grammar.CapabilityShader),
		value("EarlyFragmentTests", 9).caps(grammar.CapabilityShader),
		value("PointMode", 10).caps(grammar.CapabilityTessellation),
		value("Xfb", 11).caps(grammar.CapabilityTransformFeedback),
		value("DepthReplacing", 12).caps(grammar.CapabilityShader),
		value("DepthGreater", 14).caps(grammar.CapabilityShader),
		value("DepthLess", 15).caps(grammar.CapabilityShader),
		value("DepthUnchanged", 16).caps(grammar.CapabilityShader),
		value("LocalSize", 17, lit, lit, lit),
		value("LocalSizeHint", 18, lit, lit, lit).caps(grammar.CapabilityKernel),
		value("InputPoints", 19).caps(grammar.CapabilityGeometry),
		value("InputLines", 20).caps(grammar.CapabilityGeometry),
		value("InputLinesAdjacency", 21).caps(grammar.CapabilityGeometry),
		value("Triangles", 22).caps(grammar.CapabilityGeometry, grammar.CapabilityTessellation),
		value("InputTrianglesAdjacency", 23).caps(grammar.CapabilityGeometry),
		value("Quads", 24).caps(grammar.CapabilityTessellation),
		value("Isolines", 25).caps(grammar.CapabilityTessellation),
		value("OutputVertices", 26, lit).caps(grammar.CapabilityGeometry, grammar.CapabilityTessellation),
		value("OutputPoints", 27).caps(grammar.CapabilityGeometry),
		value("OutputLineStrip", 28).caps(grammar.CapabilityGeometry),
		value("OutputTriangleStrip", 29).caps(grammar.CapabilityGeometry),
		value("VecTypeHint", 30, lit).caps(grammar.CapabilityKernel),
		value("ContractionOff", 31).caps(grammar.CapabilityKernel),
		value("Initializer", 33).caps(grammar.CapabilityKernel).from(v11),
		value("Finalizer", 34).caps(grammar.CapabilityKernel).from(v11),
		value("SubgroupSize", 35, lit).caps(grammar.CapabilitySubgroupDispatch).from(v11),
		value("SubgroupsPerWorkgroup", 36, lit).caps(grammar.CapabilitySubgroupDispatch).from(v11),
	}},
	{typ: grammar.OperandStorageClass, entries: []operandEntry{
		value("UniformConstant", 0),
		value("Input", 1),
		value("Uniform", 2).caps(grammar.CapabilityShader),
		value("Output", 3).caps(grammar.CapabilityShader),
		value("Workgroup", 4),
		value("CrossWorkgroup", 5),
		value("Private", 6).caps(grammar.CapabilityShader),
		value("Function", 7),
		value("Generic", 8).caps(grammar.CapabilityGenericPointer),
		value("PushConstant", 9).caps(grammar.CapabilityShader),
		value("AtomicCounter", 10).caps(grammar.CapabilityAtomicStorage),
		value("Image", 11),
	}},
	{typ: grammar.OperandDimensionality, entries: []operandEntry{
		value("1D", 0).caps(grammar.CapabilitySampled1D),
		value("2D", 1),
		value("3D", 2),
		value("Cube", 3).caps(grammar.CapabilityShader),
		value("Rect", 4).caps(grammar.CapabilitySampledRect),
		value("Buffer", 5).caps(grammar.CapabilitySampledBuffer),
		value("SubpassData", 6).caps(grammar.CapabilityInputAttachment),
	}},
	{typ: grammar.OperandSamplerAddressingMode, entries: []operandEntry{
		value("None", 0).caps(grammar.CapabilityKernel),
		value("ClampToEdge", 1).caps(grammar.CapabilityKernel),
		value("Clamp", 2).caps(grammar.CapabilityKernel),
		value("Repeat", 3).caps(grammar.CapabilityKernel),
		value("RepeatMirrored", 4).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandSamplerFilterMode, entries: []operandEntry{
		value("Nearest", 0).caps(grammar.CapabilityKernel),
		value("Linear", 1).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandSamplerImageFormat, entries: []operandEntry{
		value("Unknown", 0),
		value("Rgba32f", 1).caps(grammar.CapabilityShader),
		value("Rgba16f", 2).caps(grammar.CapabilityShader),
		value("R32f", 3).caps(grammar.CapabilityShader),
		value("Rgba8", 4).caps(grammar.CapabilityShader),
		value("Rgba8Snorm", 5).caps(grammar.CapabilityShader),
		value("Rg32f", 6).caps(grammar.CapabilityStorageImageExtendedFormats),
		value("Rg16f", 7).caps(grammar.CapabilityStorageImageExtendedFormats),
		value("Rgba32i", 21).caps(grammar.CapabilityShader),
		value("Rgba16i", 22).caps(grammar.CapabilityShader),
		value("Rgba8i", 23).caps(grammar.CapabilityShader),
		value("R32i", 24).caps(grammar.CapabilityShader),
		value("Rgba32ui", 30).caps(grammar.CapabilityShader),
		value("Rgba16ui", 31).caps(grammar.CapabilityShader),
		value("Rgba8ui", 32).caps(grammar.CapabilityShader),
		value("R32ui", 33).caps(grammar.CapabilityShader),
	}},
	{typ: grammar.OperandFPRoundingMode, entries: []operandEntry{
		value("RTE", 0).caps(grammar.CapabilityKernel),
		value("RTZ", 1).caps(grammar.CapabilityKernel),
		value("RTP", 2).caps(grammar.CapabilityKernel),
		value("RTN", 3).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandFPFastMathMode, entries: []operandEntry{
		value("None", 0),
		value("NotNaN", 0x1).caps(grammar.CapabilityKernel),
		value("NotInf", 0x2).caps(grammar.CapabilityKernel),
		value("NSZ", 0x4).caps(grammar.CapabilityKernel),
		value("AllowRecip", 0x8).caps(grammar.CapabilityKernel),
		value("Fast", 0x10).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandLinkageType, entries: []operandEntry{
		value("Export", 0).caps(grammar.CapabilityLinkage),
		value("Import", 1).caps(grammar.CapabilityLinkage),
	}},
	{typ: grammar.OperandAccessQualifier, entries: []operandEntry{
		value("ReadOnly", 0).caps(grammar.CapabilityKernel),
		value("WriteOnly", 1).caps(grammar.CapabilityKernel),
		value("ReadWrite", 2).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandFunctionParameterAttribute, entries: []operandEntry{
		value("Zext", 0).caps(grammar.CapabilityKernel),
		value("Sext", 1).caps(grammar.CapabilityKernel),
		value("ByVal", 2).caps(grammar.CapabilityKernel),
		value("Sret", 3).caps(grammar.CapabilityKernel),
		value("NoAlias", 4).caps(grammar.CapabilityKernel),
		value("NoCapture", 5).caps(grammar.CapabilityKernel),
		value("NoWrite", 6).caps(grammar.CapabilityKernel),
		value("NoReadWrite", 7).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandDecoration, entries: []operandEntry{
		value("RelaxedPrecision", 0).caps(grammar.CapabilityShader),
		value("SpecId", 1, lit).caps(grammar.CapabilityShader),
		value("Block", 2).caps(grammar.CapabilityShader),
		value("BufferBlock", 3).caps(grammar.CapabilityShader),
		value("RowMajor", 4).caps(grammar.CapabilityMatrix),
		value("ColMajor", 5).caps(grammar.CapabilityMatrix),
		value("ArrayStride", 6, lit).caps(grammar.CapabilityShader),
		value("MatrixStride", 7, lit).caps(grammar.CapabilityMatrix),
		value("GLSLShared", 8).caps(grammar.CapabilityShader),
		value("GLSLPacked", 9).caps(grammar.CapabilityShader),
		value("CPacked", 10).caps(grammar.CapabilityKernel),
		value("BuiltIn", 11, grammar.OperandBuiltIn),
		value("NoPerspective", 13).caps(grammar.CapabilityShader),
		value("Flat", 14).caps(grammar.CapabilityShader),
		value("Patch", 15).caps(grammar.CapabilityTessellation),
		value("Centroid", 16).caps(grammar.CapabilityShader),
		value("Sample", 17).caps(grammar.CapabilitySampleRateShading),
		value("Invariant", 18).caps(grammar.CapabilityShader),
		value("Restrict", 19),
		value("Aliased", 20),
		value("Volatile", 21),
		value("Constant", 22).caps(grammar.CapabilityKernel),
		value("Coherent", 23),
		value("NonWritable", 24),
		value("NonReadable", 25),
		value("Uniform", 26).caps(grammar.CapabilityShader),
		value("SaturatedConversion", 28).caps(grammar.CapabilityKernel),
		value("Stream", 29, lit).caps(grammar.CapabilityGeometryStreams),
		value("Location", 30, lit).caps(grammar.CapabilityShader),
		value("Component", 31, lit).caps(grammar.CapabilityShader),
		value("Index", 32, lit).caps(grammar.CapabilityShader),
		value("Binding", 33, lit).caps(grammar.CapabilityShader),
		value("DescriptorSet", 34, lit).caps(grammar.CapabilityShader),
		value("Offset", 35, lit).caps(grammar.CapabilityShader),
		value("XfbBuffer", 36, lit).caps(grammar.CapabilityTransformFeedback),
		value("XfbStride", 37, lit).caps(grammar.CapabilityTransformFeedback),
		value("FuncParamAttr", 38, grammar.OperandFunctionParameterAttribute).caps(grammar.CapabilityKernel),
		value("FPRoundingMode", 39, grammar.OperandFPRoundingMode).caps(grammar.CapabilityKernel),
		value("FPFastMathMode", 40, grammar.OperandFPFastMathMode).caps(grammar.CapabilityKernel),
		value("LinkageAttributes", 41, str, grammar.OperandLinkageType).caps(grammar.CapabilityLinkage),
		value("NoContraction", 42).caps(grammar.CapabilityShader),
		value("InputAttachmentIndex", 43, lit).caps(grammar.CapabilityInputAttachment),
		value("Alignment", 44, lit).caps(grammar.CapabilityKernel),
		value("MaxByteOffset", 45, lit).caps(grammar.CapabilityAddresses).from(v11),
	}},
	{typ: grammar.OperandBuiltIn, entries: []operandEntry{
		value("Position", 0).caps(grammar.CapabilityShader),
		value("PointSize", 1).caps(grammar.CapabilityShader),
		value("ClipDistance", 3).caps(grammar.CapabilityClipDistance),
		value("CullDistance", 4).caps(grammar.CapabilityCullDistance),
		value("VertexId", 5).caps(grammar.CapabilityShader),
		value("InstanceId", 6).caps(grammar.CapabilityShader),
		value("PrimitiveId", 7).caps(grammar.CapabilityGeometry, grammar.CapabilityTessellation),
		value("InvocationId", 8).caps(grammar.CapabilityGeometry, grammar.CapabilityTessellation),
		value("Layer", 9).caps(grammar.CapabilityGeometry),
		value("ViewportIndex", 10).caps(grammar.CapabilityMultiViewport),
		value("TessLevelOuter", 11).caps(grammar.CapabilityTessellation),
		value("TessLevelInner", 12).caps(grammar.CapabilityTessellation),
		value("TessCoord", 13).caps(grammar.CapabilityTessellation),
		value("PatchVertices", 14).caps(grammar.CapabilityTessellation),
		value("FragCoord", 15).caps(grammar.CapabilityShader),
		value("PointCoord", 16).caps(grammar.CapabilityShader),
		value("FrontFacing", 17).caps(grammar.CapabilityShader),
		value("SampleId", 18).caps(grammar.CapabilitySampleRateShading),
		value("SamplePosition", 19).caps(grammar.CapabilitySampleRateShading),
		value("SampleMask", 20).caps(grammar.CapabilitySampleRateShading),
		value("FragDepth", 22).caps(grammar.CapabilityShader),
		value("HelperInvocation", 23).caps(grammar.CapabilityShader),
		value("NumWorkgroups", 24),
		value("WorkgroupSize", 25),
		value("WorkgroupId", 26),
		value("LocalInvocationId", 27),
		value("GlobalInvocationId", 28),
		value("LocalInvocationIndex", 29),
		value("WorkDim", 30).caps(grammar.CapabilityKernel),
		value("GlobalSize", 31).caps(grammar.CapabilityKernel),
		value("EnqueuedWorkgroupSize", 32).caps(grammar.CapabilityKernel),
		value("GlobalOffset", 33).caps(grammar.CapabilityKernel),
		value("GlobalLinearId", 34).caps(grammar.CapabilityKernel),
		value("SubgroupSize", 36).caps(grammar.CapabilityKernel),
		value("SubgroupMaxSize", 37).caps(grammar.CapabilityKernel),
		value("NumSubgroups", 38).caps(grammar.CapabilityKernel),
		value("NumEnqueuedSubgroups", 39).caps(grammar.CapabilityKernel),
		value("SubgroupId", 40).caps(grammar.CapabilityKernel),
		value("SubgroupLocalInvocationId", 41).caps(grammar.CapabilityKernel),
		value("VertexIndex", 42).caps(grammar.CapabilityShader),
		value("InstanceIndex", 43).caps(grammar.CapabilityShader),
		value("SubgroupEqMaskKHR", 4416).caps(grammar.CapabilitySubgroupBallotKHR).exts(grammar.ExtKHRShaderBallot),
		value("SubgroupGeMaskKHR", 4417).caps(grammar.CapabilitySubgroupBallotKHR).exts(grammar.ExtKHRShaderBallot),
		value("SubgroupGtMaskKHR", 4418).caps(grammar.CapabilitySubgroupBallotKHR).exts(grammar.ExtKHRShaderBallot),
		value("SubgroupLeMaskKHR", 4419).caps(grammar.CapabilitySubgroupBallotKHR).exts(grammar.ExtKHRShaderBallot),
		value("SubgroupLtMaskKHR", 4420).caps(grammar.CapabilitySubgroupBallotKHR).exts(grammar.ExtKHRShaderBallot),
		value("BaseVertex", 4424).caps(grammar.CapabilityDrawParameters).exts(grammar.ExtKHRShaderDrawParameters),
		value("BaseInstance", 4425).caps(grammar.CapabilityDrawParameters).exts(grammar.ExtKHRShaderDrawParameters),
		value("DrawIndex", 4426).caps(grammar.CapabilityDrawParameters).exts(grammar.ExtKHRShaderDrawParameters),
		value("DeviceIndex", 4438).caps(grammar.CapabilityDeviceGroup).exts(grammar.ExtKHRDeviceGroup),
		value("ViewIndex", 4440).caps(grammar.CapabilityMultiView).exts(grammar.ExtKHRMultiview),
	}},
	{typ: grammar.OperandSelectionControl, entries: []operandEntry{
		value("None", 0),
		value("Flatten", 0x1),
		value("DontFlatten", 0x2),
	}},
	{typ: grammar.OperandLoopControl, entries: []operandEntry{
		value("None", 0),
		value("Unroll", 0x1),
		value("DontUnroll", 0x2),
		value("DependencyInfinite", 0x4).from(v11),
		value("DependencyLength", 0x8, lit).from(v11),
	}},
	{typ: grammar.OperandFunctionControl, entries: []operandEntry{
		value("None", 0),
		value("Inline", 0x1),
		value("DontInline", 0x2),
		value("Pure", 0x4),
		value("Const", 0x8),
	}},
	{typ: grammar.OperandMemorySemanticsId, entries: []operandEntry{
		value("Relaxed", 0),
		value("Acquire", 0x2),
		value("Release", 0x4),
		value("AcquireRelease", 0x8),
		value("SequentiallyConsistent", 0x10),
		value("UniformMemory", 0x40).caps(grammar.CapabilityShader),
		value("SubgroupMemory", 0x80),
		value("WorkgroupMemory", 0x100),
		value("CrossWorkgroupMemory", 0x200),
		value("AtomicCounterMemory", 0x400).caps(grammar.CapabilityAtomicStorage),
		value("ImageMemory", 0x800),
	}},
	{typ: grammar.OperandMemoryAccess, entries: []operandEntry{
		value("None", 0),
		value("Volatile", 0x1),
		value("Aligned", 0x2, lit),
		value("Nontemporal", 0x4),
	}},
	{typ: grammar.OperandScopeId, entries: []operandEntry{
		value("CrossDevice", 0),
		value("Device", 1),
		value("Workgroup", 2),
		value("Subgroup", 3),
		value("Invocation", 4),
	}},
	{typ: grammar.OperandImageOperands, entries: []operandEntry{
		value("None", 0),
		value("Bias", 0x1, id).caps(grammar.CapabilityShader),
		value("Lod", 0x2, id),
		value("Grad", 0x4, id, id),
		value("ConstOffset", 0x8, id),
		value("Offset", 0x10, id).caps(grammar.CapabilityImageGatherExtended),
		value("ConstOffsets", 0x20, id),
		value("Sample", 0x40, id),
		value("MinLod", 0x80, id).caps(grammar.CapabilityMinLod),
	}},
	{typ: grammar.OperandGroupOperation, entries: []operandEntry{
		value("Reduce", 0).caps(grammar.CapabilityKernel),
		value("InclusiveScan", 1).caps(grammar.CapabilityKernel),
		value("ExclusiveScan", 2).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandKernelProfilingInfo, entries: []operandEntry{
		value("None", 0),
		value("CmdExecTime", 0x1).caps(grammar.CapabilityKernel),
	}},
	{typ: grammar.OperandCapability, entries: capabilityOperands()},
}

// capabilityOperands lists the values of OpCapability. Capabilities
// introduced by an extension are gated by that extension.
func capabilityOperands() []operandEntry {
	since11 := map[grammar.Capability]bool{
		grammar.CapabilitySubgroupDispatch: true,
		grammar.CapabilityNamedBarrier:     true,
		grammar.CapabilityPipeStorage:      true,
	}
	byExtension := map[grammar.Capability]grammar.Extension{
		grammar.CapabilitySubgroupBallotKHR:                  grammar.ExtKHRShaderBallot,
		grammar.CapabilityDrawParameters:                     grammar.ExtKHRShaderDrawParameters,
		grammar.CapabilitySubgroupVoteKHR:                    grammar.ExtKHRSubgroupVote,
		grammar.CapabilityStorageBuffer16BitAccess:           grammar.ExtKHR16BitStorage,
		grammar.CapabilityUniformAndStorageBuffer16BitAccess: grammar.ExtKHR16BitStorage,
		grammar.CapabilityStoragePushConstant16:              grammar.ExtKHR16BitStorage,
		grammar.CapabilityStorageInputOutput16:               grammar.ExtKHR16BitStorage,
		grammar.CapabilityDeviceGroup:                        grammar.ExtKHRDeviceGroup,
		grammar.CapabilityMultiView:                          grammar.ExtKHRMultiview,
	}

	out := make([]operandEntry, 0, len(allCapabilities))
	for _, c := range allCapabilities {
		e := value(c.String(), uint32(c))
		if since11[c] {
			e = e.from(v11)
		}
		if x, ok := byExtension[c]; ok {
			e = e.exts(x)
		}
		out = append(out, e)
	}
	return out
}

var allCapabilities = []grammar.Capability{
	grammar.CapabilityMatrix,
	grammar.CapabilityShader,
	grammar.CapabilityGeometry,
	grammar.CapabilityTessellation,
	grammar.CapabilityAddresses,
	grammar.CapabilityLinkage,
	grammar.CapabilityKernel,
	grammar.CapabilityVector16,
	grammar.CapabilityFloat16Buffer,
	grammar.CapabilityFloat16,
	grammar.CapabilityFloat64,
	grammar.CapabilityInt64,
	grammar.CapabilityInt64Atomics,
	grammar.CapabilityImageBasic,
	grammar.CapabilityImageReadWrite,
	grammar.CapabilityImageMipmap,
	grammar.CapabilityPipes,
	grammar.CapabilityGroups,
	grammar.CapabilityDeviceEnqueue,
	grammar.CapabilityLiteralSampler,
	grammar.CapabilityAtomicStorage,
	grammar.CapabilityInt16,
	grammar.CapabilityTessellationPointSize,
	grammar.CapabilityGeometryPointSize,
	grammar.CapabilityImageGatherExtended,
	grammar.CapabilityStorageImageMultisample,
	grammar.CapabilityUniformBufferArrayDynamicIndexing,
	grammar.CapabilitySampledImageArrayDynamicIndexing,
	grammar.CapabilityStorageBufferArrayDynamicIndexing,
	grammar.CapabilityStorageImageArrayDynamicIndexing,
	grammar.CapabilityClipDistance,
	grammar.CapabilityCullDistance,
	grammar.CapabilityImageCubeArray,
	grammar.CapabilitySampleRateShading,
	grammar.CapabilityImageRect,
	grammar.CapabilitySampledRect,
	grammar.CapabilityGenericPointer,
	grammar.CapabilityInt8,
	grammar.CapabilityInputAttachment,
	grammar.CapabilitySparseResidency,
	grammar.CapabilityMinLod,
	grammar.CapabilitySampled1D,
	grammar.CapabilityImage1D,
	grammar.CapabilitySampledCubeArray,
	grammar.CapabilitySampledBuffer,
	grammar.CapabilityImageBuffer,
	grammar.CapabilityImageMSArray,
	grammar.CapabilityStorageImageExtendedFormats,
	grammar.CapabilityImageQuery,
	grammar.CapabilityDerivativeControl,
	grammar.CapabilityInterpolationFunction,
	grammar.CapabilityTransformFeedback,
	grammar.CapabilityGeometryStreams,
	grammar.CapabilityStorageImageReadWithoutFormat,
	grammar.CapabilityStorageImageWriteWithoutFormat,
	grammar.CapabilityMultiViewport,
	grammar.CapabilitySubgroupDispatch,
	grammar.CapabilityNamedBarrier,
	grammar.CapabilityPipeStorage,
	grammar.CapabilitySubgroupBallotKHR,
	grammar.CapabilityDrawParameters,
	grammar.CapabilitySubgroupVoteKHR,
	grammar.CapabilityStorageBuffer16BitAccess,
	grammar.CapabilityUniformAndStorageBuffer16BitAccess,
	grammar.CapabilityStoragePushConstant16,
	grammar.CapabilityStorageInputOutput16,
	grammar.CapabilityDeviceGroup,
	grammar.CapabilityMultiView,
}
