package spvgrammar

import "github.com/wippyai/spirv-tables/grammar"

var opcodes = []opcodeEntry{
	// Miscellaneous, debug, annotation
	inst("OpNop", 0),
	typed("OpUndef", 1),
	inst("OpSourceContinued", 2, str),
	inst("OpSource", 3, grammar.OperandSourceLanguage, lit, optID, optStr),
	inst("OpSourceExtension", 4, str),
	inst("OpName", 5, id, str),
	inst("OpMemberName", 6, id, lit, str),
	result("OpString", 7, str),
	inst("OpLine", 8, id, lit, lit),
	inst("OpExtension", 10, str),
	result("OpExtInstImport", 11, str),
	typed("OpExtInst", 12, id, grammar.OperandExtInstNumber, varID),
	inst("OpMemoryModel", 14, grammar.OperandAddressingModel, grammar.OperandMemoryModel),
	inst("OpEntryPoint", 15, grammar.OperandExecutionModel, id, str, varID),
	inst("OpExecutionMode", 16, id, grammar.OperandExecutionMode),
	inst("OpCapability", 17, grammar.OperandCapability),

	// Types
	result("OpTypeVoid", 19),
	result("OpTypeBool", 20),
	result("OpTypeInt", 21, lit, lit),
	result("OpTypeFloat", 22, lit),
	result("OpTypeVector", 23, id, lit),
	result("OpTypeMatrix", 24, id, lit).caps(grammar.CapabilityMatrix),
	result("OpTypeImage", 25, id, grammar.OperandDimensionality, lit, lit, lit, lit,
		grammar.OperandSamplerImageFormat, optAQ),
	result("OpTypeSampler", 26),
	result("OpTypeSampledImage", 27, id),
	result("OpTypeArray", 28, id, id),
	result("OpTypeRuntimeArray", 29, id).caps(grammar.CapabilityShader),
	result("OpTypeStruct", 30, varID),
	result("OpTypeOpaque", 31, str).caps(grammar.CapabilityKernel),
	result("OpTypePointer", 32, grammar.OperandStorageClass, id),
	result("OpTypeFunction", 33, id, varID),
	result("OpTypeEvent", 34).caps(grammar.CapabilityKernel),
	result("OpTypeDeviceEvent", 35).caps(grammar.CapabilityDeviceEnqueue),
	result("OpTypeReserveId", 36).caps(grammar.CapabilityPipes),
	result("OpTypeQueue", 37).caps(grammar.CapabilityDeviceEnqueue),
	result("OpTypePipe", 38, grammar.OperandAccessQualifier).caps(grammar.CapabilityPipes),
	inst("OpTypeForwardPointer", 39, id, grammar.OperandStorageClass).caps(grammar.CapabilityAddresses),

	// Constants
	typed("OpConstantTrue", 41),
	typed("OpConstantFalse", 42),
	typed("OpConstant", 43, grammar.OperandTypedLiteralNumber),
	typed("OpConstantComposite", 44, varID),
	typed("OpConstantSampler", 45, grammar.OperandSamplerAddressingMode, lit,
		grammar.OperandSamplerFilterMode).caps(grammar.CapabilityLiteralSampler),
	typed("OpConstantNull", 46),
	typed("OpSpecConstantTrue", 48),
	typed("OpSpecConstantFalse", 49),
	typed("OpSpecConstant", 50, grammar.OperandTypedLiteralNumber),
	typed("OpSpecConstantComposite", 51, varID),
	typed("OpSpecConstantOp", 52, grammar.OperandSpecConstantOpNumber, varID),

	// Functions
	typed("OpFunction", 54, grammar.OperandFunctionControl, id),
	typed("OpFunctionParameter", 55),
	inst("OpFunctionEnd", 56),
	typed("OpFunctionCall", 57, id, varID),

	// Memory
	typed("OpVariable", 59, grammar.OperandStorageClass, optID),
	typed("OpImageTexelPointer", 60, id, id, id),
	typed("OpLoad", 61, id, optMem),
	inst("OpStore", 62, id, id, optMem),
	inst("OpCopyMemory", 63, id, id, optMem),
	inst("OpCopyMemorySized", 64, id, id, id, optMem).caps(grammar.CapabilityAddresses),
	typed("OpAccessChain", 65, id, varID),
	typed("OpInBoundsAccessChain", 66, id, varID),
	typed("OpPtrAccessChain", 67, id, id, varID).caps(grammar.CapabilityAddresses),
	typed("OpArrayLength", 68, id, lit).caps(grammar.CapabilityShader),
	typed("OpGenericPtrMemSemantics", 69, id).caps(grammar.CapabilityKernel),
	typed("OpInBoundsPtrAccessChain", 70, id, id, varID).caps(grammar.CapabilityAddresses),

	// Annotation
	inst("OpDecorate", 71, id, grammar.OperandDecoration),
	inst("OpMemberDecorate", 72, id, lit, grammar.OperandDecoration),
	result("OpDecorationGroup", 73),
	inst("OpGroupDecorate", 74, id, varID),
	inst("OpGroupMemberDecorate", 75, id, varIDLit),

	// Composite
	typed("OpVectorExtractDynamic", 77, id, id),
	typed("OpVectorInsertDynamic", 78, id, id, id),
	typed("OpVectorShuffle", 79, id, id, varLit),
	typed("OpCompositeConstruct", 80, varID),
	typed("OpCompositeExtract", 81, id, varLit),
	typed("OpCompositeInsert", 82, id, id, varLit),
	typed("OpCopyObject", 83, id),
	typed("OpTranspose", 84, id).caps(grammar.CapabilityMatrix),

	// Image
	typed("OpSampledImage", 86, id, id),
	typed("OpImageSampleImplicitLod", 87, id, id, optImg).caps(grammar.CapabilityShader),
	typed("OpImageSampleExplicitLod", 88, id, id, grammar.OperandImageOperands),
	typed("OpImageFetch", 95, id, id, optImg),
	typed("OpImageRead", 98, id, id, optImg),
	inst("OpImageWrite", 99, id, id, id, optImg),
	typed("OpImage", 100, id),
	typed("OpImageQuerySizeLod", 103, id, id).caps(grammar.CapabilityKernel, grammar.CapabilityImageQuery),
	typed("OpImageQuerySize", 104, id).caps(grammar.CapabilityKernel, grammar.CapabilityImageQuery),

	// Conversion
	typed("OpConvertFToU", 109, id),
	typed("OpConvertFToS", 110, id),
	typed("OpConvertSToF", 111, id),
	typed("OpConvertUToF", 112, id),
	typed("OpUConvert", 113, id),
	typed("OpSConvert", 114, id),
	typed("OpFConvert", 115, id),
	typed("OpConvertPtrToU", 117, id).caps(grammar.CapabilityAddresses),
	typed("OpConvertUToPtr", 120, id).caps(grammar.CapabilityAddresses),
	typed("OpPtrCastToGeneric", 121, id).caps(grammar.CapabilityKernel),
	typed("OpGenericCastToPtr", 122, id).caps(grammar.CapabilityKernel),
	typed("OpBitcast", 124, id),

	// Arithmetic
	typed("OpSNegate", 126, id),
	typed("OpFNegate", 127, id),
	typed("OpIAdd", 128, id, id),
	typed("OpFAdd", 129, id, id),
	typed("OpISub", 130, id, id),
	typed("OpFSub", 131, id, id),
	typed("OpIMul", 132, id, id),
	typed("OpFMul", 133, id, id),
	typed("OpUDiv", 134, id, id),
	typed("OpSDiv", 135, id, id),
	typed("OpFDiv", 136, id, id),
	typed("OpUMod", 137, id, id),
	typed("OpSRem", 138, id, id),
	typed("OpSMod", 139, id, id),
	typed("OpFRem", 140, id, id),
	typed("OpFMod", 141, id, id),
	typed("OpVectorTimesScalar", 142, id, id),
	typed("OpMatrixTimesScalar", 143, id, id).caps(grammar.CapabilityMatrix),
	typed("OpVectorTimesMatrix", 144, id, id).caps(grammar.CapabilityMatrix),
	typed("OpMatrixTimesVector", 145, id, id).caps(grammar.CapabilityMatrix),
	typed("OpMatrixTimesMatrix", 146, id, id).caps(grammar.CapabilityMatrix),
	typed("OpOuterProduct", 147, id, id).caps(grammar.CapabilityMatrix),
	typed("OpDot", 148, id, id),

	// Relational and logical
	typed("OpAny", 154, id),
	typed("OpAll", 155, id),
	typed("OpIsNan", 156, id),
	typed("OpIsInf", 157, id),
	typed("OpLogicalEqual", 164, id, id),
	typed("OpLogicalNotEqual", 165, id, id),
	typed("OpLogicalOr", 166, id, id),
	typed("OpLogicalAnd", 167, id, id),
	typed("OpLogicalNot", 168, id),
	typed("OpSelect", 169, id, id, id),
	typed("OpIEqual", 170, id, id),
	typed("OpINotEqual", 171, id, id),
	typed("OpUGreaterThan", 172, id, id),
	typed("OpSGreaterThan", 173, id, id),
	typed("OpUGreaterThanEqual", 174, id, id),
	typed("OpSGreaterThanEqual", 175, id, id),
	typed("OpULessThan", 176, id, id),
	typed("OpSLessThan", 177, id, id),
	typed("OpULessThanEqual", 178, id, id),
	typed("OpSLessThanEqual", 179, id, id),
	typed("OpFOrdEqual", 180, id, id),
	typed("OpFUnordEqual", 181, id, id),

	// Bit
	typed("OpShiftRightLogical", 194, id, id),
	typed("OpShiftRightArithmetic", 195, id, id),
	typed("OpShiftLeftLogical", 196, id, id),
	typed("OpBitwiseOr", 197, id, id),
	typed("OpBitwiseXor", 198, id, id),
	typed("OpBitwiseAnd", 199, id, id),
	typed("OpNot", 200, id),
	typed("OpBitCount", 205, id),

	// Derivative
	typed("OpDPdx", 207, id).caps(grammar.CapabilityShader),
	typed("OpDPdy", 208, id).caps(grammar.CapabilityShader),
	typed("OpFwidth", 209, id).caps(grammar.CapabilityShader),
	typed("OpDPdxFine", 210, id).caps(grammar.CapabilityDerivativeControl),
	typed("OpDPdyFine", 211, id).caps(grammar.CapabilityDerivativeControl),

	// Primitive
	inst("OpEmitVertex", 218).caps(grammar.CapabilityGeometry),
	inst("OpEndPrimitive", 219).caps(grammar.CapabilityGeometry),
	inst("OpEmitStreamVertex", 220, id).caps(grammar.CapabilityGeometryStreams),
	inst("OpEndStreamPrimitive", 221, id).caps(grammar.CapabilityGeometryStreams),

	// Barrier and atomic
	inst("OpControlBarrier", 224, scopeID, scopeID, semID),
	inst("OpMemoryBarrier", 225, scopeID, semID),
	typed("OpAtomicLoad", 227, id, scopeID, semID),
	inst("OpAtomicStore", 228, id, scopeID, semID, id),
	typed("OpAtomicExchange", 229, id, scopeID, semID, id),
	typed("OpAtomicCompareExchange", 230, id, scopeID, semID, semID, id, id),
	typed("OpAtomicIIncrement", 232, id, scopeID, semID),
	typed("OpAtomicIDecrement", 233, id, scopeID, semID),
	typed("OpAtomicIAdd", 234, id, scopeID, semID, id),
	typed("OpAtomicISub", 235, id, scopeID, semID, id),

	// Control flow
	typed("OpPhi", 245, varID),
	inst("OpLoopMerge", 246, id, id, grammar.OperandLoopControl),
	inst("OpSelectionMerge", 247, id, grammar.OperandSelectionControl),
	result("OpLabel", 248),
	inst("OpBranch", 249, id),
	inst("OpBranchConditional", 250, id, id, id, varLit),
	inst("OpSwitch", 251, id, id, varLitID),
	inst("OpKill", 252).caps(grammar.CapabilityShader),
	inst("OpReturn", 253),
	inst("OpReturnValue", 254, id),
	inst("OpUnreachable", 255),
	inst("OpLifetimeStart", 256, id, lit).caps(grammar.CapabilityKernel),
	inst("OpLifetimeStop", 257, id, lit).caps(grammar.CapabilityKernel),

	// Group and pipe
	typed("OpGroupAll", 261, scopeID, id).caps(grammar.CapabilityGroups),
	typed("OpGroupAny", 262, scopeID, id).caps(grammar.CapabilityGroups),
	typed("OpGroupBroadcast", 263, scopeID, id, id).caps(grammar.CapabilityGroups),
	typed("OpGroupIAdd", 264, scopeID, grammar.OperandGroupOperation, id).caps(grammar.CapabilityGroups),
	typed("OpReadPipe", 274, id, id, id, id).caps(grammar.CapabilityPipes),
	typed("OpWritePipe", 275, id, id, id, id).caps(grammar.CapabilityPipes),
	typed("OpEnqueueMarker", 291, id, id, id, id).caps(grammar.CapabilityDeviceEnqueue),
	typed("OpGetDefaultQueue", 303).caps(grammar.CapabilityDeviceEnqueue),

	// Sparse and debug
	typed("OpImageSparseSampleImplicitLod", 305, id, id, optImg).caps(grammar.CapabilitySparseResidency),
	typed("OpImageSparseTexelsResident", 316, id).caps(grammar.CapabilitySparseResidency),
	inst("OpNoLine", 317),
	typed("OpImageSparseRead", 320, id, id, optImg).caps(grammar.CapabilitySparseResidency),

	// Introduced in 1.1
	typed("OpSizeOf", 321, id).caps(grammar.CapabilityAddresses).from(v11),
	result("OpTypePipeStorage", 322).caps(grammar.CapabilityPipeStorage).from(v11),
	typed("OpConstantPipeStorage", 323, lit, lit, lit).caps(grammar.CapabilityPipeStorage).from(v11),
	typed("OpCreatePipeFromPipeStorage", 324, id).caps(grammar.CapabilityPipeStorage).from(v11),
	typed("OpGetKernelLocalSizeForSubgroupCount", 325, id, id, id, id, id).
		caps(grammar.CapabilitySubgroupDispatch).from(v11),
	typed("OpGetKernelMaxNumSubgroups", 326, id, id, id, id).
		caps(grammar.CapabilitySubgroupDispatch).from(v11),
	result("OpTypeNamedBarrier", 327).caps(grammar.CapabilityNamedBarrier).from(v11),
	typed("OpNamedBarrierInitialize", 328, id).caps(grammar.CapabilityNamedBarrier).from(v11),
	inst("OpMemoryNamedBarrier", 329, id, scopeID, semID).caps(grammar.CapabilityNamedBarrier).from(v11),
	inst("OpModuleProcessed", 330, str).from(v11),

	// Extensions
	typed("OpSubgroupBallotKHR", 4421, id).caps(grammar.CapabilitySubgroupBallotKHR),
	typed("OpSubgroupFirstInvocationKHR", 4422, id).caps(grammar.CapabilitySubgroupBallotKHR),
	typed("OpSubgroupAllKHR", 4428, id).caps(grammar.CapabilitySubgroupVoteKHR),
	typed("OpSubgroupAnyKHR", 4429, id).caps(grammar.CapabilitySubgroupVoteKHR),
	typed("OpSubgroupAllEqualKHR", 4430, id).caps(grammar.CapabilitySubgroupVoteKHR),
	typed("OpSubgroupReadInvocationKHR", 4432, id, id).caps(grammar.CapabilitySubgroupBallotKHR),
}
