package spvgrammar

import "github.com/wippyai/spirv-tables/grammar"

var extInstSets = []extInstSet{
	{name: "GLSL.std.450", typ: grammar.ExtInstTypeGLSLStd450, entries: glslStd450},
	{name: "OpenCL.std", typ: grammar.ExtInstTypeOpenCLStd, entries: openCLStd},
}

var glslStd450 = []extInstEntry{
	ext("Round", 1, id),
	ext("RoundEven", 2, id),
	ext("Trunc", 3, id),
	ext("FAbs", 4, id),
	ext("SAbs", 5, id),
	ext("FSign", 6, id),
	ext("SSign", 7, id),
	ext("Floor", 8, id),
	ext("Ceil", 9, id),
	ext("Fract", 10, id),
	ext("Radians", 11, id),
	ext("Degrees", 12, id),
	ext("Sin", 13, id),
	ext("Cos", 14, id),
	ext("Tan", 15, id),
	ext("Asin", 16, id),
	ext("Acos", 17, id),
	ext("Atan", 18, id),
	ext("Sinh", 19, id),
	ext("Cosh", 20, id),
	ext("Tanh", 21, id),
	ext("Asinh", 22, id),
	ext("Acosh", 23, id),
	ext("Atanh", 24, id),
	ext("Atan2", 25, id, id),
	ext("Pow", 26, id, id),
	ext("Exp", 27, id),
	ext("Log", 28, id),
	ext("Exp2", 29, id),
	ext("Log2", 30, id),
	ext("Sqrt", 31, id),
	ext("InverseSqrt", 32, id),
	ext("Determinant", 33, id),
	ext("MatrixInverse", 34, id),
	ext("Modf", 35, id, id),
	ext("ModfStruct", 36, id),
	ext("FMin", 37, id, id),
	ext("UMin", 38, id, id),
	ext("SMin", 39, id, id),
	ext("FMax", 40, id, id),
	ext("UMax", 41, id, id),
	ext("SMax", 42, id, id),
	ext("FClamp", 43, id, id, id),
	ext("UClamp", 44, id, id, id),
	ext("SClamp", 45, id, id, id),
	ext("FMix", 46, id, id, id),
	ext("IMix", 47, id, id, id),
	ext("Step", 48, id, id),
	ext("SmoothStep", 49, id, id, id),
	ext("Fma", 50, id, id, id),
	ext("Frexp", 51, id, id),
	ext("FrexpStruct", 52, id),
	ext("Ldexp", 53, id, id),
	ext("PackSnorm4x8", 54, id),
	ext("PackUnorm4x8", 55, id),
	ext("PackSnorm2x16", 56, id),
	ext("PackUnorm2x16", 57, id),
	ext("PackHalf2x16", 58, id),
	ext("PackDouble2x32", 59, id).caps(grammar.CapabilityFloat64),
	ext("UnpackSnorm2x16", 60, id),
	ext("UnpackUnorm2x16", 61, id),
	ext("UnpackHalf2x16", 62, id),
	ext("UnpackSnorm4x8", 63, id),
	ext("UnpackUnorm4x8", 64, id),
	ext("UnpackDouble2x32", 65, id).caps(grammar.CapabilityFloat64),
	ext("Length", 66, id),
	ext("Distance", 67, id, id),
	ext("Cross", 68, id, id),
	ext("Normalize", 69, id),
	ext("FaceForward", 70, id, id, id),
	ext("Reflect", 71, id, id),
	ext("Refract", 72, id, id, id),
	ext("FindILsb", 73, id),
	ext("FindSMsb", 74, id),
	ext("FindUMsb", 75, id),
	ext("InterpolateAtCentroid", 76, id).caps(grammar.CapabilityInterpolationFunction),
	ext("InterpolateAtSample", 77, id, id).caps(grammar.CapabilityInterpolationFunction),
	ext("InterpolateAtOffset", 78, id, id).caps(grammar.CapabilityInterpolationFunction),
	ext("NMin", 79, id, id),
	ext("NMax", 80, id, id),
	ext("NClamp", 81, id, id, id),
}

var openCLStd = []extInstEntry{
	ext("acos", 0, id),
	ext("acosh", 1, id),
	ext("acospi", 2, id),
	ext("asin", 3, id),
	ext("asinh", 4, id),
	ext("asinpi", 5, id),
	ext("atan", 6, id),
	ext("atan2", 7, id, id),
	ext("atanh", 8, id),
	ext("atanpi", 9, id),
	ext("atan2pi", 10, id, id),
	ext("cbrt", 11, id),
	ext("ceil", 12, id),
	ext("copysign", 13, id, id),
	ext("cos", 14, id),
	ext("cosh", 15, id),
	ext("cospi", 16, id),
	ext("erfc", 17, id),
	ext("erf", 18, id),
	ext("exp", 19, id),
	ext("exp2", 20, id),
	ext("exp10", 21, id),
	ext("expm1", 22, id),
	ext("fabs", 23, id),
	ext("fdim", 24, id, id),
	ext("floor", 25, id),
	ext("fma", 26, id, id, id),
	ext("fmax", 27, id, id),
	ext("fmin", 28, id, id),
	ext("fmod", 29, id, id),
	ext("fract", 30, id, id),
	ext("frexp", 31, id, id),
	ext("hypot", 32, id, id),
	ext("ilogb", 33, id),
	ext("ldexp", 34, id, id),
	ext("lgamma", 35, id),
	ext("lgamma_r", 36, id, id),
	ext("log", 37, id),
	ext("log2", 38, id),
	ext("log10", 39, id),
	ext("log1p", 40, id),
	ext("logb", 41, id),
	ext("mad", 42, id, id, id),
	ext("maxmag", 43, id, id),
	ext("minmag", 44, id, id),
	ext("modf", 45, id, id),
	ext("nan", 46, id),
	ext("nextafter", 47, id, id),
	ext("pow", 48, id, id),
	ext("pown", 49, id, id),
	ext("powr", 50, id, id),
	ext("remainder", 51, id, id),
	ext("remquo", 52, id, id, id),
	ext("rint", 53, id),
	ext("rootn", 54, id, id),
	ext("round", 55, id),
	ext("rsqrt", 56, id),
	ext("sin", 57, id),
	ext("sincos", 58, id, id),
	ext("sinh", 59, id),
	ext("sinpi", 60, id),
	ext("sqrt", 61, id),
	ext("tan", 62, id),
	ext("tanh", 63, id),
	ext("tanpi", 64, id),
	ext("tgamma", 65, id),
	ext("trunc", 66, id),
	ext("s_abs", 141, id),
	ext("vloadn", 171, id, id, lit),
	ext("vstoren", 172, id, id, id),
	ext("printf", 184, id, varID),
	ext("prefetch", 185, id, id),
}
