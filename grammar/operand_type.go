package grammar

import (
	"fmt"
	"strings"
)

// OperandType tags what kind of value an operand slot holds.
type OperandType uint32

const (
	OperandNone OperandType = iota

	// ids
	OperandId
	OperandTypeId
	OperandResultId
	OperandMemorySemanticsId
	OperandScopeId

	// literals
	OperandLiteralInteger
	OperandLiteralString
	OperandTypedLiteralNumber
	OperandExtInstNumber
	OperandSpecConstantOpNumber

	// enumerants
	OperandCapability
	OperandSourceLanguage
	OperandExecutionModel
	OperandAddressingModel
	OperandMemoryModel
	OperandExecutionMode
	OperandStorageClass
	OperandDimensionality
	OperandSamplerAddressingMode
	OperandSamplerFilterMode
	OperandSamplerImageFormat
	OperandFPRoundingMode
	OperandFPFastMathMode
	OperandLinkageType
	OperandAccessQualifier
	OperandFunctionParameterAttribute
	OperandDecoration
	OperandBuiltIn
	OperandSelectionControl
	OperandLoopControl
	OperandFunctionControl
	OperandMemoryAccess
	OperandImageOperands
	OperandGroupOperation
	OperandKernelProfilingInfo

	// optional operands, present zero or one time
	OperandOptionalId
	OperandOptionalImage
	OperandOptionalMemoryAccess
	OperandOptionalLiteralInteger
	OperandOptionalLiteralString
	OperandOptionalAccessQualifier

	// variable operands, present zero or more times
	OperandVariableId
	OperandVariableLiteralInteger
	OperandVariableLiteralId
	OperandVariableIdLiteralInteger

	numOperandTypes
)

var operandTypeNames = [numOperandTypes]string{
	OperandNone:                       "NONE",
	OperandId:                         "ID",
	OperandTypeId:                     "type ID",
	OperandResultId:                   "result ID",
	OperandMemorySemanticsId:          "memory semantics ID",
	OperandScopeId:                    "scope ID",
	OperandLiteralInteger:             "literal number",
	OperandLiteralString:              "literal string",
	OperandTypedLiteralNumber:         "possibly multi-word literal number",
	OperandExtInstNumber:              "extended instruction",
	OperandSpecConstantOpNumber:       "spec constant op number",
	OperandCapability:                 "capability",
	OperandSourceLanguage:             "source language",
	OperandExecutionModel:             "execution model",
	OperandAddressingModel:            "addressing model",
	OperandMemoryModel:                "memory model",
	OperandExecutionMode:              "execution mode",
	OperandStorageClass:               "storage class",
	OperandDimensionality:             "dimensionality",
	OperandSamplerAddressingMode:      "sampler addressing mode",
	OperandSamplerFilterMode:          "sampler filter mode",
	OperandSamplerImageFormat:         "image format",
	OperandFPRoundingMode:             "floating-point rounding mode",
	OperandFPFastMathMode:             "floating-point fast math mode",
	OperandLinkageType:                "linkage type",
	OperandAccessQualifier:            "access qualifier",
	OperandFunctionParameterAttribute: "function parameter attribute",
	OperandDecoration:                 "decoration",
	OperandBuiltIn:                    "built-in",
	OperandSelectionControl:           "selection control",
	OperandLoopControl:                "loop control",
	OperandFunctionControl:            "function control",
	OperandMemoryAccess:               "memory access",
	OperandImageOperands:              "image operand",
	OperandGroupOperation:             "group operation",
	OperandKernelProfilingInfo:        "kernel profiling info",
	OperandOptionalId:                 "optional ID",
	OperandOptionalImage:              "optional image operands",
	OperandOptionalMemoryAccess:       "optional memory access",
	OperandOptionalLiteralInteger:     "optional literal number",
	OperandOptionalLiteralString:      "optional literal string",
	OperandOptionalAccessQualifier:    "optional access qualifier",
	OperandVariableId:                 "variable IDs",
	OperandVariableLiteralInteger:     "variable literal numbers",
	OperandVariableLiteralId:          "variable literal number, ID pairs",
	OperandVariableIdLiteralInteger:   "variable ID, literal number pairs",
}

func (t OperandType) String() string {
	if t < numOperandTypes {
		return operandTypeNames[t]
	}
	return fmt.Sprintf("OperandType(%d)", uint32(t))
}

// OperandTypeFromString returns the operand type whose name matches s,
// ignoring case, spaces, hyphens and underscores, so "StorageClass" and
// "storage class" both name OperandStorageClass.
func OperandTypeFromString(s string) (OperandType, bool) {
	key := squashName(s)
	if key == "" {
		return OperandNone, false
	}
	for i, name := range operandTypeNames {
		if squashName(name) == key {
			return OperandType(i), true
		}
	}
	return OperandNone, false
}

func squashName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// Base strips the optional/variable wrapper from t. Operand groups are
// keyed by base type, so lookups normalise through Base.
func (t OperandType) Base() OperandType {
	switch t {
	case OperandOptionalId, OperandVariableId:
		return OperandId
	case OperandOptionalImage:
		return OperandImageOperands
	case OperandOptionalMemoryAccess:
		return OperandMemoryAccess
	case OperandOptionalLiteralInteger, OperandVariableLiteralInteger:
		return OperandLiteralInteger
	case OperandOptionalLiteralString:
		return OperandLiteralString
	case OperandOptionalAccessQualifier:
		return OperandAccessQualifier
	}
	return t
}

// IsOptional reports whether the slot may be absent.
func (t OperandType) IsOptional() bool {
	return t >= OperandOptionalId && t < numOperandTypes
}

// IsVariable reports whether the slot may repeat.
func (t OperandType) IsVariable() bool {
	return t >= OperandVariableId && t < numOperandTypes
}

// IsId reports whether the slot holds an <id>.
func (t OperandType) IsId() bool {
	switch t {
	case OperandId, OperandTypeId, OperandResultId, OperandMemorySemanticsId,
		OperandScopeId, OperandOptionalId, OperandVariableId:
		return true
	}
	return false
}

// IsMask reports whether values of the type combine as bit flags.
func (t OperandType) IsMask() bool {
	switch t.Base() {
	case OperandFPFastMathMode, OperandSelectionControl, OperandLoopControl,
		OperandFunctionControl, OperandMemoryAccess, OperandImageOperands,
		OperandKernelProfilingInfo, OperandMemorySemanticsId:
		return true
	}
	return false
}
