package grammar

import (
	"fmt"

	"github.com/wippyai/spirv-tables/enumset"
	"github.com/wippyai/spirv-tables/errors"
)

// Extension is a source extension a module declares with OpExtension.
type Extension uint32

const (
	ExtKHRShaderBallot Extension = iota
	ExtKHRShaderDrawParameters
	ExtKHRSubgroupVote
	ExtKHR16BitStorage
	ExtKHRDeviceGroup
	ExtKHRMultiview

	numExtensions
)

var extensionNames = [numExtensions]string{
	ExtKHRShaderBallot:         "SPV_KHR_shader_ballot",
	ExtKHRShaderDrawParameters: "SPV_KHR_shader_draw_parameters",
	ExtKHRSubgroupVote:         "SPV_KHR_subgroup_vote",
	ExtKHR16BitStorage:         "SPV_KHR_16bit_storage",
	ExtKHRDeviceGroup:          "SPV_KHR_device_group",
	ExtKHRMultiview:            "SPV_KHR_multiview",
}

// AllExtensions lists every known extension.
func AllExtensions() []Extension {
	out := make([]Extension, numExtensions)
	for i := range out {
		out[i] = Extension(i)
	}
	return out
}

// String returns the name used in OpExtension, e.g. "SPV_KHR_shader_ballot".
func (e Extension) String() string {
	if e < numExtensions {
		return extensionNames[e]
	}
	return fmt.Sprintf("Extension(%d)", uint32(e))
}

// ExtensionFromString returns the extension with the exact name s.
func ExtensionFromString(s string) (Extension, error) {
	for i, name := range extensionNames {
		if name == s {
			return Extension(i), nil
		}
	}
	return 0, errors.NotFound(errors.PhaseParse, "extension", s)
}

// ExtensionSet is an immutable set of extensions.
type ExtensionSet = enumset.Set[Extension]

// Extensions builds an ExtensionSet.
func Extensions(exts ...Extension) ExtensionSet {
	return enumset.Of(exts...)
}

// FormatExtensions renders a set as "{SPV_KHR_shader_ballot}".
func FormatExtensions(s ExtensionSet) string {
	return s.Format(Extension.String)
}

// ParseExtensions resolves a list of extension names into a set.
func ParseExtensions(names []string) (ExtensionSet, error) {
	var s ExtensionSet
	for _, name := range names {
		e, err := ExtensionFromString(name)
		if err != nil {
			return ExtensionSet{}, err
		}
		s = s.With(e)
	}
	return s, nil
}
