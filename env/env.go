// Package env enumerates the target environments tables can be selected for.
package env

import (
	"fmt"
	"strings"

	"github.com/wippyai/spirv-tables/errors"
)

// Version is a SPIR-V major/minor version.
type Version struct {
	Major uint8
	Minor uint8
}

var (
	V1_0 = Version{1, 0}
	V1_1 = Version{1, 1}
)

// AtLeast reports whether v is the same as or newer than o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor >= o.Minor
}

// Word returns the version as encoded in a module header (0x00MMmm00).
func (v Version) Word() uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Target identifies an instruction-set version and client profile.
type Target uint8

const (
	Universal1_0 Target = iota
	Vulkan1_0
	Universal1_1
	OpenCL2_1
	OpenCL2_2
	OpenGL4_0
	OpenGL4_1
	OpenGL4_2
	OpenGL4_3
	OpenGL4_5

	numTargets
)

type targetInfo struct {
	name        string
	description string
	version     Version
}

var targets = [numTargets]targetInfo{
	Universal1_0: {"spv1.0", "SPIR-V 1.0", V1_0},
	Vulkan1_0:    {"vulkan1.0", "SPIR-V 1.0 (under Vulkan 1.0 semantics)", V1_0},
	Universal1_1: {"spv1.1", "SPIR-V 1.1", V1_1},
	OpenCL2_1:    {"opencl2.1", "SPIR-V 1.0 (under OpenCL 2.1 semantics)", V1_0},
	OpenCL2_2:    {"opencl2.2", "SPIR-V 1.1 (under OpenCL 2.2 semantics)", V1_1},
	OpenGL4_0:    {"opengl4.0", "SPIR-V 1.0 (under OpenGL 4.0 semantics)", V1_0},
	OpenGL4_1:    {"opengl4.1", "SPIR-V 1.0 (under OpenGL 4.1 semantics)", V1_0},
	OpenGL4_2:    {"opengl4.2", "SPIR-V 1.0 (under OpenGL 4.2 semantics)", V1_0},
	OpenGL4_3:    {"opengl4.3", "SPIR-V 1.0 (under OpenGL 4.3 semantics)", V1_0},
	OpenGL4_5:    {"opengl4.5", "SPIR-V 1.0 (under OpenGL 4.5 semantics)", V1_0},
}

// All returns every supported target in declaration order.
func All() []Target {
	out := make([]Target, numTargets)
	for i := range out {
		out[i] = Target(i)
	}
	return out
}

// Valid reports whether t is a supported target.
func (t Target) Valid() bool {
	return t < numTargets
}

// Version returns the SPIR-V version the target consumes.
// Unsupported targets return the zero Version.
func (t Target) Version() Version {
	if !t.Valid() {
		return Version{}
	}
	return targets[t].version
}

// Description returns a human readable description of the target.
func (t Target) Description() string {
	if !t.Valid() {
		return fmt.Sprintf("unknown target %d", uint8(t))
	}
	return targets[t].description
}

// String returns the canonical command-line name of the target.
func (t Target) String() string {
	if !t.Valid() {
		return fmt.Sprintf("target(%d)", uint8(t))
	}
	return targets[t].name
}

// IsVulkan reports whether the target carries Vulkan client semantics.
func (t Target) IsVulkan() bool {
	return t == Vulkan1_0
}

// IsOpenCL reports whether the target carries OpenCL client semantics.
func (t Target) IsOpenCL() bool {
	return t == OpenCL2_1 || t == OpenCL2_2
}

// IsOpenGL reports whether the target carries OpenGL client semantics.
func (t Target) IsOpenGL() bool {
	switch t {
	case OpenGL4_0, OpenGL4_1, OpenGL4_2, OpenGL4_3, OpenGL4_5:
		return true
	}
	return false
}

// Parse returns the target named s. Matching ignores case and
// surrounding whitespace.
func Parse(s string) (Target, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, info := range targets {
		if info.name == name {
			return Target(i), nil
		}
	}
	return 0, errors.New(errors.PhaseParse, errors.KindUnsupportedEnvironment).
		Value(s).
		Detail("unknown target environment %q (expected one of %s)", s, strings.Join(Names(), ", ")).
		Build()
}

// Names returns the canonical names of all targets.
func Names() []string {
	out := make([]string, numTargets)
	for i, info := range targets {
		out[i] = info.name
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.UnsupportedEnvironment(uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
