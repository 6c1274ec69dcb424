package env

import (
	"errors"
	"testing"

	spverrors "github.com/wippyai/spirv-tables/errors"
)

func TestParseRoundTrip(t *testing.T) {
	for _, target := range All() {
		t.Run(target.String(), func(t *testing.T) {
			got, err := Parse(target.String())
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", target.String(), err)
			}
			if got != target {
				t.Errorf("Parse(%q) = %v, want %v", target.String(), got, target)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{"spv1.0", Universal1_0, false},
		{"  Vulkan1.0 ", Vulkan1_0, false},
		{"OPENCL2.2", OpenCL2_2, false},
		{"opengl4.5", OpenGL4_5, false},
		{"opengl4.4", 0, true},
		{"vulkan1.1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.in, got)
				}
				var e *spverrors.Error
				if !errors.As(err, &e) || e.Kind != spverrors.KindUnsupportedEnvironment {
					t.Errorf("error = %v, want unsupported_environment", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		target Target
		want   Version
	}{
		{Universal1_0, V1_0},
		{Vulkan1_0, V1_0},
		{Universal1_1, V1_1},
		{OpenCL2_1, V1_0},
		{OpenCL2_2, V1_1},
		{OpenGL4_3, V1_0},
	}
	for _, tt := range tests {
		if got := tt.target.Version(); got != tt.want {
			t.Errorf("%v.Version() = %v, want %v", tt.target, got, tt.want)
		}
	}

	if !V1_1.AtLeast(V1_0) || V1_0.AtLeast(V1_1) || !V1_0.AtLeast(V1_0) {
		t.Error("AtLeast ordering is wrong")
	}
	if V1_1.Word() != 0x00010100 {
		t.Errorf("Word = %#x, want 0x00010100", V1_1.Word())
	}
}

func TestInvalidTarget(t *testing.T) {
	bad := Target(200)
	if bad.Valid() {
		t.Fatal("Target(200) should be invalid")
	}
	if bad.Version() != (Version{}) {
		t.Errorf("Version = %v, want zero", bad.Version())
	}
	if _, err := bad.MarshalText(); err == nil {
		t.Error("MarshalText should fail for invalid target")
	}
}

func TestProfiles(t *testing.T) {
	if !Vulkan1_0.IsVulkan() || Universal1_0.IsVulkan() {
		t.Error("IsVulkan mismatch")
	}
	if !OpenCL2_1.IsOpenCL() || OpenGL4_0.IsOpenCL() {
		t.Error("IsOpenCL mismatch")
	}
	if !OpenGL4_5.IsOpenGL() || Universal1_1.IsOpenGL() {
		t.Error("IsOpenGL mismatch")
	}
}

func TestUnmarshalText(t *testing.T) {
	var target Target
	if err := target.UnmarshalText([]byte("opencl2.1")); err != nil {
		t.Fatal(err)
	}
	if target != OpenCL2_1 {
		t.Errorf("target = %v, want opencl2.1", target)
	}
	if err := target.UnmarshalText([]byte("metal")); err == nil {
		t.Error("expected error for unknown name")
	}
}
