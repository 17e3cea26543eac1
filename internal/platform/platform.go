// Package platform holds the static descriptor table for every supported
// Darwin build target.
package platform

import "fmt"

// Family identifies one supported build target.
type Family int

const (
	// IOSSimulator is the 32-bit Intel iOS simulator. Legacy: it stays in
	// the table for listing purposes but is skipped by generation runs.
	IOSSimulator Family = iota
	// IOSSimulator64 is the 64-bit Intel iOS simulator.
	IOSSimulator64
	// IOSDevice is the 32-bit ARM iOS device.
	IOSDevice
	// IOSDevice64 is the 64-bit ARM iOS device.
	IOSDevice64
	// TVOSSimulator64 is the 64-bit Intel tvOS simulator.
	TVOSSimulator64
	// TVOSDevice64 is the 64-bit ARM tvOS device.
	TVOSDevice64
	// OSX64 is 64-bit Intel macOS.
	OSX64
	// OSXARM64 is Apple silicon macOS.
	OSXARM64

	familyCount
)

func (f Family) String() string {
	switch f {
	case IOSSimulator:
		return "ios-simulator"
	case IOSSimulator64:
		return "ios-simulator64"
	case IOSDevice:
		return "ios-device"
	case IOSDevice64:
		return "ios-device64"
	case TVOSSimulator64:
		return "tvos-simulator64"
	case TVOSDevice64:
		return "tvos-device64"
	case OSX64:
		return "osx-x86_64"
	case OSXARM64:
		return "osx-arm64"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Group is the OS family a target belongs to; each group shares one output
// directory tree.
type Group int

const (
	// GroupIOS covers iPhone/iPad targets (simulator and device).
	GroupIOS Group = iota
	// GroupTVOS covers Apple TV targets.
	GroupTVOS
	// GroupOSX covers desktop macOS targets.
	GroupOSX
)

func (g Group) String() string {
	switch g {
	case GroupIOS:
		return "ios"
	case GroupTVOS:
		return "tvos"
	case GroupOSX:
		return "osx"
	default:
		return fmt.Sprintf("group(%d)", int(g))
	}
}

// Descriptor fully specifies one build target. Descriptors are immutable;
// the table below is the single source of truth for which targets exist.
type Descriptor struct {
	Family     Family
	Group      Group
	Directory  string // output tree shared by the group: darwin_ios | darwin_tvos | darwin_osx
	SDK        string // xcrun SDK name
	Arch       string // compiler -arch value, also the filename suffix
	Triple     string // configure -host value
	VersionMin string // minimum-OS compile flag

	// GuardPrefix and GuardSuffix wrap every staged file so multiple
	// architecture variants can coexist under one include path.
	GuardPrefix string
	GuardSuffix string

	SrcDir   string // subdirectory of src/ holding this architecture's files
	SrcFiles []string
	HdrFiles []string

	// Legacy targets remain listed but are excluded from generation.
	Legacy bool
}

// Tag returns the sdk-arch pair identifying the target's build directory.
func (d Descriptor) Tag() string {
	return d.SDK + "-" + d.Arch
}

// BuildDir returns the per-target scratch directory name for the configure
// run and its artifacts.
func (d Descriptor) BuildDir() string {
	return "build_" + d.Tag()
}

func guard(arch string) (prefix, suffix string) {
	return "#ifdef __" + arch + "__\n\n", "\n\n#endif"
}

var table = buildTable()

func buildTable() []Descriptor {
	iosSimPrefix, iosSimSuffix := guard("i386")
	x8664Prefix, x8664Suffix := guard("x86_64")
	armPrefix, armSuffix := guard("arm")
	arm64Prefix, arm64Suffix := guard("arm64")

	return []Descriptor{
		{
			Family:      IOSSimulator,
			Group:       GroupIOS,
			Directory:   "darwin_ios",
			SDK:         "iphonesimulator",
			Arch:        "i386",
			Triple:      "i386-apple-darwin11",
			VersionMin:  "-miphoneos-version-min=8.0",
			GuardPrefix: iosSimPrefix,
			GuardSuffix: iosSimSuffix,
			SrcDir:      "x86",
			SrcFiles:    []string{"sysv.S", "ffi.c"},
			HdrFiles:    []string{"internal.h"},
			Legacy:      true,
		},
		{
			Family:      IOSSimulator64,
			Group:       GroupIOS,
			Directory:   "darwin_ios",
			SDK:         "iphonesimulator",
			Arch:        "x86_64",
			Triple:      "x86_64-apple-darwin13",
			VersionMin:  "-miphoneos-version-min=8.0",
			GuardPrefix: x8664Prefix,
			GuardSuffix: x8664Suffix,
			SrcDir:      "x86",
			SrcFiles:    []string{"unix64.S", "ffi64.c", "ffiw64.c", "win64.S"},
			HdrFiles:    []string{"internal64.h", "asmnames.h"},
		},
		{
			Family:      IOSDevice,
			Group:       GroupIOS,
			Directory:   "darwin_ios",
			SDK:         "iphoneos",
			Arch:        "armv7",
			Triple:      "arm-apple-darwin11",
			VersionMin:  "-miphoneos-version-min=8.0",
			GuardPrefix: armPrefix,
			GuardSuffix: armSuffix,
			SrcDir:      "arm",
			SrcFiles:    []string{"sysv.S", "ffi.c"},
			HdrFiles:    []string{"internal.h"},
		},
		{
			Family:      IOSDevice64,
			Group:       GroupIOS,
			Directory:   "darwin_ios",
			SDK:         "iphoneos",
			Arch:        "arm64",
			Triple:      "aarch64-apple-darwin13",
			VersionMin:  "-miphoneos-version-min=8.0",
			GuardPrefix: arm64Prefix,
			GuardSuffix: arm64Suffix,
			SrcDir:      "aarch64",
			SrcFiles:    []string{"sysv.S", "ffi.c"},
			HdrFiles:    []string{"internal.h"},
		},
		{
			Family:      TVOSSimulator64,
			Group:       GroupTVOS,
			Directory:   "darwin_tvos",
			SDK:         "appletvsimulator",
			Arch:        "x86_64",
			Triple:      "x86_64-apple-darwin13",
			VersionMin:  "-mappletvos-version-min=9.0",
			GuardPrefix: x8664Prefix,
			GuardSuffix: x8664Suffix,
			SrcDir:      "x86",
			SrcFiles:    []string{"unix64.S", "ffi64.c"},
			HdrFiles:    []string{"internal64.h"},
		},
		{
			Family:      TVOSDevice64,
			Group:       GroupTVOS,
			Directory:   "darwin_tvos",
			SDK:         "appletvos",
			Arch:        "arm64",
			Triple:      "aarch64-apple-darwin13",
			VersionMin:  "-mappletvos-version-min=9.0",
			GuardPrefix: arm64Prefix,
			GuardSuffix: arm64Suffix,
			SrcDir:      "aarch64",
			SrcFiles:    []string{"sysv.S", "ffi.c"},
			HdrFiles:    []string{"internal.h"},
		},
		{
			Family:      OSX64,
			Group:       GroupOSX,
			Directory:   "darwin_osx",
			SDK:         "macosx",
			Arch:        "x86_64",
			Triple:      "x86_64-apple-darwin10",
			VersionMin:  "-mmacosx-version-min=10.6",
			GuardPrefix: x8664Prefix,
			GuardSuffix: x8664Suffix,
			SrcDir:      "x86",
			SrcFiles:    []string{"unix64.S", "ffi64.c", "ffiw64.c", "win64.S"},
			HdrFiles:    []string{"internal64.h", "asmnames.h"},
		},
		{
			Family:      OSXARM64,
			Group:       GroupOSX,
			Directory:   "darwin_osx",
			SDK:         "macosx",
			Arch:        "arm64",
			Triple:      "aarch64-apple-darwin20",
			VersionMin:  "-mmacosx-version-min=11.0",
			GuardPrefix: arm64Prefix,
			GuardSuffix: arm64Suffix,
			SrcDir:      "aarch64",
			SrcFiles:    []string{"sysv.S", "ffi.c"},
			HdrFiles:    []string{"internal.h"},
		},
	}
}

// Table returns every descriptor, legacy ones included, in declaration order.
func Table() []Descriptor {
	out := make([]Descriptor, len(table))
	copy(out, table)
	return out
}

// ByFamily returns the descriptor for a family.
func ByFamily(f Family) (Descriptor, bool) {
	for _, d := range table {
		if d.Family == f {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Active returns the descriptors of one group that participate in
// generation, in build order.
func Active(g Group) []Descriptor {
	var out []Descriptor
	for _, d := range table {
		if d.Group == g && !d.Legacy {
			out = append(out, d)
		}
	}
	return out
}
