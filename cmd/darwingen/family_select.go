package main

// familyToggles holds the generate flags controlling which OS families run.
type familyToggles struct {
	disableIOS  bool
	disableTVOS bool
	disableOSX  bool
	enableTVOS  bool
}

// resolveFamilies merges the built-in defaults, the manifest [families]
// section, and the CLI toggles into the final family selection. Defaults:
// desktop and iOS on, tvOS off. The manifest adjusts the defaults and
// --enable-tvos turns tvOS on; the disable flags win over everything.
func resolveFamilies(toggles familyToggles, families familiesConfig) (osx, ios, tvos bool) {
	osx, ios, tvos = true, true, false
	if families.OSX != nil {
		osx = *families.OSX
	}
	if families.IOS != nil {
		ios = *families.IOS
	}
	if families.TVOS != nil {
		tvos = *families.TVOS
	}
	if toggles.enableTVOS {
		tvos = true
	}
	if toggles.disableOSX {
		osx = false
	}
	if toggles.disableIOS {
		ios = false
	}
	if toggles.disableTVOS {
		tvos = false
	}
	return osx, ios, tvos
}
