package main

import "testing"

func boolPtr(v bool) *bool { return &v }

func TestResolveFamilies(t *testing.T) {
	cases := []struct {
		name     string
		toggles  familyToggles
		families familiesConfig
		wantOSX  bool
		wantIOS  bool
		wantTVOS bool
	}{
		{
			name:    "defaults: desktop and ios on, tvos off",
			wantOSX: true,
			wantIOS: true,
		},
		{
			name:     "enable-tvos flag turns tvos on",
			toggles:  familyToggles{enableTVOS: true},
			wantOSX:  true,
			wantIOS:  true,
			wantTVOS: true,
		},
		{
			name:     "manifest enables tvos",
			families: familiesConfig{TVOS: boolPtr(true)},
			wantOSX:  true,
			wantIOS:  true,
			wantTVOS: true,
		},
		{
			name:    "disable-tvos wins over enable-tvos",
			toggles: familyToggles{enableTVOS: true, disableTVOS: true},
			wantOSX: true,
			wantIOS: true,
		},
		{
			name:     "disable-tvos wins over manifest",
			toggles:  familyToggles{disableTVOS: true},
			families: familiesConfig{TVOS: boolPtr(true)},
			wantOSX:  true,
			wantIOS:  true,
		},
		{
			name:     "manifest disables desktop",
			families: familiesConfig{OSX: boolPtr(false)},
			wantIOS:  true,
		},
		{
			name:     "disable-ios wins over manifest enable",
			toggles:  familyToggles{disableIOS: true},
			families: familiesConfig{IOS: boolPtr(true)},
			wantOSX:  true,
		},
		{
			name:    "all disable flags leave nothing",
			toggles: familyToggles{disableIOS: true, disableTVOS: true, disableOSX: true, enableTVOS: true},
		},
		{
			name:     "manifest explicit false matches unset, flags absent",
			families: familiesConfig{TVOS: boolPtr(false)},
			wantOSX:  true,
			wantIOS:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			osx, ios, tvos := resolveFamilies(tc.toggles, tc.families)
			if osx != tc.wantOSX || ios != tc.wantIOS || tvos != tc.wantTVOS {
				t.Errorf("resolveFamilies() = osx:%v ios:%v tvos:%v, want osx:%v ios:%v tvos:%v",
					osx, ios, tvos, tc.wantOSX, tc.wantIOS, tc.wantTVOS)
			}
		})
	}
}
