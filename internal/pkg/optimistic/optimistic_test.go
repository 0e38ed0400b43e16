package optimistic

import "testing"

func TestToggle(t *testing.T) {
	tests := []struct {
		name        string
		flag        bool
		counter     int
		wantFlag    bool
		wantCounter int
	}{
		{name: "off to on", flag: false, counter: 89, wantFlag: true, wantCounter: 90},
		{name: "on to off", flag: true, counter: 89, wantFlag: false, wantCounter: 88},
		{name: "from zero", flag: false, counter: 0, wantFlag: true, wantCounter: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag, counter := Toggle(tt.flag, tt.counter)
			if flag != tt.wantFlag || counter != tt.wantCounter {
				t.Fatalf("Toggle(%v, %d) = (%v, %d), want (%v, %d)",
					tt.flag, tt.counter, flag, counter, tt.wantFlag, tt.wantCounter)
			}
		})
	}
}

func TestTogglePairRoundTrips(t *testing.T) {
	flag, counter := Toggle(true, 45)
	flag, counter = Toggle(flag, counter)

	if flag != true || counter != 45 {
		t.Fatalf("double toggle = (%v, %d), want original (true, 45)", flag, counter)
	}
}
