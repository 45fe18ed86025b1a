package zodiac

import "testing"

func TestCatalogElements(t *testing.T) {
	counts := map[Element]int{}
	for _, s := range All() {
		counts[s.Element()]++
	}
	for _, e := range Elements {
		if counts[e] != 3 {
			t.Errorf("element %s has %d signs, want 3", e, counts[e])
		}
	}
	if len(All()) != 12 {
		t.Fatalf("len(All()) = %d, want 12", len(All()))
	}
}

func TestCatalogOrder(t *testing.T) {
	signs := All()
	if signs[0] != Aries || signs[11] != Pisces {
		t.Errorf("order = %v, want Aries first and Pisces last", signs)
	}
	if Leo.Element() != Fire {
		t.Errorf("Leo element = %s, want Fire", Leo.Element())
	}
	if Capricorn.DateRange() != "Dec 22 - Jan 19" {
		t.Errorf("Capricorn date range = %q", Capricorn.DateRange())
	}
	if Pisces.Symbol() == "" {
		t.Error("Pisces symbol is empty")
	}
}

func TestFromDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		want   Sign
		wantOK bool
	}{
		{"Aries", Aries, true},
		{"aries", Aries, true},
		{"SCORPIO", Scorpio, true},
		{"  Virgo ", Virgo, true},
		{"Sagittarius", Sagittarius, true},
		{"Ophiuchus", 0, false},
		{"", 0, false},
		{"Ari", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromDisplayName(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("FromDisplayName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FromDisplayName(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestFromDisplayNameRoundTrip(t *testing.T) {
	for _, s := range All() {
		got, ok := FromDisplayName(s.Name())
		if !ok || got != s {
			t.Errorf("FromDisplayName(%q) = %s, %v", s.Name(), got, ok)
		}
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in     string
		want   Sign
		wantOK bool
	}{
		{"Scorpion", Scorpio, true},
		{"sagitarius", Sagittarius, true},
		{"Capricon", Capricorn, true},
		{"lio", Leo, true},
		{"aquarious", Aquarius, true},
		{"banana", 0, false},
		{"x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Suggest(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Suggest(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Suggest(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	var s Sign
	if err := s.UnmarshalText([]byte("gemini")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if s != Gemini {
		t.Errorf("got %s, want Gemini", s)
	}

	err := s.UnmarshalText([]byte("Tauros"))
	if err == nil {
		t.Fatal("expected error for misspelled sign")
	}
	if want := `unknown zodiac sign "Tauros" (did you mean Taurus?)`; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	b, err := Libra.MarshalText()
	if err != nil || string(b) != "Libra" {
		t.Errorf("MarshalText = %q, %v", b, err)
	}
}
