package scenarios

import (
	"strings"
	"testing"

	"github.com/lox/cosmicweather/internal/horoscope"
)

func TestDefault(t *testing.T) {
	ws, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(ws) != 12 {
		t.Fatalf("len(ws) = %d, want 12", len(ws))
	}

	first := ws[0]
	if first.ID != 1 || first.Condition != "Sunny" || first.Temperature != 25 || first.Mood != "energetic" {
		t.Errorf("first scenario = %+v", first)
	}
	if ws[3].Temperature != -2 {
		t.Errorf("Snowy temperature = %d, want -2", ws[3].Temperature)
	}

	for _, w := range ws {
		if _, ok := horoscope.ResolveInfluence(w.Mood); !ok {
			t.Errorf("scenario %d has unknown mood %q", w.ID, w.Mood)
		}
		if w.Emoji == "" {
			t.Errorf("scenario %d has no emoji", w.ID)
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr string
	}{
		{
			name: "valid",
			input: `
scenarios:
  - {id: 1, condition: Sunny, temperature: 30, emoji: "☀️", mood: energetic}
  - {id: 2, condition: Drizzle, temperature: 11, emoji: "🌦️", mood: cozy}
`,
			want: 2,
		},
		{
			name: "unknown mood is allowed",
			input: `
scenarios:
  - {id: 7, condition: Hail, temperature: 3, mood: prickly}
`,
			want: 1,
		},
		{
			name: "duplicate id",
			input: `
scenarios:
  - {id: 1, condition: Sunny, mood: energetic}
  - {id: 1, condition: Rainy, mood: cozy}
`,
			wantErr: "duplicate id 1",
		},
		{
			name: "zero id",
			input: `
scenarios:
  - {id: 0, condition: Sunny, mood: energetic}
`,
			wantErr: "id must be positive",
		},
		{
			name: "missing mood",
			input: `
scenarios:
  - {id: 3, condition: Sunny}
`,
			wantErr: "mood is required",
		},
		{
			name: "unknown field",
			input: `
scenarios:
  - {id: 3, condition: Sunny, mood: cozy, humidity: 80}
`,
			wantErr: "decode scenarios",
		},
		{
			name:    "empty document",
			input:   "",
			wantErr: "no scenarios defined",
		},
		{
			name:    "empty list",
			input:   "scenarios: []\n",
			wantErr: "no scenarios defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, err := Load(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(ws) != tt.want {
				t.Errorf("len(ws) = %d, want %d", len(ws), tt.want)
			}
		})
	}
}
