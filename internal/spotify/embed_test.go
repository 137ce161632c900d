package spotify

import "testing"

func TestTopTracks(t *testing.T) {
	tests := []struct {
		caption string
		url     string
	}{
		{"Dance Monkey by Tones and I", "https://open.spotify.com/embed/track/2XU0oxnq2qxCpomAAuJY8K"},
		{"Memories by Maroon 5", "https://open.spotify.com/embed/track/4cktbXiXOapiLBMprHFErI"},
		{"All I Want for Christmas Is You by Mariah Carey", "https://open.spotify.com/embed/track/0bYg9bo50gSsH3LtXe2SQn"},
	}

	tracks := TopTracks()
	if len(tracks) != len(tests) {
		t.Fatalf("TopTracks() returned %d tracks, want %d", len(tracks), len(tests))
	}
	for i, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if got := tracks[i].Caption(); got != tt.caption {
				t.Errorf("Caption() = %q, want %q", got, tt.caption)
			}
			if got := tracks[i].EmbedURL(); got != tt.url {
				t.Errorf("EmbedURL() = %q, want %q", got, tt.url)
			}
		})
	}
}

func TestLinks(t *testing.T) {
	tr := EmbedTrack{ID: "4cktbXiXOapiLBMprHFErI"}
	if got := string(tr.URI()); got != "spotify:track:4cktbXiXOapiLBMprHFErI" {
		t.Errorf("URI() = %q", got)
	}
	if got := tr.OpenURL(); got != "https://open.spotify.com/track/4cktbXiXOapiLBMprHFErI" {
		t.Errorf("OpenURL() = %q", got)
	}
}
