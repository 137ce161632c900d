// Package spotify describes the Spotify tracks the dashboard embeds.
package spotify

import (
	"github.com/zmb3/spotify/v2"
)

const (
	embedBase = "https://open.spotify.com/embed/track/"
	openBase  = "https://open.spotify.com/track/"
)

// EmbedTrack is a Spotify track shown as an embedded player.
type EmbedTrack struct {
	ID     spotify.ID
	Title  string
	Artist string
}

// EmbedURL returns the player URL for the track.
func (t EmbedTrack) EmbedURL() string {
	return embedBase + string(t.ID)
}

// OpenURL returns the track page on open.spotify.com.
func (t EmbedTrack) OpenURL() string {
	return openBase + string(t.ID)
}

// URI returns the spotify: URI for the track.
func (t EmbedTrack) URI() spotify.URI {
	return spotify.URI("spotify:track:" + string(t.ID))
}

// Caption returns "<title> by <artist>".
func (t EmbedTrack) Caption() string {
	return t.Title + " by " + t.Artist
}

// TopTracks returns the three most popular songs in the dataset, most
// popular first.
func TopTracks() []EmbedTrack {
	return []EmbedTrack{
		{ID: "2XU0oxnq2qxCpomAAuJY8K", Title: "Dance Monkey", Artist: "Tones and I"},
		{ID: "4cktbXiXOapiLBMprHFErI", Title: "Memories", Artist: "Maroon 5"},
		{ID: "0bYg9bo50gSsH3LtXe2SQn", Title: "All I Want for Christmas Is You", Artist: "Mariah Carey"},
	}
}
