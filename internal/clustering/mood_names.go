package clustering

// Quadrant thresholds on [0,1]-scaled centroid values. A value must exceed
// the threshold to count as high.
const (
	highEnergyAbove  = 0.6
	highValenceAbove = 0.5
	acousticAbove    = 0.6
)

// quadrant describes one cell of the energy/valence grid.
type quadrant struct {
	name        string
	description string
}

var (
	upbeatParty = quadrant{"Upbeat Party", "High-energy, positive vibes - perfect for dancing and celebrations"}
	intenseDark = quadrant{"Intense & Dark", "Intense, driving energy with darker emotional tones"}
	chillHappy  = quadrant{"Chill & Happy", "Relaxed and uplifting - great for unwinding"}
	reflective  = quadrant{"Reflective & Melancholy", "Contemplative and introspective - ideal for quiet moments"}
)

func quadrantFor(energy, valence float64) quadrant {
	highEnergy := energy > highEnergyAbove
	highValence := valence > highValenceAbove

	switch {
	case highEnergy && highValence:
		return upbeatParty
	case highEnergy:
		return intenseDark
	case highValence:
		return chillHappy
	default:
		return reflective
	}
}

// generateMoodName names a centroid by its energy/valence quadrant, with an
// "(Acoustic)" suffix when acousticness is high.
func generateMoodName(centroid map[string]float64) string {
	name := quadrantFor(centroid["energy"], centroid["valence"]).name
	if centroid["acousticness"] > acousticAbove {
		return name + " (Acoustic)"
	}
	return name
}

// MoodCategory represents a mood classification for display purposes.
type MoodCategory struct {
	Name        string  // Display name
	Energy      float64 // Average energy level
	Valence     float64 // Average positivity
	Acoustic    bool    // Acousticness above the modifier threshold
	Description string  // Brief description of the mood
}

// GetMoodCategory returns a detailed mood category for a centroid.
func GetMoodCategory(centroid map[string]float64) MoodCategory {
	energy := centroid["energy"]
	valence := centroid["valence"]

	return MoodCategory{
		Name:        generateMoodName(centroid),
		Energy:      energy,
		Valence:     valence,
		Acoustic:    centroid["acousticness"] > acousticAbove,
		Description: quadrantFor(energy, valence).description,
	}
}
