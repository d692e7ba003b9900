package gamedata

import "fmt"

// LocationDef is the text for one location, loaded from JSON.
type LocationDef struct {
	ID          string   `json:"id"`          // Matches world.LocationID.String() (e.g., "fore_deck")
	Heading     string   `json:"heading"`     // Shown in brackets on arrival (e.g., "FORE DECK")
	Aliases     []string `json:"aliases"`     // Words the player may use to name it
	Description []string `json:"description"` // Paragraphs shown on first visit or a look
}

// Key returns the definition's identifier.
func (d LocationDef) Key() string { return d.ID }

// Names returns the words that resolve to this location.
func (d LocationDef) Names() []string { return d.Aliases }

// Banner returns the bracketed heading, e.g. "[BRIDGE]".
func (d LocationDef) Banner() string { return fmt.Sprintf("[%s]", d.Heading) }

// LocationsFile represents the structure of locations.json.
type LocationsFile struct {
	Locations []LocationDef `json:"locations"`
}

// LoadLocations loads location definitions from the embedded locations.json file.
func LoadLocations() ([]LocationDef, error) {
	file, err := Load[LocationsFile]("locations.json")
	if err != nil {
		return nil, err
	}
	return file.Locations, nil
}
