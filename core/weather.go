package core

import "encoding/json"

// ClearDescription is the description carried by a freshly created pair.
const ClearDescription = "Clear"

// weatherKind tags the Weather variant.
type weatherKind uint8

const (
	kindClear weatherKind = iota
	kindHazard
)

// Weather is a tagged variant {Clear(description), Hazard(description)}.
// The flag and the description can only be set together, through Clear or
// Hazard, so they never drift apart.
//
// The zero value is Clear with the default description.
type Weather struct {
	kind        weatherKind
	description string
}

// Clear returns the Clear variant. An empty description becomes ClearDescription.
func Clear(description string) Weather {
	return Weather{kind: kindClear, description: description}
}

// Hazard returns the Hazard variant with the given description.
func Hazard(description string) Weather {
	return Weather{kind: kindHazard, description: description}
}

// NewWeather maps the (isBad, description) pair used by update events onto
// the variant.
func NewWeather(isBad bool, description string) Weather {
	if isBad {
		return Hazard(description)
	}

	return Clear(description)
}

// IsBad reports whether the variant is Hazard.
func (w Weather) IsBad() bool { return w.kind == kindHazard }

// Description returns the human-readable condition.
func (w Weather) Description() string {
	if w.kind == kindClear && w.description == "" {
		return ClearDescription
	}

	return w.description
}

// String implements fmt.Stringer.
func (w Weather) String() string {
	if w.IsBad() {
		return "Hazard(" + w.Description() + ")"
	}

	return "Clear(" + w.Description() + ")"
}

type weatherJSON struct {
	Bad         bool   `json:"bad"`
	Description string `json:"description"`
}

// MarshalJSON encodes the variant as {"bad":..,"description":..}.
func (w Weather) MarshalJSON() ([]byte, error) {
	return json.Marshal(weatherJSON{Bad: w.IsBad(), Description: w.Description()})
}

// UnmarshalJSON decodes {"bad":..,"description":..} into the variant.
func (w *Weather) UnmarshalJSON(b []byte) error {
	var raw weatherJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*w = NewWeather(raw.Bad, raw.Description)

	return nil
}
