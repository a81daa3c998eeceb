package exercise

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Instructions is either a legacy plain string or a per-language map.
// Older content stored instructions as a bare string; newer content stores
// {"en": "...", "es": "..."}. Exactly one of the two fields is set.
type Instructions struct {
	Legacy    string
	Localized map[string]string
}

// UnmarshalJSON accepts both the legacy string form and the localized object form
func (i *Instructions) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		i.Legacy = legacy
		i.Localized = nil
		return nil
	}

	var localized map[string]string
	if err := json.Unmarshal(data, &localized); err != nil {
		return err
	}
	i.Legacy = ""
	i.Localized = localized
	return nil
}

// MarshalJSON writes back the same form the instructions were stored in
func (i Instructions) MarshalJSON() ([]byte, error) {
	if i.Localized != nil {
		return json.Marshal(i.Localized)
	}
	return json.Marshal(i.Legacy)
}

// Resolve returns the instruction text for the requested language, falling
// back to the fallback language, then to any available text.
func (i Instructions) Resolve(lang, fallback string) string {
	if i.Localized == nil {
		return i.Legacy
	}
	if text, ok := i.Localized[lang]; ok && text != "" {
		return text
	}
	if text, ok := i.Localized[fallback]; ok && text != "" {
		return text
	}
	for _, text := range i.Localized {
		if text != "" {
			return text
		}
	}
	return ""
}

// ResolveInstructions decodes a raw instructions column and resolves it.
// Empty or malformed instructions resolve to "".
func ResolveInstructions(raw datatypes.JSON, lang, fallback string) string {
	if len(raw) == 0 {
		return ""
	}
	var instructions Instructions
	if err := json.Unmarshal(raw, &instructions); err != nil {
		return ""
	}
	return instructions.Resolve(lang, fallback)
}
