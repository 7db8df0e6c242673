package overpass

import "strings"

// addressKeys lists the OSM addr:* tags that make up a display address, in
// the order they are joined. Order and separator match the upstream tagging
// convention and must stay stable for consistent output.
var addressKeys = []string{"addr:housenumber", "addr:street", "addr:city"}

// FormatAddress assembles a free-text address from an element's tags,
// joining whichever address tags are present with ", ". Returns the empty
// string when tags is nil or carries no address tags.
func FormatAddress(tags map[string]string) string {
	if tags == nil {
		return ""
	}

	parts := make([]string, 0, len(addressKeys))
	for _, key := range addressKeys {
		if v, ok := tags[key]; ok && v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}
