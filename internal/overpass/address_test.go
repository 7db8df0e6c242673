package overpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{"nil tags", nil, ""},
		{"no address tags", map[string]string{"amenity": "fuel"}, ""},
		{
			"house number and street",
			map[string]string{"addr:housenumber": "5", "addr:street": "Main St"},
			"5, Main St",
		},
		{
			"full address",
			map[string]string{"addr:housenumber": "500", "addr:street": "Pine St", "addr:city": "Seattle"},
			"500, Pine St, Seattle",
		},
		{"city only", map[string]string{"addr:city": "Seattle"}, "Seattle"},
		{
			"fixed key order regardless of extra tags",
			map[string]string{"addr:city": "Seattle", "addr:street": "Pine St", "name": "Shell"},
			"Pine St, Seattle",
		},
		{
			"empty values skipped",
			map[string]string{"addr:housenumber": "", "addr:street": "Main St"},
			"Main St",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAddress(tt.tags))
		})
	}
}
