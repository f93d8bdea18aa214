package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapPayload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain object is trimmed only", input: "  {\"a\":1} ", want: `{"a":1}`},
		{name: "double-encoded object is unwrapped", input: `"{\"a\":1}"`, want: `{"a":1}`},
		{name: "empty input stays empty", input: "", want: ""},
		{name: "undecodable string yields nil", input: `"{broken`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(UnwrapPayload([]byte(tt.input))))
		})
	}
}

func TestParseShipmentSpec(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ShipmentSpec
	}{
		{
			name:  "full object",
			input: `{"origin_zip":"10001","dest_zip":"94105","weight_lb":5.5,"dimensions_in":{"length":10,"width":8,"height":4},"declared_value":200,"ship_date":"2026-09-15","residential":true,"origin_state":"NY","dest_state":"CA"}`,
			want: ShipmentSpec{
				OriginZip:     "10001",
				DestZip:       "94105",
				WeightLb:      5.5,
				Dimensions:    &Dimensions{Length: 10, Width: 8, Height: 4},
				DeclaredValue: 200,
				ShipDate:      "2026-09-15",
				Residential:   true,
				OriginState:   "NY",
				DestState:     "CA",
			},
		},
		{
			name:  "minimal object",
			input: `{"origin_zip":"10001","dest_zip":"94105","weight_lb":5}`,
			want:  ShipmentSpec{OriginZip: "10001", DestZip: "94105", WeightLb: 5},
		},
		{
			name:  "double-encoded payload",
			input: `"{\"origin_zip\":\"10001\",\"dest_zip\":\"94105\",\"weight_lb\":5}"`,
			want:  ShipmentSpec{OriginZip: "10001", DestZip: "94105", WeightLb: 5},
		},
		{
			name:  "unknown fields are ignored",
			input: `{"origin_zip":"10001","only":"ups","service_filters":["ground"]}`,
			want:  ShipmentSpec{OriginZip: "10001"},
		},
		{
			name:  "empty input",
			input: ``,
			want:  ShipmentSpec{},
		},
		{
			name:  "whitespace only",
			input: "  \n\t ",
			want:  ShipmentSpec{},
		},
		{
			name:  "malformed json degrades to empty spec",
			input: `{"origin_zip":`,
			want:  ShipmentSpec{},
		},
		{
			name:  "malformed inner payload degrades to empty spec",
			input: `"{not json"`,
			want:  ShipmentSpec{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseShipmentSpec([]byte(tt.input))

			if tt.want.Dimensions != nil {
				require.NotNil(t, got.Dimensions)
				assert.Equal(t, *tt.want.Dimensions, *got.Dimensions)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
