package fleet

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfileValid(t *testing.T) {
	assert.NoError(t, DefaultProfile().Validate())
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr string
	}{
		{
			name:    "missing distribution",
			mutate:  func(p *Profile) { delete(p.Distributions, FieldMileage) },
			wantErr: `missing distribution "mileage"`,
		},
		{
			name:    "unknown distribution",
			mutate:  func(p *Profile) { p.Distributions["speed"] = Range{Min: 1, Max: 2, Kind: KindInt} },
			wantErr: `unknown distribution "speed"`,
		},
		{
			name:    "unknown kind",
			mutate:  func(p *Profile) { p.Distributions[FieldAge] = Range{Min: 1, Max: 2, Kind: "normal"} },
			wantErr: `unknown kind "normal"`,
		},
		{
			name:    "min above max",
			mutate:  func(p *Profile) { p.Distributions[FieldAge] = Range{Min: 5, Max: 2, Kind: KindInt} },
			wantErr: "exceeds max",
		},
		{
			name:    "fractional int bounds",
			mutate:  func(p *Profile) { p.Distributions[FieldAge] = Range{Min: 0.5, Max: 2, Kind: KindInt} },
			wantErr: "whole numbers",
		},
		{
			name:    "int range wider than int64",
			mutate:  func(p *Profile) { p.Distributions[FieldBrandingHours] = Range{Min: -9e18, Max: 9e18, Kind: KindInt} },
			wantErr: "int bounds must be within",
		},
		{
			name:    "float day offset",
			mutate:  func(p *Profile) { p.Distributions[FieldCertificateOffset] = Range{Min: 0, Max: 2, Kind: KindFloat} },
			wantErr: "day offsets must be int",
		},
		{
			name:    "bad base date",
			mutate:  func(p *Profile) { p.BaseDate = "15/02/2024" },
			wantErr: "baseDate",
		},
		{
			name:    "negative count",
			mutate:  func(p *Profile) { p.Count = -1 },
			wantErr: "count must not be negative",
		},
		{
			name: "inverted thresholds",
			mutate: func(p *Profile) {
				p.Thresholds.Maintenance = 80
				p.Thresholds.Standby = 20
			},
			wantErr: "maintenance threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.mutate(&p)
			err := p.Validate()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWideIntRangeGenerates(t *testing.T) {
	p := DefaultProfile()
	p.BaseDate = "2024-02-15"
	p.Distributions[FieldBrandingHours] = Range{Min: -(1 << 53), Max: 1 << 53, Kind: KindInt}
	require.NoError(t, p.Validate())

	g, err := NewGenerator(p, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	trains := g.Generate(20)
	require.Len(t, trains, 20)
	for _, tr := range trains {
		assert.LessOrEqual(t, math.Abs(tr.BrandingHoursLeft), float64(1<<53))
	}
}

func TestDecide(t *testing.T) {
	th := DefaultProfile().Thresholds

	assert.Equal(t, "Maintenance", Decide(th, "Expired", "Closed", 90))
	assert.Equal(t, "Maintenance", Decide(th, "Valid", "Open", 90))
	assert.Equal(t, "Maintenance", Decide(th, "Valid", "Closed", 34))
	assert.Equal(t, "Standby", Decide(th, "ExpiringSoon", "Closed", 90))
	assert.Equal(t, "Standby", Decide(th, "Valid", "Pending", 64))
	assert.Equal(t, "Revenue Service", Decide(th, "Valid", "Pending", 65))
}

func TestCertificateStatus(t *testing.T) {
	th := DefaultProfile().Thresholds

	assert.Equal(t, "Expired", CertificateStatus(th, -1))
	assert.Equal(t, "ExpiringSoon", CertificateStatus(th, 0))
	assert.Equal(t, "ExpiringSoon", CertificateStatus(th, 30))
	assert.Equal(t, "Valid", CertificateStatus(th, 31))
}
