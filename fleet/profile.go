package fleet

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Kind selects how a value is drawn from a Range
type Kind string

const (
	KindInt   Kind = "int"
	KindFloat Kind = "float"
)

// Distribution field names
const (
	FieldMileage           = "mileage"
	FieldAge               = "age"
	FieldEfficiency        = "efficiency"
	FieldBrakeWear         = "brakeWear"
	FieldTelecomClearance  = "telecomClearance"
	FieldMetroAgeYears     = "metroAgeYears"
	FieldBrandingHours     = "brandingHoursLeft"
	FieldLastServiceOffset = "lastServiceOffsetDays"
	FieldCertificateOffset = "certificateOffsetDays"
	FieldWheelGaugeOffset  = "wheelGaugeOffsetDays"
)

// RequiredFields lists every distribution a profile must define
var RequiredFields = []string{
	FieldMileage,
	FieldAge,
	FieldEfficiency,
	FieldBrakeWear,
	FieldTelecomClearance,
	FieldMetroAgeYears,
	FieldBrandingHours,
	FieldLastServiceOffset,
	FieldCertificateOffset,
	FieldWheelGaugeOffset,
}

// offsetFields must be int distributions since they feed day arithmetic
var offsetFields = map[string]bool{
	FieldLastServiceOffset: true,
	FieldCertificateOffset: true,
	FieldWheelGaugeOffset:  true,
}

// Range is a uniform distribution. Int ranges are inclusive on both ends.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Kind Kind    `yaml:"kind"`
}

// Thresholds drive the pre-assessed decision and certificate status
type Thresholds struct {
	Maintenance      int `yaml:"maintenance"`
	Standby          int `yaml:"standby"`
	ExpiringSoonDays int `yaml:"expiringSoonDays"`
}

// Profile configures the synthetic fleet generator and the health score
type Profile struct {
	Count               int              `yaml:"count"`
	BaseDate            string           `yaml:"baseDate"`
	ServiceIntervalDays int              `yaml:"serviceIntervalDays"`
	HealthWeights       HealthWeights    `yaml:"healthWeights"`
	Thresholds          Thresholds       `yaml:"thresholds"`
	Distributions       map[string]Range `yaml:"distributions"`
}

// DefaultProfile returns the built-in generator profile.
// An empty BaseDate means the current UTC date.
func DefaultProfile() Profile {
	return Profile{
		Count:               50,
		ServiceIntervalDays: 180,
		HealthWeights:       DefaultHealthWeights(),
		Thresholds: Thresholds{
			Maintenance:      35,
			Standby:          65,
			ExpiringSoonDays: 30,
		},
		Distributions: map[string]Range{
			FieldMileage:           {Min: 10000, Max: 100000, Kind: KindInt},
			FieldAge:               {Min: 1, Max: 30, Kind: KindInt},
			FieldEfficiency:        {Min: 60, Max: 100, Kind: KindFloat},
			FieldBrakeWear:         {Min: 0, Max: 100, Kind: KindInt},
			FieldTelecomClearance:  {Min: 0, Max: 100, Kind: KindInt},
			FieldMetroAgeYears:     {Min: 1, Max: 10, Kind: KindInt},
			FieldBrandingHours:     {Min: 0, Max: 200, Kind: KindInt},
			FieldLastServiceOffset: {Min: -180, Max: -10, Kind: KindInt},
			FieldCertificateOffset: {Min: -10, Max: 365, Kind: KindInt},
			FieldWheelGaugeOffset:  {Min: -90, Max: -5, Kind: KindInt},
		},
	}
}

// Validate checks the profile for missing or malformed distributions
func (p Profile) Validate() error {
	var problems []string

	if p.Count < 0 {
		problems = append(problems, fmt.Sprintf("count must not be negative, got %d", p.Count))
	}
	if p.BaseDate != "" {
		if _, err := time.Parse(DateLayout, p.BaseDate); err != nil {
			problems = append(problems, fmt.Sprintf("baseDate %q is not YYYY-MM-DD", p.BaseDate))
		}
	}
	if p.Thresholds.Maintenance > p.Thresholds.Standby {
		problems = append(problems, "maintenance threshold must not exceed standby threshold")
	}

	for _, field := range RequiredFields {
		r, ok := p.Distributions[field]
		if !ok {
			problems = append(problems, fmt.Sprintf("missing distribution %q", field))
			continue
		}
		if err := r.validate(); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", field, err))
			continue
		}
		if offsetFields[field] && r.Kind != KindInt {
			problems = append(problems, fmt.Sprintf("%s: day offsets must be int", field))
		}
	}

	var unknown []string
	for field := range p.Distributions {
		if !isRequired(field) {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)
	for _, field := range unknown {
		problems = append(problems, fmt.Sprintf("unknown distribution %q", field))
	}

	if len(problems) > 0 {
		return errors.New("invalid fleet profile: " + strings.Join(problems, "; "))
	}
	return nil
}

// maxIntBound keeps int draws exact in float64 and their width inside int64
const maxIntBound = 1 << 53

func (r Range) validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return errors.New("bounds must be finite")
	}
	if r.Min > r.Max {
		return fmt.Errorf("min %v exceeds max %v", r.Min, r.Max)
	}
	switch r.Kind {
	case KindInt:
		if r.Min != math.Trunc(r.Min) || r.Max != math.Trunc(r.Max) {
			return errors.New("int bounds must be whole numbers")
		}
		if math.Abs(r.Min) > maxIntBound || math.Abs(r.Max) > maxIntBound {
			return fmt.Errorf("int bounds must be within -%d..%d", int64(maxIntBound), int64(maxIntBound))
		}
	case KindFloat:
	default:
		return fmt.Errorf("unknown kind %q", r.Kind)
	}
	return nil
}

func isRequired(field string) bool {
	for _, f := range RequiredFields {
		if f == field {
			return true
		}
	}
	return false
}
