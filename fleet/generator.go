package fleet

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"train-induction-ai/models"
)

// jobCardPool is sampled uniformly, so Closed is three times as likely as the others
var jobCardPool = []string{
	models.JobCardClosed,
	models.JobCardClosed,
	models.JobCardClosed,
	models.JobCardPending,
	models.JobCardOpen,
}

// Generator produces synthetic trainsets from a Profile
type Generator struct {
	profile Profile
	base    time.Time
	rng     *rand.Rand
}

// NewGenerator validates the profile and binds it to rng.
// A nil rng is seeded from the clock.
func NewGenerator(profile Profile, rng *rand.Rand) (*Generator, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if profile.ServiceIntervalDays == 0 {
		profile.ServiceIntervalDays = DefaultProfile().ServiceIntervalDays
	}

	base := time.Now().UTC().Truncate(24 * time.Hour)
	if profile.BaseDate != "" {
		parsed, err := time.Parse(DateLayout, profile.BaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid base date: %w", err)
		}
		base = parsed
	}
	profile.BaseDate = base.Format(DateLayout)

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{profile: profile, base: base, rng: rng}, nil
}

// BaseDate returns the date all offsets are applied to
func (g *Generator) BaseDate() string {
	return g.profile.BaseDate
}

// Generate returns exactly count trainsets with ids 1..count.
// A negative count yields an empty slice.
func (g *Generator) Generate(count int) []models.Trainset {
	if count < 0 {
		count = 0
	}
	trains := make([]models.Trainset, 0, count)
	for i := 1; i <= count; i++ {
		trains = append(trains, g.generateOne(i))
	}
	return trains
}

func (g *Generator) generateOne(id int) models.Trainset {
	// draw order is fixed so a seeded rng reproduces the same fleet
	t := models.Trainset{
		ID:                id,
		Mileage:           g.draw(FieldMileage),
		Age:               g.draw(FieldAge),
		Efficiency:        g.draw(FieldEfficiency),
		BrakeWear:         g.draw(FieldBrakeWear),
		TelecomClearance:  g.draw(FieldTelecomClearance),
		MetroAgeYears:     g.draw(FieldMetroAgeYears),
		BrandingHoursLeft: g.draw(FieldBrandingHours),
	}

	lastServiceOffset := int(g.draw(FieldLastServiceOffset))
	certOffset := int(g.draw(FieldCertificateOffset))
	wheelOffset := int(g.draw(FieldWheelGaugeOffset))

	t.LastServiceDate = g.dateAt(lastServiceOffset)
	t.NextServiceDueDate = g.dateAt(lastServiceOffset + g.profile.ServiceIntervalDays)
	t.FitnessCertificateExpiryDate = g.dateAt(certOffset)
	t.WheelGaugeVerificationDate = g.dateAt(wheelOffset)

	t.FitnessCertificateStatus = CertificateStatus(g.profile.Thresholds, certOffset)
	t.JobCardStatus = jobCardPool[g.rng.Intn(len(jobCardPool))]

	Rescore(g.profile.HealthWeights, &t)
	t.Decision = Decide(g.profile.Thresholds, t.FitnessCertificateStatus, t.JobCardStatus, t.HealthScore)
	return t
}

func (g *Generator) draw(field string) float64 {
	r := g.profile.Distributions[field]
	switch r.Kind {
	case KindInt:
		lo, hi := int64(r.Min), int64(r.Max)
		return float64(lo + g.rng.Int63n(hi-lo+1))
	default:
		v := r.Min + g.rng.Float64()*(r.Max-r.Min)
		return math.Round(v*100) / 100
	}
}

func (g *Generator) dateAt(offset int) string {
	return g.base.AddDate(0, 0, offset).Format(DateLayout)
}
