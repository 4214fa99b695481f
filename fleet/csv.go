package fleet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"train-induction-ai/models"
)

// csvHeaders is the column order of exported files
var csvHeaders = []string{
	"Trainset_ID",
	"Mileage",
	"Age",
	"Efficiency",
	"Brake_Wear",
	"Telecom_Clearance",
	"Metro_Age_Years",
	"Branding_Hours_Left",
	"Fitness_Certificate_Status",
	"Job_Card_Status",
	"Last_Service_Date",
	"Next_Service_Due_Date",
	"Fitness_Certificate_Expiry_Date",
	"Wheel_Gauge_Verification_Date",
	"Calculated_Health_Score",
	"Decision",
}

// WriteCSV writes trainsets as CSV with a header row
func WriteCSV(w io.Writer, trains []models.Trainset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, t := range trains {
		row := []string{
			fmt.Sprintf("Train_%d", t.ID),
			formatNumber(t.Mileage),
			formatNumber(t.Age),
			formatNumber(t.Efficiency),
			formatNumber(t.BrakeWear),
			formatNumber(t.TelecomClearance),
			formatNumber(t.MetroAgeYears),
			formatNumber(t.BrandingHoursLeft),
			t.FitnessCertificateStatus,
			t.JobCardStatus,
			t.LastServiceDate,
			t.NextServiceDueDate,
			t.FitnessCertificateExpiryDate,
			t.WheelGaugeVerificationDate,
			strconv.Itoa(t.HealthScore),
			t.Decision,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses trainsets from CSV. Rows with the wrong number of columns
// are skipped. The health score and decision columns are recomputed from the
// row's data with w and th.
func ReadCSV(r io.Reader, w HealthWeights, th Thresholds) ([]models.Trainset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("csv must have a header and at least one data row")
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, h := range csvHeaders {
		if _, ok := index[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv is missing required headers: %s", strings.Join(missing, ", "))
	}

	trains := make([]models.Trainset, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) != len(header) {
			continue
		}
		t, err := parseRow(rec, index)
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", line, err)
		}
		Rescore(w, &t)
		t.Decision = Decide(th, t.FitnessCertificateStatus, t.JobCardStatus, t.HealthScore)
		trains = append(trains, t)
	}
	return trains, nil
}

func parseRow(rec []string, index map[string]int) (models.Trainset, error) {
	var t models.Trainset
	col := func(name string) string {
		return strings.TrimSpace(rec[index[name]])
	}

	id, err := strconv.Atoi(strings.TrimPrefix(col("Trainset_ID"), "Train_"))
	if err != nil {
		return t, fmt.Errorf("invalid Trainset_ID %q", col("Trainset_ID"))
	}
	t.ID = id

	numbers := []struct {
		name string
		dst  *float64
	}{
		{"Mileage", &t.Mileage},
		{"Age", &t.Age},
		{"Efficiency", &t.Efficiency},
		{"Brake_Wear", &t.BrakeWear},
		{"Telecom_Clearance", &t.TelecomClearance},
		{"Metro_Age_Years", &t.MetroAgeYears},
		{"Branding_Hours_Left", &t.BrandingHoursLeft},
	}
	for _, n := range numbers {
		v, err := strconv.ParseFloat(col(n.name), 64)
		if err != nil {
			return t, fmt.Errorf("invalid %s %q", n.name, col(n.name))
		}
		*n.dst = v
	}

	t.FitnessCertificateStatus = col("Fitness_Certificate_Status")
	t.JobCardStatus = col("Job_Card_Status")
	if !models.ValidCertificateStatus(t.FitnessCertificateStatus) || !models.ValidJobCardStatus(t.JobCardStatus) {
		return t, fmt.Errorf("invalid status values %q / %q", t.FitnessCertificateStatus, t.JobCardStatus)
	}

	dates := []struct {
		name string
		dst  *string
	}{
		{"Last_Service_Date", &t.LastServiceDate},
		{"Next_Service_Due_Date", &t.NextServiceDueDate},
		{"Fitness_Certificate_Expiry_Date", &t.FitnessCertificateExpiryDate},
		{"Wheel_Gauge_Verification_Date", &t.WheelGaugeVerificationDate},
	}
	for _, d := range dates {
		v, err := normalizeDate(col(d.name))
		if err != nil {
			return t, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = v
	}

	switch decision := col("Decision"); decision {
	case "Service", models.DecisionRevenueService, models.DecisionStandby, "IBL", models.DecisionMaintenance:
	default:
		return t, fmt.Errorf("invalid Decision %q", decision)
	}

	return t, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
