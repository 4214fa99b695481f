package models

// Certificate statuses for fitnessCertificateStatus
const (
	CertificateValid        = "Valid"
	CertificateExpiringSoon = "ExpiringSoon"
	CertificateExpired      = "Expired"
)

// Job card statuses for jobCardStatus
const (
	JobCardOpen    = "Open"
	JobCardClosed  = "Closed"
	JobCardPending = "Pending"
)

// Pre-assessed decisions
const (
	DecisionRevenueService = "Revenue Service"
	DecisionStandby        = "Standby"
	DecisionMaintenance    = "Maintenance"
)

// Trainset represents one physical train unit and its derived health score
type Trainset struct {
	ID               int     `json:"id"`
	Mileage          float64 `json:"mileage"`
	Age              float64 `json:"age"`
	Efficiency       float64 `json:"efficiency"`
	BrakeWear        float64 `json:"brakeWear"`
	TelecomClearance float64 `json:"telecomClearance"`
	MetroAgeYears    float64 `json:"metroAgeYears"`
	HealthScore      int     `json:"healthScore"`

	LastServiceDate              string `json:"lastServiceDate"`
	NextServiceDueDate           string `json:"nextServiceDueDate"`
	FitnessCertificateExpiryDate string `json:"fitnessCertificateExpiryDate"`
	WheelGaugeVerificationDate   string `json:"wheelGaugeVerificationDate"`

	FitnessCertificateStatus string  `json:"fitnessCertificateStatus"`
	JobCardStatus            string  `json:"jobCardStatus"`
	BrandingHoursLeft        float64 `json:"brandingHoursLeft"`
	Decision                 string  `json:"decision"`
}

// ValidCertificateStatus reports whether s is a known certificate status
func ValidCertificateStatus(s string) bool {
	switch s {
	case CertificateValid, CertificateExpiringSoon, CertificateExpired:
		return true
	}
	return false
}

// ValidJobCardStatus reports whether s is a known job card status
func ValidJobCardStatus(s string) bool {
	switch s {
	case JobCardOpen, JobCardClosed, JobCardPending:
		return true
	}
	return false
}
