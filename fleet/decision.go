package fleet

import "train-induction-ai/models"

// CertificateStatus classifies a certificate by its days until expiry
func CertificateStatus(th Thresholds, daysRemaining int) string {
	switch {
	case daysRemaining < 0:
		return models.CertificateExpired
	case daysRemaining <= th.ExpiringSoonDays:
		return models.CertificateExpiringSoon
	default:
		return models.CertificateValid
	}
}

// Decide returns the pre-assessed induction decision for a trainset.
// Expired certificates, open job cards and low health go to maintenance first.
func Decide(th Thresholds, certificateStatus, jobCardStatus string, healthScore int) string {
	switch {
	case certificateStatus == models.CertificateExpired,
		jobCardStatus == models.JobCardOpen,
		healthScore < th.Maintenance:
		return models.DecisionMaintenance
	case certificateStatus == models.CertificateExpiringSoon,
		healthScore < th.Standby:
		return models.DecisionStandby
	default:
		return models.DecisionRevenueService
	}
}
