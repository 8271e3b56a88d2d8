package config

import (
	"os"
	"strconv"

	"github.com/circulib/lending-engine-go/core"
)

const (
	maxActiveLoansEnvVar = "LENDING_MAX_ACTIVE_LOANS"
	finePerDayEnvVar     = "LENDING_FINE_PER_DAY"
	loanPeriodDaysEnvVar = "LENDING_LOAN_PERIOD_DAYS"
)

// PolicyFromEnv builds the borrowing policy from environment variables,
// falling back to the defaults for unset or malformed values.
func PolicyFromEnv() core.Policy {
	policy := core.DefaultPolicy()

	if v, err := strconv.Atoi(os.Getenv(maxActiveLoansEnvVar)); err == nil && v > 0 {
		policy.MaxActiveLoansPerUser = v
	}

	if v, err := strconv.ParseFloat(os.Getenv(finePerDayEnvVar), 64); err == nil && v >= 0 {
		policy.FinePerDayOverdue = v
	}

	if v, err := strconv.Atoi(os.Getenv(loanPeriodDaysEnvVar)); err == nil && v > 0 {
		policy.LoanPeriodDays = v
	}

	return policy
}
