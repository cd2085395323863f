package models

import (
	"strings"
	"time"
)

type Employment string

const (
	EmploymentEmployed     Employment = "employed"
	EmploymentSelfEmployed Employment = "self-employed"
	EmploymentUnemployed   Employment = "unemployed"
	EmploymentStudent      Employment = "student"
)

var Employments = []Employment{EmploymentEmployed, EmploymentSelfEmployed, EmploymentUnemployed, EmploymentStudent}

type LoanPurpose string

const (
	LoanPurposeBusiness  LoanPurpose = "business"
	LoanPurposeEducation LoanPurpose = "education"
	LoanPurposeHome      LoanPurpose = "home"
	LoanPurposePersonal  LoanPurpose = "personal"
)

var LoanPurposes = []LoanPurpose{LoanPurposeBusiness, LoanPurposeEducation, LoanPurposeHome, LoanPurposePersonal}

// PhoneUsage buckets daily phone use: elevated 8-12h, heavy >5h,
// moderate 2-5h, light <2h.
type PhoneUsage string

const (
	PhoneUsageElevated PhoneUsage = "elevated"
	PhoneUsageHeavy    PhoneUsage = "heavy"
	PhoneUsageModerate PhoneUsage = "moderate"
	PhoneUsageLight    PhoneUsage = "light"
)

var PhoneUsages = []PhoneUsage{PhoneUsageElevated, PhoneUsageHeavy, PhoneUsageModerate, PhoneUsageLight}

// UtilityPayments describes bill payment history, from always on time
// (excellent) to often late (poor).
type UtilityPayments string

const (
	UtilityPaymentsExcellent UtilityPayments = "excellent"
	UtilityPaymentsGood      UtilityPayments = "good"
	UtilityPaymentsFair      UtilityPayments = "fair"
	UtilityPaymentsPoor      UtilityPayments = "poor"
)

var UtilityPaymentHistories = []UtilityPayments{UtilityPaymentsExcellent, UtilityPaymentsGood, UtilityPaymentsFair, UtilityPaymentsPoor}

// ApplicationForm is a loan application, including the alternative-data
// signals (phone usage, utility payments) the evaluation looks at.
type ApplicationForm struct {
	FirstName       string          `validate:"notblank" label:"first name"`
	LastName        string          `validate:"notblank" label:"last name"`
	Age             int             `validate:"gte=18,lte=120" label:"age"`
	MonthlyIncome   float64         `validate:"gte=0" label:"monthly income"`
	Employment      Employment      `validate:"employment" label:"employment status"`
	LoanAmount      float64         `validate:"gt=0" label:"loan amount"`
	LoanPurpose     LoanPurpose     `validate:"loan_purpose" label:"loan purpose"`
	Location        string          `validate:"notblank" label:"location"`
	PhoneUsage      PhoneUsage      `validate:"phone_usage" label:"phone usage"`
	UtilityPayments UtilityPayments `validate:"utility_payments" label:"utility payments"`
}

func (f ApplicationForm) Applicant() string {
	return strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName))
}

// Evaluation is the outcome of an application evaluation.
type Evaluation struct {
	ID                  string
	Applicant           string
	CreditScore         int
	RiskLevel           string
	ApprovalProbability int
	EvaluatedAt         time.Time
}
