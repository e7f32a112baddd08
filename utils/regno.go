package utils

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Registration numbers follow the institutional format:
// college prefix (4 digits) + batch year (2 digits) + department code
// (2 digits) + roll number (3 digits). Example: 82302630101 ->
// batch 2026, department 30 (CSE), roll 101.
const regNoPrefix = "8230"

// regNoDepartments maps the 2-digit department code to the department key
// used on profiles and applications.
var regNoDepartments = map[string]string{
	"30": "CSE",
	"31": "IT",
	"32": "MATHEMATICS",
	"33": "BSC_AI",
	"34": "BSC_DS",
	"35": "BCA",
	"36": "ECE",
	"37": "BSC_BIO",
	"38": "BSC_MICRO",
	"39": "PHYSICS",
	"40": "BCOM",
	"41": "BCOM_CA",
	"42": "BCOM_CS",
	"43": "BCOM_AF",
	"44": "BCOM_IT",
	"45": "BBA",
	"46": "BBA_CA",
	"47": "ENGLISH",
	"48": "BSC_VISCOM",
	"49": "BSC_ANIM",
	"50": "BSC_FASHION",
	"51": "MBA",
	"52": "MCA",
	"53": "MCOM_CA",
}

// RegistrationInfo is what a valid registration number encodes.
type RegistrationInfo struct {
	RegisterNumber string
	Department     string
	YearOfStudy    int
	BatchYear      string
}

// ParseRegistrationNumber extracts department, batch and year of study
// from a student registration number. Year of study is derived from the
// batch year relative to now and clamped to [1, 4]. Unknown department
// codes fall back to CSE, matching historical admissions data.
func ParseRegistrationNumber(regNo string, now time.Time) (*RegistrationInfo, error) {
	if len(regNo) < 11 {
		return nil, NewValidationError("registration number must be at least 11 digits")
	}
	if regNo[:4] != regNoPrefix {
		return nil, NewValidationError("registration number must start with the college code " + regNoPrefix)
	}

	batch, err := strconv.Atoi(regNo[4:6])
	if err != nil {
		return nil, NewValidationError("registration number has a malformed batch year")
	}
	if _, err := strconv.Atoi(regNo[6:]); err != nil {
		return nil, NewValidationError("registration number must be numeric")
	}

	deptCode := regNo[6:8]
	department, ok := regNoDepartments[deptCode]
	if !ok {
		department = "CSE"
	}

	year := now.Year()%100 - batch + 1
	if year < 1 {
		year = 1
	}
	if year > 4 {
		year = 4
	}

	return &RegistrationInfo{
		RegisterNumber: regNo,
		Department:     department,
		YearOfStudy:    year,
		BatchYear:      "20" + regNo[4:6],
	}, nil
}

// RegnoValidator backs the custom `regno` binding tag so malformed
// registration numbers are rejected at request binding time.
func RegnoValidator(fl validator.FieldLevel) bool {
	_, err := ParseRegistrationNumber(fl.Field().String(), time.Now())
	return err == nil
}
