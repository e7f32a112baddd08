package model

import (
	"time"

	"github.com/google/uuid"
)

// Role values carried by UserProfile.Role.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// Application lifecycle states.
const (
	StatusPendingCompany  = "pending_company"
	StatusPendingFaculty  = "pending_faculty"
	StatusApproved        = "approved"
	StatusRejectedFaculty = "rejected_faculty"
	StatusRejectedCompany = "rejected_company"
)

// Weekly log review states.
const (
	ReviewPending  = "pending"
	ReviewReviewed = "reviewed"
)

// Verification states shared by progress proofs and completions.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Progress proof categories.
const (
	ProofWorkSample       = "work_sample"
	ProofAttendance       = "attendance"
	ProofProjectMilestone = "project_milestone"
	ProofTaskCompletion   = "task_completion"
	ProofPresentation     = "presentation"
	ProofOther            = "other"
)

// UserProfile is one person in the portal: a student, a faculty member or
// an admin. Role never changes after creation.
type UserProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username       string    `gorm:"unique;not null" json:"username"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	FullName       string    `gorm:"not null" json:"fullName"`
	Role           string    `gorm:"type:varchar(20);not null;check:role IN ('student','faculty','admin')" json:"role"`
	RegisterNumber *string   `gorm:"type:varchar(50)" json:"registerNumber,omitempty"`
	Department     string    `gorm:"type:varchar(50);not null" json:"department"`
	YearOfStudy    *int      `json:"yearOfStudy,omitempty"`
	Email          string    `gorm:"not null" json:"email"`
	MobileNumber   string    `gorm:"type:varchar(15)" json:"mobileNumber"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// InternshipApplication is a student's request to undertake an internship.
// It owns its weekly logs, progress proofs and completion (cascade delete);
// faculty references are non-owning.
type InternshipApplication struct {
	ID                uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID         uuid.UUID    `gorm:"type:uuid;not null" json:"studentId"`
	Student           *UserProfile `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student,omitempty"`
	AssignedFacultyID *uuid.UUID   `gorm:"type:uuid" json:"assignedFacultyId,omitempty"`
	AssignedFaculty   *UserProfile `gorm:"foreignKey:AssignedFacultyID" json:"assignedFaculty,omitempty"`
	CompanyName       string       `gorm:"not null" json:"companyName"`
	InternshipDomain  string       `gorm:"not null" json:"internshipDomain"`
	InternshipMode    string       `gorm:"type:varchar(20);not null;check:internship_mode IN ('online','offline','hybrid')" json:"internshipMode"`
	StartDate         time.Time    `gorm:"type:date;not null" json:"startDate"`
	EndDate           time.Time    `gorm:"type:date;not null" json:"endDate"`
	OfferLetterFileID *string      `json:"offerLetterFileId,omitempty"`
	OfferLetterName   *string      `json:"offerLetterName,omitempty"`
	NocFileID         *string      `json:"nocFileId,omitempty"`
	NocFileName       *string      `json:"nocFileName,omitempty"`
	Status            string       `gorm:"type:varchar(30);not null;default:'pending_faculty';check:status IN ('pending_company','pending_faculty','approved','rejected_faculty','rejected_company')" json:"status"`
	FacultyRemarks    *string      `json:"facultyRemarks,omitempty"`
	ApprovalDate      *time.Time   `gorm:"type:date" json:"approvalDate,omitempty"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"createdAt"`

	Logs       []WeeklyLog           `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE;" json:"-"`
	Proofs     []ProgressProof       `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE;" json:"-"`
	Completion *InternshipCompletion `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE;" json:"-"`
}

// ExpectedWeeks is the number of weekly logs the internship duration calls
// for. Display only, never a submission cap.
func (a *InternshipApplication) ExpectedWeeks() int {
	days := int(a.EndDate.Sub(a.StartDate).Hours() / 24)
	weeks := days / 7
	if weeks < 1 {
		return 1
	}
	return weeks
}

// WeeklyLog is one week's mandatory proof-of-work submission. Week numbers
// are unique per (student, application).
type WeeklyLog struct {
	ID                 uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID          uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_log_week" json:"studentId"`
	ApplicationID      uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_log_week" json:"applicationId"`
	WeekNumber         int          `gorm:"not null;uniqueIndex:idx_log_week" json:"weekNumber"`
	Description        *string      `json:"description,omitempty"`
	SubmissionFileID   string       `gorm:"not null" json:"submissionFileId"`
	SubmissionFileName string       `json:"submissionFileName"`
	SubmissionFileType string       `json:"submissionFileType"`
	SubmissionDate     time.Time    `gorm:"autoCreateTime" json:"submissionDate"`
	FacultyFeedback    *string      `json:"facultyFeedback,omitempty"`
	ReviewStatus       string       `gorm:"type:varchar(20);not null;default:'pending';check:review_status IN ('pending','reviewed')" json:"reviewStatus"`
	ReviewedByID       *uuid.UUID   `gorm:"type:uuid" json:"reviewedById,omitempty"`
	ReviewedBy         *UserProfile `gorm:"foreignKey:ReviewedByID" json:"reviewedBy,omitempty"`
	ReviewDate         *time.Time   `json:"reviewDate,omitempty"`
}

// ProgressProof is a supplementary evidence artifact. Any number per
// application, each reviewed independently.
type ProgressProof struct {
	ID                 uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ApplicationID      uuid.UUID    `gorm:"type:uuid;not null" json:"applicationId"`
	StudentID          uuid.UUID    `gorm:"type:uuid;not null" json:"studentId"`
	ProofType          string       `gorm:"type:varchar(50);not null;check:proof_type IN ('work_sample','attendance','project_milestone','task_completion','presentation','other')" json:"proofType"`
	Title              string       `gorm:"not null" json:"title"`
	Description        string       `json:"description"`
	ProofFileID        string       `gorm:"not null" json:"proofFileId"`
	ProofFileName      string       `json:"proofFileName"`
	ProofFileType      string       `json:"proofFileType"`
	SubmissionDate     time.Time    `gorm:"autoCreateTime" json:"submissionDate"`
	VerificationStatus string       `gorm:"type:varchar(20);not null;default:'pending';check:verification_status IN ('pending','verified','rejected')" json:"verificationStatus"`
	FacultyRemarks     *string      `json:"facultyRemarks,omitempty"`
	VerifiedByID       *uuid.UUID   `gorm:"type:uuid" json:"verifiedById,omitempty"`
	VerifiedBy         *UserProfile `gorm:"foreignKey:VerifiedByID" json:"verifiedBy,omitempty"`
	VerificationDate   *time.Time   `json:"verificationDate,omitempty"`
}

// InternshipCompletion closes out an application: certificate + derived
// score. At most one per application.
type InternshipCompletion struct {
	ID                        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID                 uuid.UUID  `gorm:"type:uuid;not null" json:"studentId"`
	ApplicationID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"applicationId"`
	TotalDuration             int        `gorm:"not null" json:"totalDuration"` // days
	CertificateFileID         string     `gorm:"not null" json:"certificateFileId"`
	CertificateFileName       string     `json:"certificateFileName"`
	CompletionStatus          bool       `gorm:"default:false" json:"completionStatus"`
	FacultyVerificationStatus string     `gorm:"type:varchar(20);not null;default:'pending';check:faculty_verification_status IN ('pending','verified','rejected')" json:"facultyVerificationStatus"`
	CompletionScore           *float64   `json:"completionScore,omitempty"`
	VerificationDate          *time.Time `gorm:"type:date" json:"verificationDate,omitempty"`
	CreatedAt                 time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}
