package database

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleLawyer    UserRole = "LAWYER"
	RoleAssistant UserRole = "ASSISTANT"
)

// Valid reports whether the role is one of the defined values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleLawyer, RoleAssistant:
		return true
	}
	return false
}

type CaseType string

const (
	CaseTypeCivil     CaseType = "CIVIL"
	CaseTypeCriminal  CaseType = "CRIMINAL"
	CaseTypeFamily    CaseType = "FAMILY"
	CaseTypeCorporate CaseType = "CORPORATE"
	CaseTypeOther     CaseType = "OTHER"
)

func (t CaseType) Valid() bool {
	switch t {
	case CaseTypeCivil, CaseTypeCriminal, CaseTypeFamily, CaseTypeCorporate, CaseTypeOther:
		return true
	}
	return false
}

type CaseStatus string

const (
	CaseStatusNew      CaseStatus = "NEW"
	CaseStatusActive   CaseStatus = "ACTIVE"
	CaseStatusClosed   CaseStatus = "CLOSED"
	CaseStatusArchived CaseStatus = "ARCHIVED"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusNew, CaseStatusActive, CaseStatusClosed, CaseStatusArchived:
		return true
	}
	return false
}

type HearingStatus string

const (
	HearingStatusScheduled HearingStatus = "SCHEDULED"
	HearingStatusCompleted HearingStatus = "COMPLETED"
	HearingStatusPostponed HearingStatus = "POSTPONED"
	HearingStatusCancelled HearingStatus = "CANCELLED"
)

func (s HearingStatus) Valid() bool {
	switch s {
	case HearingStatusScheduled, HearingStatusCompleted, HearingStatusPostponed, HearingStatusCancelled:
		return true
	}
	return false
}

type DocumentType string

const (
	DocumentTypeContract   DocumentType = "CONTRACT"
	DocumentTypeEvidence   DocumentType = "EVIDENCE"
	DocumentTypePetition   DocumentType = "PETITION"
	DocumentTypeCourtOrder DocumentType = "COURT_ORDER"
	DocumentTypeOther      DocumentType = "OTHER"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeContract, DocumentTypeEvidence, DocumentTypePetition, DocumentTypeCourtOrder, DocumentTypeOther:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username     string   `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `json:"-" gorm:"not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string   `json:"name" gorm:"size:100"`
	Surname      string   `json:"surname" gorm:"size:100"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null"`
	Enabled      bool     `json:"enabled" gorm:"default:true"`
}

type Client struct {
	gorm.Model
	Name    string  `json:"name" gorm:"size:100;not null"`
	Surname string  `json:"surname" gorm:"size:100"`
	Email   *string `json:"email" gorm:"uniqueIndex;size:255"`
	Phone   string  `json:"phone" gorm:"size:50"`
	Address string  `json:"address" gorm:"size:255"`

	Cases []*Case `json:"-" gorm:"many2many:case_clients"`
}

type Case struct {
	gorm.Model
	CaseNumber  string     `json:"case_number" gorm:"uniqueIndex;size:50;not null"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Type        CaseType   `json:"type" gorm:"type:varchar(20);not null"`
	Status      CaseStatus `json:"status" gorm:"type:varchar(20);default:'NEW'"`
	Description string     `json:"description" gorm:"type:text"`

	Clients   []*Client  `json:"clients,omitempty" gorm:"many2many:case_clients"`
	Hearings  []Hearing  `json:"hearings,omitempty" gorm:"foreignKey:CaseID"`
	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:CaseID"`
}

// Hearing stores its date as epoch seconds; sub-second precision is
// discarded on write. Use DateTime/SetDateTime rather than the raw column.
type Hearing struct {
	gorm.Model
	CaseID   uint          `json:"case_id" gorm:"not null;index"`
	Date     int64         `json:"date" gorm:"not null"`
	Judge    string        `json:"judge" gorm:"size:100"`
	Location string        `json:"location" gorm:"size:255"`
	Notes    string        `json:"notes" gorm:"type:text"`
	Status   HearingStatus `json:"status" gorm:"type:varchar(20);default:'SCHEDULED'"`
}

// DateTime returns the hearing date at whole-second precision.
func (h *Hearing) DateTime() time.Time {
	return time.Unix(h.Date, 0)
}

// SetDateTime stores t truncated to whole seconds.
func (h *Hearing) SetDateTime(t time.Time) {
	h.Date = t.Unix()
}

type Document struct {
	gorm.Model
	CaseID      uint         `json:"case_id" gorm:"not null;index"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Type        DocumentType `json:"type" gorm:"type:varchar(20);not null"`
	Content     string       `json:"content" gorm:"type:text"`
	ContentType string       `json:"content_type" gorm:"size:100;default:'text/plain'"`
}

func (User) TableName() string {
	return "users"
}

func (Client) TableName() string {
	return "clients"
}

func (Case) TableName() string {
	return "cases"
}

func (Hearing) TableName() string {
	return "hearings"
}

func (Document) TableName() string {
	return "documents"
}
