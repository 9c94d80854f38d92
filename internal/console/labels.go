package console

import (
	"github.com/ahmetberacelik/legalcase/internal/database"
)

// Explicit display tables for the closed enum sets. Menus are rendered from
// these slices, so the variant order is fixed at compile time.

type caseTypeOption struct {
	Value database.CaseType
	Label string
}

var caseTypeOptions = []caseTypeOption{
	{database.CaseTypeCivil, "Civil"},
	{database.CaseTypeCriminal, "Criminal"},
	{database.CaseTypeFamily, "Family"},
	{database.CaseTypeCorporate, "Corporate"},
	{database.CaseTypeOther, "Other"},
}

type caseStatusOption struct {
	Value database.CaseStatus
	Label string
}

var caseStatusOptions = []caseStatusOption{
	{database.CaseStatusNew, "New"},
	{database.CaseStatusActive, "Active"},
	{database.CaseStatusClosed, "Closed"},
	{database.CaseStatusArchived, "Archived"},
}

type hearingStatusOption struct {
	Value database.HearingStatus
	Label string
}

var hearingStatusOptions = []hearingStatusOption{
	{database.HearingStatusScheduled, "Scheduled"},
	{database.HearingStatusCompleted, "Completed"},
	{database.HearingStatusPostponed, "Postponed"},
	{database.HearingStatusCancelled, "Cancelled"},
}

type documentTypeOption struct {
	Value database.DocumentType
	Label string
}

var documentTypeOptions = []documentTypeOption{
	{database.DocumentTypeContract, "Contract"},
	{database.DocumentTypeEvidence, "Evidence"},
	{database.DocumentTypePetition, "Petition"},
	{database.DocumentTypeCourtOrder, "Court order"},
	{database.DocumentTypeOther, "Other"},
}

type roleOption struct {
	Value database.UserRole
	Label string
}

var roleOptions = []roleOption{
	{database.RoleAdmin, "Administrator"},
	{database.RoleLawyer, "Lawyer"},
	{database.RoleAssistant, "Assistant"},
}

func (c *Console) pickCaseType() (database.CaseType, bool) {
	for i, opt := range caseTypeOptions {
		c.printf("%d. %s\n", i+1, opt.Label)
	}
	for {
		n, ok := c.promptInt("Case type")
		if !ok {
			return "", false
		}
		if n >= 1 && n <= len(caseTypeOptions) {
			return caseTypeOptions[n-1].Value, true
		}
		c.printf("Unknown option\n")
	}
}

func (c *Console) pickCaseStatus() (database.CaseStatus, bool) {
	for i, opt := range caseStatusOptions {
		c.printf("%d. %s\n", i+1, opt.Label)
	}
	for {
		n, ok := c.promptInt("Case status")
		if !ok {
			return "", false
		}
		if n >= 1 && n <= len(caseStatusOptions) {
			return caseStatusOptions[n-1].Value, true
		}
		c.printf("Unknown option\n")
	}
}

func (c *Console) pickHearingStatus() (database.HearingStatus, bool) {
	for i, opt := range hearingStatusOptions {
		c.printf("%d. %s\n", i+1, opt.Label)
	}
	for {
		n, ok := c.promptInt("Hearing status")
		if !ok {
			return "", false
		}
		if n >= 1 && n <= len(hearingStatusOptions) {
			return hearingStatusOptions[n-1].Value, true
		}
		c.printf("Unknown option\n")
	}
}

func (c *Console) pickDocumentType() (database.DocumentType, bool) {
	for i, opt := range documentTypeOptions {
		c.printf("%d. %s\n", i+1, opt.Label)
	}
	for {
		n, ok := c.promptInt("Document type")
		if !ok {
			return "", false
		}
		if n >= 1 && n <= len(documentTypeOptions) {
			return documentTypeOptions[n-1].Value, true
		}
		c.printf("Unknown option\n")
	}
}

func (c *Console) pickRole() (database.UserRole, bool) {
	for i, opt := range roleOptions {
		c.printf("%d. %s\n", i+1, opt.Label)
	}
	for {
		n, ok := c.promptInt("Role")
		if !ok {
			return "", false
		}
		if n >= 1 && n <= len(roleOptions) {
			return roleOptions[n-1].Value, true
		}
		c.printf("Unknown option\n")
	}
}
