package models

// Contract mirrors the contracts table.
type Contract struct {
	ContractID   string
	ClientID     string
	ContractorID string
	Terms        string
	Status       string
	AuditFields
}
