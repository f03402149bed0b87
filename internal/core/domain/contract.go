package domain

// ContractStatus is the lifecycle state of a contract. Transitions are
// monotonic: new -> in_progress -> terminated. Only in_progress contracts
// accept payments; status transitions themselves happen outside this service.
type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract is an agreement between exactly one client and one contractor.
type Contract struct {
	ContractID   string
	ClientID     string
	ContractorID string
	Terms        string
	Status       ContractStatus
	AuditFields
}

// AcceptsPayments reports whether jobs under this contract may be paid.
func (c *Contract) AcceptsPayments() bool {
	return c.Status == ContractStatusInProgress
}

// InvolvesProfile reports whether the given profile is a party to the
// contract, on either side.
func (c *Contract) InvolvesProfile(profileID string) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}
