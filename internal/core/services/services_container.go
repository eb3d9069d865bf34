package services

import (
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// Numbering is shared so both voucher kinds draw from the same counter store.
	sequence := NewSequenceService(repos.Counters)

	return &portssvc.ServiceContainer{
		Sequence:         sequence,
		CashVoucher:      NewCashVoucherService(repos.Documents, sequence),
		WarehouseVoucher: NewWarehouseVoucherService(repos.Documents, sequence),
	}
}
