package mapping

import (
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/models"
)

// ToModelSnapshot converts the domain snapshot to its stored form.
func ToModelSnapshot(d domain.Snapshot) models.Snapshot {
	m := models.Snapshot{
		Transactions:  make([]models.Transaction, len(d.Transactions)),
		Parties:       make([]models.Party, len(d.Parties)),
		Expenses:      make([]models.Expense, len(d.Expenses)),
		Notifications: make([]models.Notification, len(d.Notifications)),
	}
	for i, tx := range d.Transactions {
		m.Transactions[i] = ToModelTransaction(tx)
	}
	for i, p := range d.Parties {
		m.Parties[i] = ToModelParty(p)
	}
	for i, e := range d.Expenses {
		m.Expenses[i] = ToModelExpense(e)
	}
	for i, n := range d.Notifications {
		m.Notifications[i] = ToModelNotification(n)
	}
	return m
}

// ToDomainSnapshot converts a stored snapshot to the domain form.
func ToDomainSnapshot(m models.Snapshot) domain.Snapshot {
	d := domain.Snapshot{
		Transactions:  make([]domain.Transaction, len(m.Transactions)),
		Parties:       make([]domain.Party, len(m.Parties)),
		Expenses:      make([]domain.Expense, len(m.Expenses)),
		Notifications: make([]domain.Notification, len(m.Notifications)),
	}
	for i, tx := range m.Transactions {
		d.Transactions[i] = ToDomainTransaction(tx)
	}
	for i, p := range m.Parties {
		d.Parties[i] = ToDomainParty(p)
	}
	for i, e := range m.Expenses {
		d.Expenses[i] = ToDomainExpense(e)
	}
	for i, n := range m.Notifications {
		d.Notifications[i] = ToDomainNotification(n)
	}
	return d
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		ID:          models.FlexID(d.ID),
		Type:        string(d.Type),
		Amount:      d.Amount,
		Date:        models.Timestamp{Time: d.Date},
		Description: d.Description,
		PartyID:     models.FlexID(d.PartyID),
		PartyName:   d.PartyName,
	}
	if len(d.Items) > 0 {
		m.Items = make([]models.TransactionItem, len(d.Items))
		for i, item := range d.Items {
			m.Items[i] = models.TransactionItem{
				ID:       models.FlexID(item.ID),
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Tax:      item.Tax,
				Discount: item.Discount,
				Total:    item.Total,
			}
		}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		ID:          string(m.ID),
		Type:        domain.TransactionType(m.Type),
		Amount:      m.Amount,
		Date:        m.Date.Time,
		Description: m.Description,
		PartyID:     string(m.PartyID),
		PartyName:   m.PartyName,
	}
	if len(m.Items) > 0 {
		d.Items = make([]domain.TransactionItem, len(m.Items))
		for i, item := range m.Items {
			d.Items[i] = domain.TransactionItem{
				ID:       string(item.ID),
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Tax:      item.Tax,
				Discount: item.Discount,
				Total:    item.Total,
			}
		}
	}
	return d
}

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		ID:      models.FlexID(d.ID),
		Name:    d.Name,
		Type:    string(d.Type),
		Phone:   d.Phone,
		Email:   d.Email,
		Address: d.Address,
		Balance: d.Balance,
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		ID:      string(m.ID),
		Name:    m.Name,
		Type:    domain.PartyType(m.Type),
		Phone:   m.Phone,
		Email:   m.Email,
		Address: m.Address,
		Balance: m.Balance,
	}
}

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ID:          models.FlexID(d.ID),
		Category:    d.Category,
		Amount:      d.Amount,
		Date:        models.Timestamp{Time: d.Date},
		Description: d.Description,
		IsNecessary: d.IsNecessary,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:          string(m.ID),
		Category:    m.Category,
		Amount:      m.Amount,
		Date:        m.Date.Time,
		Description: m.Description,
		IsNecessary: m.IsNecessary,
	}
}

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		ID:      models.FlexID(d.ID),
		Title:   d.Title,
		Message: d.Message,
		Type:    string(d.Type),
		Date:    models.Timestamp{Time: d.Date},
		Read:    d.Read,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		ID:      string(m.ID),
		Title:   m.Title,
		Message: m.Message,
		Type:    domain.NotificationType(m.Type),
		Date:    m.Date.Time,
		Read:    m.Read,
	}
}
