package dto

import (
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to create a party.
// Posting an existing id replaces that party.
type CreatePartyRequest struct {
	ID      string           `json:"id"`
	Name    string           `json:"name" binding:"required"`
	Type    domain.PartyType `json:"type" binding:"required,oneof=customer supplier"`
	Phone   string           `json:"phone"`
	Email   string           `json:"email" binding:"omitempty,email"`
	Address string           `json:"address"`
	Balance decimal.Decimal  `json:"balance"`
}

// UpdatePartyRequest replaces every field of an existing party.
type UpdatePartyRequest struct {
	Name    string           `json:"name" binding:"required"`
	Type    domain.PartyType `json:"type" binding:"required,oneof=customer supplier"`
	Phone   string           `json:"phone"`
	Email   string           `json:"email" binding:"omitempty,email"`
	Address string           `json:"address"`
	Balance decimal.Decimal  `json:"balance"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Type             domain.PartyType `json:"type"`
	Phone            string           `json:"phone,omitempty"`
	Email            string           `json:"email,omitempty"`
	Address          string           `json:"address,omitempty"`
	Balance          decimal.Decimal  `json:"balance"`
	BalanceFormatted string           `json:"balanceFormatted"`
}

// PartySummaryResponse aggregates a party's transactions.
type PartySummaryResponse struct {
	Party            PartyResponse   `json:"party"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalPurchases   decimal.Decimal `json:"totalPurchases"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceFormatted string          `json:"balanceFormatted"`
	TransactionCount int             `json:"transactionCount"`
	LastTransaction  *time.Time      `json:"lastTransaction,omitempty"`
}

// ToDomain converts the request into a domain.Party.
func (r CreatePartyRequest) ToDomain() domain.Party {
	return domain.Party{
		ID:      r.ID,
		Name:    r.Name,
		Type:    r.Type,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Balance: r.Balance,
	}
}

// ToDomain converts the request into a domain.Party with the given id.
func (r UpdatePartyRequest) ToDomain(id string) domain.Party {
	return domain.Party{
		ID:      id,
		Name:    r.Name,
		Type:    r.Type,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Balance: r.Balance,
	}
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party, pr Presenter) PartyResponse {
	return PartyResponse{
		ID:               p.ID,
		Name:             p.Name,
		Type:             p.Type,
		Phone:            p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		Balance:          p.Balance,
		BalanceFormatted: pr.Money(p.Balance),
	}
}

// ToListPartyResponse converts a slice of domain.Party to PartyResponse DTOs
func ToListPartyResponse(parties []domain.Party, pr Presenter) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i], pr)
	}
	return res
}

// ToPartySummaryResponse converts a domain.PartySummary.
func ToPartySummaryResponse(s *domain.PartySummary, pr Presenter) PartySummaryResponse {
	return PartySummaryResponse{
		Party:            ToPartyResponse(&s.Party, pr),
		TotalSales:       s.TotalSales,
		TotalPurchases:   s.TotalPurchases,
		Balance:          s.Balance,
		BalanceFormatted: pr.Money(s.Balance),
		TransactionCount: s.TransactionCount,
		LastTransaction:  s.LastTransaction,
	}
}
