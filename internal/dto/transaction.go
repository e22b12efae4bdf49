package dto

import (
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionItemRequest is one line of an itemised transaction.
type TransactionItemRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"gte=0" swaggertype:"string"`
	Price    decimal.Decimal `json:"price" binding:"gte=0" swaggertype:"string"`
	Tax      decimal.Decimal `json:"tax" binding:"gte=0" swaggertype:"string"`
	Discount decimal.Decimal `json:"discount" binding:"gte=0" swaggertype:"string"`
}

// CreateTransactionRequest defines the data needed to record a transaction.
// When items are given the amount is recomputed from them.
type CreateTransactionRequest struct {
	ID          string                   `json:"id"`
	Type        domain.TransactionType   `json:"type" binding:"required,oneof=purchase selling expense payment_in payment_out quotation sales_return purchase_return income"`
	Amount      decimal.Decimal          `json:"amount" binding:"gte=0" swaggertype:"string"`
	Date        models.Timestamp         `json:"date" swaggertype:"string" example:"2024-01-01"`
	Description string                   `json:"description"`
	PartyID     string                   `json:"partyId"`
	PartyName   string                   `json:"partyName"`
	Items       []TransactionItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateTransactionRequest carries a partial update. Omitted fields are kept.
type UpdateTransactionRequest struct {
	Type        *domain.TransactionType   `json:"type" binding:"omitempty,oneof=purchase selling expense payment_in payment_out quotation sales_return purchase_return income"`
	Amount      *decimal.Decimal          `json:"amount" binding:"omitempty,gte=0" swaggertype:"string"`
	Date        *models.Timestamp         `json:"date" swaggertype:"string"`
	Description *string                   `json:"description"`
	PartyID     *string                   `json:"partyId"`
	PartyName   *string                   `json:"partyName"`
	Items       *[]TransactionItemRequest `json:"items" binding:"omitempty,dive"`
}

// TransactionItemResponse mirrors domain.TransactionItem.
type TransactionItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// TransactionResponse is a transaction plus its display strings.
type TransactionResponse struct {
	ID              string                    `json:"id"`
	Type            domain.TransactionType    `json:"type"`
	Amount          decimal.Decimal           `json:"amount"`
	AmountFormatted string                    `json:"amountFormatted"`
	Date            time.Time                 `json:"date"`
	DateBS          string                    `json:"dateBS"`
	Description     string                    `json:"description"`
	PartyID         string                    `json:"partyId,omitempty"`
	PartyName       string                    `json:"partyName,omitempty"`
	Items           []TransactionItemResponse `json:"items,omitempty"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=0,max=200"`
	NextToken string `form:"nextToken"`
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
	Type      string `form:"type"`
	Search    string `form:"search"`
	Lang      string `form:"lang"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

func toDomainItems(items []TransactionItemRequest) []domain.TransactionItem {
	if items == nil {
		return nil
	}
	out := make([]domain.TransactionItem, len(items))
	for i, it := range items {
		out[i] = domain.TransactionItem{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Tax:      it.Tax,
			Discount: it.Discount,
		}
	}
	return out
}

// ToDomain converts the request into a domain.Transaction. Date-only input is
// read as midnight in loc.
func (r CreateTransactionRequest) ToDomain(loc *time.Location) domain.Transaction {
	return domain.Transaction{
		ID:          r.ID,
		Type:        r.Type,
		Amount:      r.Amount,
		Date:        r.Date.InLocation(loc),
		Description: r.Description,
		PartyID:     r.PartyID,
		PartyName:   r.PartyName,
		Items:       toDomainItems(r.Items),
	}
}

// ToPatch converts the request into a domain.TransactionPatch.
func (r UpdateTransactionRequest) ToPatch(loc *time.Location) domain.TransactionPatch {
	patch := domain.TransactionPatch{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		PartyID:     r.PartyID,
		PartyName:   r.PartyName,
	}
	if r.Date != nil {
		d := r.Date.InLocation(loc)
		patch.Date = &d
	}
	if r.Items != nil {
		items := toDomainItems(*r.Items)
		if items == nil {
			items = []domain.TransactionItem{}
		}
		patch.Items = &items
	}
	return patch
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(tx *domain.Transaction, p Presenter) TransactionResponse {
	resp := TransactionResponse{
		ID:              tx.ID,
		Type:            tx.Type,
		Amount:          tx.Amount,
		AmountFormatted: p.Money(tx.Amount),
		Date:            p.Local(tx.Date),
		DateBS:          p.Date(tx.Date),
		Description:     tx.Description,
		PartyID:         tx.PartyID,
		PartyName:       tx.PartyName,
	}
	if len(tx.Items) > 0 {
		resp.Items = make([]TransactionItemResponse, len(tx.Items))
		for i, it := range tx.Items {
			resp.Items[i] = TransactionItemResponse(it)
		}
	}
	return resp
}

// ToListTransactionsResponse converts one page of transactions.
func ToListTransactionsResponse(txs []domain.Transaction, nextToken string, p Presenter) ListTransactionsResponse {
	resp := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(txs))}
	for i := range txs {
		resp.Transactions[i] = ToTransactionResponse(&txs[i], p)
	}
	if nextToken != "" {
		resp.NextToken = &nextToken
	}
	return resp
}
