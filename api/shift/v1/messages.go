package shiftv1

type Empty struct{}

// Shift

type Shift struct {
	ID                string         `json:"id"`
	OwnerUserID       string         `json:"owner_user_id"`
	StartTime         string         `json:"start_time"`
	EndTime           string         `json:"end_time,omitempty"`
	InitialCash       string         `json:"initial_cash"`
	InitialCoins      string         `json:"initial_coins"`
	PendingApplied    string         `json:"pending_applied"`
	CountedFinalCash  string         `json:"counted_final_cash,omitempty"`
	CountedFinalCoins string         `json:"counted_final_coins,omitempty"`
	ExpectedCash      string         `json:"expected_cash,omitempty"`
	ExpectedTotal     string         `json:"expected_total,omitempty"`
	CashDivergence    string         `json:"cash_divergence,omitempty"`
	InheritedCash     string         `json:"inherited_cash,omitempty"`
	InheritedCoins    string         `json:"inherited_coins,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	StagedFinalCash   string         `json:"staged_final_cash,omitempty"`
	StagedFinalCoins  string         `json:"staged_final_coins,omitempty"`
	GasExchange       bool           `json:"gas_exchange"`
	Collaborators     []Collaborator `json:"collaborators,omitempty"`
}

type Collaborator struct {
	ShiftID   string `json:"shift_id"`
	UserID    string `json:"user_id"`
	AddedBy   string `json:"added_by"`
	CreatedAt string `json:"created_at"`
}

type OpenShiftRequest struct {
	// Empty strings keep the inherited float.
	InitialCash  string `json:"initial_cash,omitempty"`
	InitialCoins string `json:"initial_coins,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type CloseShiftRequest struct {
	CountedCash     string `json:"counted_cash"`
	CountedCoins    string `json:"counted_coins"`
	Notes           string `json:"notes,omitempty"`
	ConfirmLowCash  bool   `json:"confirm_low_cash"`
	ConfirmLowCoins bool   `json:"confirm_low_coins"`
}

type StageValuesRequest struct {
	ShiftID     string `json:"shift_id"`
	FinalCash   string `json:"final_cash,omitempty"`
	FinalCoins  string `json:"final_coins,omitempty"`
	GasExchange bool   `json:"gas_exchange"`
}

type GetShiftRequest struct {
	ID string `json:"id"`
}

type ListShiftsRequest struct {
	Status   string `json:"status,omitempty"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

type CollaboratorRequest struct {
	ShiftID string `json:"shift_id"`
	UserID  string `json:"user_id"`
}

type ShiftResponse struct {
	Shift *Shift `json:"shift"`
}

type ListShiftsResponse struct {
	Shifts []*Shift `json:"shifts"`
	Total  int32    `json:"total"`
}

type ClosePreviewResponse struct {
	ShiftID          string   `json:"shift_id"`
	Revenue          string   `json:"revenue"`
	CashSales        string   `json:"cash_sales"`
	TotalAdjustments string   `json:"total_adjustments"`
	ExpectedCash     string   `json:"expected_cash"`
	ExpectedTotal    string   `json:"expected_total"`
	CountedTotal     string   `json:"counted_total"`
	Divergence       string   `json:"divergence"`
	LowCash          bool     `json:"low_cash"`
	LowCoins         bool     `json:"low_coins"`
	Unconfirmed      []string `json:"unconfirmed"`
	NotesRequired    bool     `json:"notes_required"`
}

type ShiftSummaryResponse struct {
	Shift            *Shift         `json:"shift"`
	Movements        []*Movement    `json:"movements"`
	Revenue          string         `json:"revenue"`
	Payments         *PaymentTotals `json:"payments"`
	Consistency      *Consistency   `json:"consistency"`
	Adjustments      []*Adjustment  `json:"adjustments"`
	TotalAdjustments string         `json:"total_adjustments"`
	ExpectedCash     string         `json:"expected_cash"`
	ExpectedTotal    string         `json:"expected_total"`
	Warnings         []string       `json:"warnings"`
}

type NextInitialResponse struct {
	InitialCash    string `json:"initial_cash"`
	InitialCoins   string `json:"initial_coins"`
	PendingApplied string `json:"pending_applied"`
	Bootstrapped   bool   `json:"bootstrapped"`
}

type CollaboratorResponse struct {
	Collaborator *Collaborator `json:"collaborator"`
}

type ListCollaboratorsResponse struct {
	Collaborators []*Collaborator `json:"collaborators"`
}

// Movement

type Movement struct {
	ID            string `json:"id"`
	ShiftID       string `json:"shift_id"`
	ProductID     string `json:"product_id"`
	EntryQty      int64  `json:"entry_qty"`
	ArrivalQty    int64  `json:"arrival_qty"`
	LeftoverQty   int64  `json:"leftover_qty"`
	DiscardQty    int64  `json:"discard_qty"`
	ConsumedQty   int64  `json:"consumed_qty"`
	SoldQty       int64  `json:"sold_qty"`
	PriceSnapshot string `json:"price_snapshot"`
	ItemTotal     string `json:"item_total"`
	Overdrawn     bool   `json:"overdrawn"`
}

type MovementDraft struct {
	ShiftID   string           `json:"shift_id"`
	ProductID string           `json:"product_id"`
	Fields    map[string]int64 `json:"fields"`
}

type RecordMovementRequest struct {
	ShiftID   string `json:"shift_id"`
	ProductID string `json:"product_id"`
	Field     string `json:"field"`
	Value     int64  `json:"value"`
}

type ListMovementsRequest struct {
	ShiftID string `json:"shift_id"`
}

type MovementResponse struct {
	Movement *Movement `json:"movement"`
}

type ListMovementsResponse struct {
	Movements    []*Movement `json:"movements"`
	TotalRevenue string      `json:"total_revenue"`
}

type DraftResponse struct {
	Draft *MovementDraft `json:"draft"`
}

type ListDraftsResponse struct {
	Drafts []*MovementDraft `json:"drafts"`
}

// Payment

type PaymentDeclaration struct {
	ShiftID      string `json:"shift_id"`
	Cash         string `json:"cash,omitempty"`
	Pix          string `json:"pix"`
	StoneCard    string `json:"stone_card"`
	StoneVoucher string `json:"stone_voucher"`
	PagBankCard  string `json:"pagbank_card"`
	RateVersion  int64  `json:"rate_version"`
	UpdatedAt    string `json:"updated_at"`
}

type PaymentLine struct {
	Method string `json:"method"`
	Gross  string `json:"gross"`
	Rate   string `json:"rate"`
	Net    string `json:"net"`
}

type PaymentTotals struct {
	Gross    string         `json:"gross"`
	Net      string         `json:"net"`
	Interest string         `json:"interest"`
	Lines    []*PaymentLine `json:"lines"`
}

type Consistency struct {
	DeclaredTotal string `json:"declared_total"`
	Revenue       string `json:"revenue"`
	Difference    string `json:"difference"`
	Consistent    bool   `json:"consistent"`
}

type Rates struct {
	Version          int64  `json:"version"`
	PixRate          string `json:"pix_rate"`
	StoneCardRate    string `json:"stone_card_rate"`
	StoneVoucherRate string `json:"stone_voucher_rate"`
	PagBankCardRate  string `json:"pagbank_card_rate"`
	UpdatedBy        string `json:"updated_by"`
	CreatedAt        string `json:"created_at"`
}

type DeclarePaymentsRequest struct {
	ShiftID string `json:"shift_id"`
	// Cash is optional; empty means not declared.
	Cash         string `json:"cash,omitempty"`
	Pix          string `json:"pix,omitempty"`
	StoneCard    string `json:"stone_card,omitempty"`
	StoneVoucher string `json:"stone_voucher,omitempty"`
	PagBankCard  string `json:"pagbank_card,omitempty"`
}

type DeclarationResponse struct {
	Declaration *PaymentDeclaration `json:"declaration"`
}

type GetTotalsRequest struct {
	ShiftID string `json:"shift_id"`
}

type PaymentTotalsResponse struct {
	Totals      *PaymentTotals `json:"totals"`
	Consistency *Consistency   `json:"consistency"`
}

type UpdateRatesRequest struct {
	PixRate          string `json:"pix_rate"`
	StoneCardRate    string `json:"stone_card_rate"`
	StoneVoucherRate string `json:"stone_voucher_rate"`
	PagBankCardRate  string `json:"pagbank_card_rate"`
}

type RatesResponse struct {
	Rates *Rates `json:"rates"`
}

// Adjustment

type Adjustment struct {
	ID          string `json:"id"`
	ShiftID     string `json:"shift_id,omitempty"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Reason      string `json:"reason"`
	ActorUserID string `json:"actor_user_id"`
	SourceIP    string `json:"source_ip,omitempty"`
	Pending     bool   `json:"pending"`
	CreatedAt   string `json:"created_at"`
}

type CreateAdjustmentRequest struct {
	Type    string `json:"type"`
	Amount  string `json:"amount"`
	Reason  string `json:"reason"`
	ShiftID string `json:"shift_id,omitempty"`
}

type ListAdjustmentsRequest struct {
	ShiftID string `json:"shift_id"`
}

type AdjustmentResponse struct {
	Adjustment *Adjustment `json:"adjustment"`
}

type ListAdjustmentsResponse struct {
	Adjustments []*Adjustment `json:"adjustments"`
	Total       string        `json:"total"`
}

// Timeline

type TimelineEvent struct {
	ID          string            `json:"id"`
	Action      string            `json:"action"`
	ShiftID     string            `json:"shift_id,omitempty"`
	ActorUserID string            `json:"actor_user_id"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

type TimelineRequest struct {
	ShiftID  string `json:"shift_id,omitempty"`
	Action   string `json:"action,omitempty"`
	Query    string `json:"query,omitempty"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

type TimelineResponse struct {
	Events []*TimelineEvent `json:"events"`
	Total  int32            `json:"total"`
}
