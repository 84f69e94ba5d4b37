package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/dto"
	"github.com/GlebRadaev/drinkledger/internal/service/accountservice"
	"github.com/GlebRadaev/drinkledger/pkg/auth"
)

var (
	alice = auth.Principal{AccountID: 1, Kind: domain.KindPostpaid, IsMember: true}
	kid   = auth.Principal{AccountID: 4, Kind: domain.KindPrepaid}
)

func NewMock(t *testing.T) (*AccountsHandler, *MockService, *MockHistory) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	history := NewMockHistory(ctrl)
	return New(service, history), service, history
}

func newRequest(method, target, body string, p *auth.Principal, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := r.Context()
	if p != nil {
		ctx = auth.WithPrincipal(ctx, *p)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestMe(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		principal    *auth.Principal
		prepareMock  func()
		expectedCode int
		expectedBody *dto.AccountResponseDTO
	}{
		{
			name:      "Postpaid",
			principal: &alice,
			prepareMock: func() {
				service.EXPECT().GetPostpaid(gomock.Any(), 1).
					Return(&domain.PostpaidAccount{ID: 1, Username: "alice", Balance: -100, Activated: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.AccountResponseDTO{ID: 1, Kind: "postpaid", Username: "alice", Balance: "-1.00", BalanceCents: -100, Activated: true},
		},
		{
			name:      "Prepaid account deleted",
			principal: &kid,
			prepareMock: func() {
				service.EXPECT().GetPrepaid(gomock.Any(), 4).Return(nil, fmt.Errorf("%w: prepaid account 4", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "No principal",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			w := httptest.NewRecorder()
			handler.Me(w, newRequest(http.MethodGet, "/api/me", "", tt.principal, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.AccountResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestTransactions(t *testing.T) {
	handler, _, history := NewMock(t)

	history.EXPECT().History(gomock.Any(), alice.Ref(), 10).Return([]domain.Transaction{
		{ID: 2, PreviousBalance: -100, NewBalance: 0, Delta: 100, Description: "drink reverted"},
		{ID: 1, PreviousBalance: 0, NewBalance: -100, Delta: -100, Description: "drink purchased"},
	}, nil)

	w := httptest.NewRecorder()
	handler.Transactions(w, newRequest(http.MethodGet, "/api/me/transactions?limit=10", "", &alice, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.TransactionResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, "1.00", body[0].Amount)

	w = httptest.NewRecorder()
	handler.Transactions(w, newRequest(http.MethodGet, "/api/me/transactions?limit=abc", "", &alice, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSponsoredAndCreatePrepaid(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ListSponsored(gomock.Any(), 1).
		Return([]domain.PrepaidAccount{{ID: 4, Username: "kid", AccessKey: "key", SponsorID: 1, Balance: 300}}, nil)
	w := httptest.NewRecorder()
	handler.Sponsored(w, newRequest(http.MethodGet, "/api/me/prepaid", "", &alice, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var list []dto.AccountResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	assert.Equal(t, "key", list[0].AccessKey)

	service.EXPECT().CreatePrepaid(gomock.Any(), "kid2", 1, int64(500)).
		Return(&domain.PrepaidAccount{ID: 5, Username: "kid2", AccessKey: "fresh", SponsorID: 1, Balance: 500, Activated: true}, nil)
	w = httptest.NewRecorder()
	handler.CreatePrepaid(w, newRequest(http.MethodPost, "/api/prepaid", `{"username":"kid2","start_balance":500}`, &alice, nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	var created dto.AccountResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "fresh", created.AccessKey)

	w = httptest.NewRecorder()
	handler.CreatePrepaid(w, newRequest(http.MethodPost, "/api/prepaid", `{"username":"kid2","start_balance":-5}`, &alice, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransfer(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"to_account_id": 2, "amount": 500}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 2, int64(500)).
					Return(&accountservice.TransferResult{FromBalance: 500, ToBalance: 400}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Receiver deactivated",
			body: `{"to_account_id": 3, "amount": 500}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 3, int64(500)).Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Lock timeout",
			body: `{"to_account_id": 2, "amount": 1}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 2, int64(1)).Return(nil, domain.ErrUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name:         "Zero amount",
			body:         `{"to_account_id": 2, "amount": 0}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid JSON",
			body:         `{"to_account_id":`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			w := httptest.NewRecorder()
			handler.Transfer(w, newRequest(http.MethodPost, "/api/transfers", tt.body, &alice, nil))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdmin(t *testing.T) {
	handler, service, _ := NewMock(t)
	admin := auth.Principal{AccountID: 9, Kind: domain.KindPostpaid, IsAdmin: true}

	service.EXPECT().CreatePostpaid(gomock.Any(), "alice").Return(&domain.PostpaidAccount{ID: 1, Username: "alice"}, nil)
	w := httptest.NewRecorder()
	handler.CreatePostpaid(w, newRequest(http.MethodPost, "/api/admin/postpaid", `{"username":"alice"}`, &admin, nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	service.EXPECT().CreatePostpaid(gomock.Any(), "alice").Return(nil, domain.ErrConflict)
	w = httptest.NewRecorder()
	handler.CreatePostpaid(w, newRequest(http.MethodPost, "/api/admin/postpaid", `{"username":"alice"}`, &admin, nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	service.EXPECT().SetPostpaidBalance(gomock.Any(), 2, int64(1000)).Return(nil)
	w = httptest.NewRecorder()
	handler.SetPostpaidBalance(w, newRequest(http.MethodPut, "/api/admin/postpaid/2/balance", `{"balance":1000}`, &admin, map[string]string{"id": "2"}))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	handler.SetPostpaidBalance(w, newRequest(http.MethodPut, "/api/admin/postpaid/x/balance", `{"balance":1000}`, &admin, map[string]string{"id": "x"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.EXPECT().TogglePostpaid(gomock.Any(), 1).Return(&domain.PostpaidAccount{ID: 1, Activated: true}, nil)
	w = httptest.NewRecorder()
	handler.TogglePostpaid(w, newRequest(http.MethodPost, "/api/admin/postpaid/1/toggle", "", &admin, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().SetPrepaidBalance(gomock.Any(), 4, int64(200), 1).Return(nil)
	w = httptest.NewRecorder()
	handler.SetPrepaidBalance(w, newRequest(http.MethodPut, "/api/admin/prepaid/4/balance", `{"balance":200,"sponsor_id":1}`, &admin, map[string]string{"id": "4"}))
	assert.Equal(t, http.StatusNoContent, w.Code)

	service.EXPECT().TogglePrepaid(gomock.Any(), 4).Return(&domain.PrepaidAccount{ID: 4}, nil)
	w = httptest.NewRecorder()
	handler.TogglePrepaid(w, newRequest(http.MethodPost, "/api/admin/prepaid/4/toggle", "", &admin, map[string]string{"id": "4"}))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().DeletePrepaid(gomock.Any(), 4).Return(fmt.Errorf("%w: prepaid account 4", domain.ErrNotFound))
	w = httptest.NewRecorder()
	handler.DeletePrepaid(w, newRequest(http.MethodDelete, "/api/admin/prepaid/4", "", &admin, map[string]string{"id": "4"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
