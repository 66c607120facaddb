package transaction_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moneytracker/api/internal/fixtures"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	txsvc "github.com/moneytracker/api/pkg/service/transaction"
	"github.com/moneytracker/api/pkg/testutils"
	"github.com/moneytracker/api/webapi/common"
	txapi "github.com/moneytracker/api/webapi/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerSuite struct {
	suite.Suite
	app      *fiber.App
	uow      *fixtures.MockUnitOfWork
	txs      *fixtures.MockTransactionRepository
	accounts *fixtures.MockAccountRepository
	userID   uuid.UUID
	token    string
}

func (s *TransactionHandlerSuite) SetupTest() {
	t := s.T()
	cfg := testutils.TestConfig()
	s.uow = fixtures.NewMockUnitOfWork(t)
	s.txs = fixtures.NewMockTransactionRepository(t)
	s.accounts = fixtures.NewMockAccountRepository(t)

	auth := authsvc.New(cfg.Jwt, slog.Default())
	s.app = fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	txapi.Routes(s.app, txsvc.New(s.uow, slog.Default()), auth, cfg)

	s.userID = uuid.New()
	s.token = testutils.TokenFor(t, auth, s.userID)
}

func (s *TransactionHandlerSuite) stored(id uuid.UUID, amount string) *dto.TransactionRead {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &dto.TransactionRead{
		ID:         id,
		UserID:     s.userID,
		AccountID:  uuid.New(),
		Type:       domain.TransactionTypeExpense,
		Amount:     decimal.RequireFromString(amount),
		Currency:   "USD",
		OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func readMap(s *suite.Suite, resp *http.Response) map[string]any {
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	var out map[string]any
	s.Require().NoError(json.Unmarshal(body, &out))
	return out
}

func (s *TransactionHandlerSuite) TestRequiresToken() {
	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/transactions", "", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = testutils.MakeRequest(s.app, fiber.MethodGet, "/transactions", "", "not.a.jwt")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *TransactionHandlerSuite) TestList() {
	s.uow.On("TransactionRepository").Return(s.txs, nil).Once()
	s.txs.On("List", mock.Anything, s.userID).
		Return([]*dto.TransactionRead{s.stored(uuid.New(), "-12.3")}, nil).Once()

	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/transactions", "", s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint:errcheck
	body, _ := io.ReadAll(resp.Body)
	s.Contains(string(body), `"amount":-12.30`)
	s.Contains(string(body), `"userId":"`+s.userID.String()+`"`)
	s.Contains(string(body), `"description":null`)
}

func (s *TransactionHandlerSuite) TestGetMissingReturnsNull() {
	id := uuid.New()
	s.uow.On("TransactionRepository").Return(s.txs, nil).Once()
	s.txs.On("Get", mock.Anything, s.userID, id).Return(nil, nil).Once()

	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/transactions/"+id.String(), "", s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	s.Equal("null", string(body))
}

func (s *TransactionHandlerSuite) TestGetRejectsMalformedID() {
	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/transactions/42", "", s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *TransactionHandlerSuite) TestCreate() {
	accountID := uuid.New()
	created := s.stored(uuid.New(), "12.35")
	created.AccountID = accountID

	s.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	s.uow.On("AccountRepository").Return(s.accounts, nil).Once()
	s.accounts.On("Get", mock.Anything, s.userID, accountID).
		Return(&dto.AccountRead{ID: accountID, UserID: s.userID}, nil).Once()
	s.uow.On("TransactionRepository").Return(s.txs, nil).Once()
	s.txs.On("Create", mock.Anything, s.userID, mock.MatchedBy(func(c dto.TransactionCreate) bool {
		return domain.FormatAmount(c.Amount) == "12.35" && c.UserID == s.userID
	})).Return(created, nil).Once()

	body := `{"accountId":"` + accountID.String() + `","type":"EXPENSE","amount":12.345,` +
		`"currency":"USD","occurredAt":"2024-01-01T00:00:00Z","userId":"` + uuid.NewString() + `"}`
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/transactions", body, s.token)
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	out := readMap(&s.Suite, resp)
	s.Equal(12.35, out["amount"])
	s.Equal(s.userID.String(), out["userId"])
	s.Equal("USD", out["currency"])
}

func (s *TransactionHandlerSuite) TestCreateValidationListsFields() {
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/transactions",
		`{"type":"GIFT","amount":1,"currency":"US","occurredAt":"2024-01-01T00:00:00Z"}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	out := readMap(&s.Suite, resp)
	errs, ok := out["errors"].([]any)
	s.Require().True(ok)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	s.Equal(map[string]bool{"accountId": true, "type": true, "currency": true}, fields)
}

func (s *TransactionHandlerSuite) fieldTags(resp *http.Response) map[string]string {
	out := readMap(&s.Suite, resp)
	errs, ok := out["errors"].([]any)
	s.Require().True(ok, "errors missing: %v", out)
	tags := map[string]string{}
	for _, e := range errs {
		m := e.(map[string]any)
		tags[m["field"].(string)] = m["tag"].(string)
	}
	return tags
}

func (s *TransactionHandlerSuite) TestCreateReportsTypeAndRuleFailuresTogether() {
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/transactions",
		`{"accountId":"`+uuid.NewString()+`","type":"GIFT","amount":"12","currency":"US",`+
			`"occurredAt":"2024-01-01"}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal(map[string]string{
		"amount":     "type",
		"type":       "oneof",
		"currency":   "len",
		"occurredAt": "datetime",
	}, s.fieldTags(resp))
}

func (s *TransactionHandlerSuite) TestCreateAcceptsOffsetTimestamp() {
	accountID := uuid.New()
	s.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	s.uow.On("AccountRepository").Return(s.accounts, nil).Once()
	s.accounts.On("Get", mock.Anything, s.userID, accountID).
		Return(&dto.AccountRead{ID: accountID, UserID: s.userID}, nil).Once()
	s.uow.On("TransactionRepository").Return(s.txs, nil).Once()
	s.txs.On("Create", mock.Anything, s.userID, mock.MatchedBy(func(c dto.TransactionCreate) bool {
		return c.OccurredAt.Equal(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC))
	})).Return(s.stored(uuid.New(), "1.00"), nil).Once()

	body := `{"accountId":"` + accountID.String() + `","type":"EXPENSE","amount":1,` +
		`"currency":"usd","occurredAt":"2024-03-01T12:30:00+02:00"}`
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/transactions", body, s.token)
	s.Equal(fiber.StatusCreated, resp.StatusCode)
}

func (s *TransactionHandlerSuite) TestCreateAmountBoundary() {
	body := func(amount string) string {
		return `{"accountId":"` + uuid.NewString() + `","type":"INCOME","amount":` + amount +
			`,"currency":"USD","occurredAt":"2024-01-01T00:00:00Z"}`
	}
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/transactions", body("999999999999.995"), s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal(map[string]string{"amount": "lte"}, s.fieldTags(resp))

	resp = testutils.MakeRequest(s.app, fiber.MethodPost, "/transactions", body("-999999999999.995"), s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal(map[string]string{"amount": "gte"}, s.fieldTags(resp))
}

func (s *TransactionHandlerSuite) TestUpdateRejectsExplicitNulls() {
	id := uuid.New()
	resp := testutils.MakeRequest(s.app, fiber.MethodPatch, "/transactions/"+id.String(),
		`{"amount":null,"type":null,"note":null}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal(map[string]string{"amount": "notnull", "type": "notnull"}, s.fieldTags(resp))
}

func (s *TransactionHandlerSuite) TestCreateForeignAccountIs422() {
	accountID := uuid.New()
	s.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	s.uow.On("AccountRepository").Return(s.accounts, nil).Once()
	s.accounts.On("Get", mock.Anything, s.userID, accountID).Return(nil, nil).Once()

	body := `{"accountId":"` + accountID.String() + `","type":"INCOME","amount":10,` +
		`"currency":"EUR","occurredAt":"2024-01-01T00:00:00Z"}`
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/transactions", body, s.token)
	s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *TransactionHandlerSuite) TestUpdateAmount() {
	id := uuid.New()
	s.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	s.uow.On("TransactionRepository").Return(s.txs, nil).Once()
	s.txs.On("Update", mock.Anything, s.userID, id, mock.MatchedBy(func(u dto.TransactionUpdate) bool {
		return u.Amount != nil && domain.FormatAmount(*u.Amount) == "5.00" && u.Note == nil
	})).Return(s.stored(id, "5.00"), nil).Once()

	resp := testutils.MakeRequest(s.app, fiber.MethodPatch, "/transactions/"+id.String(), `{"amount":5}`, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	s.Contains(string(body), `"amount":5.00`)
}

func (s *TransactionHandlerSuite) TestUpdateRejectsAccountChange() {
	id := uuid.New()
	resp := testutils.MakeRequest(s.app, fiber.MethodPatch, "/transactions/"+id.String(),
		`{"accountId":"`+uuid.NewString()+`"}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *TransactionHandlerSuite) TestUpdateNotFound() {
	id := uuid.New()
	s.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	s.uow.On("TransactionRepository").Return(s.txs, nil).Once()
	s.txs.On("Update", mock.Anything, s.userID, id, dto.TransactionUpdate{}).
		Return(nil, domain.ErrNotFound).Once()

	resp := testutils.MakeRequest(s.app, fiber.MethodPatch, "/transactions/"+id.String(), `{}`, s.token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *TransactionHandlerSuite) TestDelete() {
	id := uuid.New()
	s.uow.On("TransactionRepository").Return(s.txs, nil).Twice()
	s.txs.On("Delete", mock.Anything, s.userID, id).Return(nil).Once()
	s.txs.On("Delete", mock.Anything, s.userID, id).Return(domain.ErrNotFound).Once()

	resp := testutils.MakeRequest(s.app, fiber.MethodDelete, "/transactions/"+id.String(), "", s.token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	s.Empty(body)

	resp = testutils.MakeRequest(s.app, fiber.MethodDelete, "/transactions/"+id.String(), "", s.token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *TransactionHandlerSuite) TestStoreFailureIsMasked() {
	s.uow.On("TransactionRepository").Return(s.txs, nil).Once()
	s.txs.On("List", mock.Anything, s.userID).Return(nil, io.ErrUnexpectedEOF).Once()

	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/transactions", "", s.token)
	s.Equal(fiber.StatusInternalServerError, resp.StatusCode)
	out := readMap(&s.Suite, resp)
	s.Equal("An unexpected error occurred", out["detail"])
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}
