package account

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moneytracker/api/internal/fixtures"
	"github.com/moneytracker/api/pkg/domain"
	"github.com/moneytracker/api/pkg/dto"
	accountsvc "github.com/moneytracker/api/pkg/service/account"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	"github.com/moneytracker/api/pkg/testutils"
	"github.com/moneytracker/api/webapi/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	suite.Suite
	app    *fiber.App
	uow    *fixtures.MockUnitOfWork
	repo   *fixtures.MockAccountRepository
	userID uuid.UUID
	token  string
}

func (s *AccountTestSuite) SetupTest() {
	cfg := testutils.TestConfig()
	s.uow = fixtures.NewMockUnitOfWork(s.T())
	s.repo = fixtures.NewMockAccountRepository(s.T())
	auth := authsvc.New(cfg.Jwt, slog.Default())

	s.app = fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	Routes(s.app, accountsvc.New(s.uow, slog.Default()), auth, cfg)
	s.userID = uuid.New()
	s.token = testutils.TokenFor(s.T(), auth, s.userID)
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) account(balance string) *dto.AccountRead {
	return &dto.AccountRead{
		ID:             uuid.New(),
		UserID:         s.userID,
		Name:           "Checking",
		Type:           domain.AccountTypeBank,
		Currency:       "USD",
		BalanceInitial: decimal.RequireFromString(balance),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func (s *AccountTestSuite) TestCreateAccount() {
	s.Run("Create account successfully", func() {
		s.uow.On("AccountRepository").Return(s.repo, nil).Once()
		s.repo.On("Create", mock.Anything, s.userID, mock.MatchedBy(func(c dto.AccountCreate) bool {
			return c.Currency == "USD" && domain.FormatAmount(c.BalanceInitial) == "100.01"
		})).Return(s.account("100.01"), nil).Once()

		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/accounts",
			`{"name":"Checking","type":"BANK","currency":"usd","balanceInitial":100.005}`, s.token)
		defer resp.Body.Close() //nolint: errcheck
		s.Equal(fiber.StatusCreated, resp.StatusCode)

		var out map[string]any
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
		s.Equal(100.01, out["balanceInitial"])
		s.Equal("BANK", out["type"])
	})

	s.Run("Create account without auth", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/accounts", `{"name":"x"}`, "")
		defer resp.Body.Close() //nolint: errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("Reject unknown type and long name", func() {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/accounts",
			`{"name":"`+string(long)+`","type":"PIGGY","currency":"USD"}`, s.token)
		defer resp.Body.Close() //nolint: errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)

		var pd common.ProblemDetails
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
		s.Len(pd.Errors, 2)
	})
}

func (s *AccountTestSuite) TestListAndGet() {
	acc := s.account("0")
	s.uow.On("AccountRepository").Return(s.repo, nil)
	s.repo.On("List", mock.Anything, s.userID).Return([]*dto.AccountRead{acc}, nil).Once()
	s.repo.On("Get", mock.Anything, s.userID, acc.ID).Return(acc, nil).Once()

	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/accounts", "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var list []map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&list))
	s.Len(list, 1)

	resp = testutils.MakeRequest(s.app, fiber.MethodGet, "/accounts/"+acc.ID.String(), "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var one map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&one))
	s.Equal(acc.ID.String(), one["id"])
}

func (s *AccountTestSuite) TestUpdateAndDelete() {
	acc := s.account("5")
	s.uow.On("AccountRepository").Return(s.repo, nil)
	s.repo.On("Update", mock.Anything, s.userID, acc.ID, mock.MatchedBy(func(u dto.AccountUpdate) bool {
		return u.Name != nil && *u.Name == "Savings" && u.BalanceInitial == nil
	})).Return(acc, nil).Once()
	s.repo.On("Delete", mock.Anything, s.userID, acc.ID).Return(domain.ErrNotFound).Once()

	resp := testutils.MakeRequest(s.app, fiber.MethodPatch, "/accounts/"+acc.ID.String(), `{"name":"Savings"}`, s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutils.MakeRequest(s.app, fiber.MethodDelete, "/accounts/"+acc.ID.String(), "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}
