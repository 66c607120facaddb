//go:build integration

package webapi_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/moneytracker/api/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type LedgerE2ESuite struct {
	testutils.E2ETestSuite
	token string
	other string
}

func TestLedgerE2ESuite(t *testing.T) {
	suite.Run(t, new(LedgerE2ESuite))
}

func (s *LedgerE2ESuite) SetupTest() {
	s.token = s.LoginUser(s.CreateTestUser())
	s.other = s.LoginUser(s.CreateTestUser())
}

func (s *LedgerE2ESuite) decode(resp *http.Response, out any) {
	defer resp.Body.Close() //nolint:errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

func (s *LedgerE2ESuite) create(path, body, token string) map[string]any {
	resp := s.MakeRequest(fiber.MethodPost, path, body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var out map[string]any
	s.decode(resp, &out)
	return out
}

func (s *LedgerE2ESuite) TestTransactionLifecycle() {
	acc := s.create("/accounts", `{"name":"Wallet","type":"CASH","currency":"USD","balanceInitial":20}`, s.token)
	cat := s.create("/categories", `{"name":"Food"}`, s.token)

	tx := s.create("/transactions", `{"accountId":"`+acc["id"].(string)+`","categoryId":"`+cat["id"].(string)+
		`","type":"EXPENSE","amount":12.345,"currency":"usd","occurredAt":"`+s.Now().Format("2006-01-02T15:04:05Z07:00")+`"}`, s.token)
	s.Equal(12.35, tx["amount"])
	s.Equal("USD", tx["currency"])
	id := tx["id"].(string)

	s.Run("listed newest first", func() {
		s.create("/transactions", `{"accountId":"`+acc["id"].(string)+
			`","type":"INCOME","amount":1,"currency":"USD","occurredAt":"2000-01-01T00:00:00Z"}`, s.token)
		var list []map[string]any
		s.decode(s.MakeRequest(fiber.MethodGet, "/transactions", "", s.token), &list)
		s.Require().Len(list, 2)
		s.Equal(id, list[0]["id"])
	})

	s.Run("invisible to other users", func() {
		resp := s.MakeRequest(fiber.MethodGet, "/transactions/"+id, "", s.other)
		var body any
		s.decode(resp, &body)
		s.Equal(fiber.StatusOK, resp.StatusCode)
		s.Nil(body)

		resp = s.MakeRequest(fiber.MethodPatch, "/transactions/"+id, `{"amount":1}`, s.other)
		s.Equal(fiber.StatusNotFound, resp.StatusCode)
		resp = s.MakeRequest(fiber.MethodDelete, "/transactions/"+id, "", s.other)
		s.Equal(fiber.StatusNotFound, resp.StatusCode)
	})

	s.Run("foreign account rejected", func() {
		resp := s.MakeRequest(fiber.MethodPost, "/transactions", `{"accountId":"`+acc["id"].(string)+
			`","type":"EXPENSE","amount":1,"currency":"USD","occurredAt":"2024-01-01T00:00:00Z"}`, s.other)
		s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	s.Run("partial update", func() {
		resp := s.MakeRequest(fiber.MethodPatch, "/transactions/"+id, `{"amount":-7.005,"note":"lunch"}`, s.token)
		s.Equal(fiber.StatusOK, resp.StatusCode)
		var out map[string]any
		s.decode(resp, &out)
		s.Equal(-7.01, out["amount"])
		s.Equal("lunch", out["note"])
		s.Equal(cat["id"], out["categoryId"])
	})

	s.Run("deleting the category keeps the transaction", func() {
		resp := s.MakeRequest(fiber.MethodDelete, "/categories/"+cat["id"].(string), "", s.token)
		s.Equal(fiber.StatusNoContent, resp.StatusCode)
		var out map[string]any
		s.decode(s.MakeRequest(fiber.MethodGet, "/transactions/"+id, "", s.token), &out)
		s.Nil(out["categoryId"])
	})

	s.Run("deleting the account removes its transactions", func() {
		resp := s.MakeRequest(fiber.MethodDelete, "/accounts/"+acc["id"].(string), "", s.token)
		s.Equal(fiber.StatusNoContent, resp.StatusCode)
		var list []map[string]any
		s.decode(s.MakeRequest(fiber.MethodGet, "/transactions", "", s.token), &list)
		s.Empty(list)
	})
}

func (s *LedgerE2ESuite) TestMe() {
	resp := s.MakeRequest(fiber.MethodPatch, "/me", `{"name":"Ada"}`, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var me map[string]any
	s.decode(resp, &me)
	s.Equal("Ada", me["name"])
	s.NotContains(me, "passwordHash")
}

func (s *LedgerE2ESuite) TestReady() {
	resp := s.MakeRequest(fiber.MethodGet, "/status/ready", "", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
}
