package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/logger"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-exchange/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TradingHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockUserService     *mocks.MockUserServicer
	mockSettingsService *mocks.MockSettingsServicer
	mockTradingService  *mocks.MockTradingServicer
	mockPurchaseService *mocks.MockPurchaseServicer
}

func TestTradingHandlerSuite(t *testing.T) {
	suite.Run(t, new(TradingHandlerTestSuite))
}

func (s *TradingHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockSettingsService = mocks.NewMockSettingsServicer(mockCtrl)
	s.mockTradingService = mocks.NewMockTradingServicer(mockCtrl)
	s.mockPurchaseService = mocks.NewMockPurchaseServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:          logger.New(os.Stdout, "debug"),
		UserService:     s.mockUserService,
		SettingsService: s.mockSettingsService,
		TradingService:  s.mockTradingService,
		PurchaseService: s.mockPurchaseService,
		AdminPassword:   []byte("admin secret"),
	})
}

func (s *TradingHandlerTestSuite) TestIndexPrice() {
	s.mockSettingsService.EXPECT().
		GetPrice(gomock.Any()).
		Return(decimal.RequireFromString("42.50"), decimal.NewFromInt(10), nil).
		Times(2)

	// Отсутствие action равнозначно action=price.
	for _, url := range []string{
		RouteGroup + TradingRoute,
		RouteGroup + TradingRoute + "?action=price",
	} {
		res, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    url,
		})
		s.Require().NoError(err)

		s.Equal(http.StatusOK, res.StatusCode)

		var body PriceResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Require().NoError(res.Body.Close())
		s.InDelta(42.50, body.Price, 0.0001)
		s.InDelta(10, body.Commission, 0.0001)
	}
}

func (s *TradingHandlerTestSuite) TestIndexBalance() {
	s.mockUserService.EXPECT().
		Balance(gomock.Any(), int64(1)).
		Return(decimal.RequireFromString("3.25"), nil)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{
			name:       "ok",
			url:        RouteGroup + TradingRoute + "?action=balance&userId=1",
			wantStatus: http.StatusOK,
		}, {
			name:       "missing userId",
			url:        RouteGroup + TradingRoute + "?action=balance",
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "non numeric userId",
			url:        RouteGroup + TradingRoute + "?action=balance&userId=abc",
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "unknown action",
			url:        RouteGroup + TradingRoute + "?action=bogus",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *TradingHandlerTestSuite) TestIndexTransactions() {
	feed := []repoargs.TransactionWithUser{
		{
			ID:         2,
			CreatedAt:  time.Now(),
			Username:   "alice",
			Type:       domain.TransactionTypeBuy,
			Amount:     decimal.NewFromInt(2),
			Price:      decimal.NewFromInt(50),
			Commission: decimal.NewFromInt(10),
		},
	}

	s.mockTradingService.EXPECT().RecentTransactions(gomock.Any()).Return(feed, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + TradingRoute + "?action=transactions",
	})
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Transactions []TransactionResponseItem `json:"transactions"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body.Transactions, 1)
	s.Equal("alice", body.Transactions[0].User)
	s.Equal("buy", body.Transactions[0].Type)
}

func (s *TradingHandlerTestSuite) TestCreateSell() {
	s.mockTradingService.EXPECT().
		Sell(gomock.Any(), int64(1), gomock.Any()).
		Return(decimal.NewFromInt(10), nil)
	s.mockTradingService.EXPECT().
		Sell(gomock.Any(), int64(2), gomock.Any()).
		Return(decimal.Decimal{}, domain.ErrNotEnoughBalance)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantError  string
	}{
		{
			name:       "ok",
			payload:    `{"action":"sell","userId":1,"amount":2}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "insufficient balance",
			payload:    `{"action":"sell","userId":2,"amount":100}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Insufficient crypto balance",
		}, {
			name:       "missing amount",
			payload:    `{"action":"sell","userId":1}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "userId and amount required",
		}, {
			name:       "missing action",
			payload:    `{"userId":1,"amount":2}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + TradingRoute,
				Body:   bytes.NewBufferString(t.payload),
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantError != "" {
				var body map[string]string
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(t.wantError, body["error"])
			}
		})
	}
}

func (s *TradingHandlerTestSuite) TestCreatePurchaseRequest() {
	created := domain.PurchaseRequest{ID: 10, Status: domain.PurchaseStatusPending}

	s.mockPurchaseService.EXPECT().
		Submit(gomock.Any(), int64(1), gomock.Any(), "sig").
		Return(&created, nil)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "ok",
			payload:    `{"action":"purchase_request","userId":1,"amount":2,"signature":"sig"}`,
			wantStatus: http.StatusCreated,
		}, {
			name:       "missing signature",
			payload:    `{"action":"purchase_request","userId":1,"amount":2}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + TradingRoute,
				Body:   bytes.NewBufferString(t.payload),
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *TradingHandlerTestSuite) TestCreateAddClicks() {
	s.mockTradingService.EXPECT().
		AddClicks(gomock.Any(), int64(1), gomock.Any()).
		Return(nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + TradingRoute,
		Body:   bytes.NewBufferString(`{"action":"add_clicks","userId":1,"amount":0.005}`),
	})
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *TradingHandlerTestSuite) TestCreateAddClicksUnknownUser() {
	s.mockTradingService.EXPECT().
		AddClicks(gomock.Any(), int64(99), gomock.Any()).
		Return(fmt.Errorf("adding clicks: %w", domain.ErrRecordNotFound))

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + TradingRoute,
		Body:   bytes.NewBufferString(`{"action":"add_clicks","userId":99,"amount":0.005}`),
	})
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusNotFound, res.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("User not found", body["error"])
}
