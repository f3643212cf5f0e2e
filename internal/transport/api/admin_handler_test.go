package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/logger"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/internal/service"
	"github.com/fsdevblog/groph-exchange/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-exchange/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-exchange/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testAdminPassword = "admin secret"

type AdminHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockUserService     *mocks.MockUserServicer
	mockSettingsService *mocks.MockSettingsServicer
	mockPurchaseService *mocks.MockPurchaseServicer
	mockPromoService    *mocks.MockPromotionServicer
	mockLotteryService  *mocks.MockLotteryServicer
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockSettingsService = mocks.NewMockSettingsServicer(mockCtrl)
	s.mockPurchaseService = mocks.NewMockPurchaseServicer(mockCtrl)
	s.mockPromoService = mocks.NewMockPromotionServicer(mockCtrl)
	s.mockLotteryService = mocks.NewMockLotteryServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:          logger.New(os.Stdout, "debug"),
		UserService:     s.mockUserService,
		SettingsService: s.mockSettingsService,
		PurchaseService: s.mockPurchaseService,
		PromoService:    s.mockPromoService,
		LotteryService:  s.mockLotteryService,
		AdminPassword:   []byte(testAdminPassword),
	})
}

func (s *AdminHandlerTestSuite) adminRequest(method, url string, payload []byte) *http.Response {
	var body *bytes.Buffer
	if payload != nil {
		body = bytes.NewBuffer(payload)
	} else {
		body = bytes.NewBuffer(nil)
	}
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   body,
	}, testutils.WithHeader(middlewares.AdminPasswordHeader, testAdminPassword))
	s.Require().NoError(err)
	return res
}

func (s *AdminHandlerTestSuite) TestUnauthorized() {
	cases := []struct {
		name     string
		password string
	}{
		{name: "no header"},
		{name: "wrong password", password: "guess"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var reqOpts []func(*testutils.RequestOptions)
			if t.password != "" {
				reqOpts = append(reqOpts, testutils.WithHeader(middlewares.AdminPasswordHeader, t.password))
			}
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + AdminRoute,
			}, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(http.StatusUnauthorized, res.StatusCode)

			var body map[string]string
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
			s.Equal("Unauthorized", body["error"])
		})
	}
}

func (s *AdminHandlerTestSuite) TestIndexUsers() {
	users := []repoargs.UserWithBalance{
		{ID: 1, Username: "alice", CryptoBalance: decimal.RequireFromString("3.25")},
		{ID: 2, Username: "bob", CryptoBalance: decimal.Zero},
	}

	// Отсутствие action равнозначно action=users.
	s.mockUserService.EXPECT().ListWithBalances(gomock.Any()).Return(users, nil)

	res := s.adminRequest(http.MethodGet, RouteGroup+AdminRoute, nil)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Users []AdminUserItem `json:"users"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body.Users, 2)
	s.Equal("alice", body.Users[0].Name)
	s.InDelta(3.25, body.Users[0].CryptoBalance, 0.0001)
}

func (s *AdminHandlerTestSuite) TestIndexPurchaseRequests() {
	requests := []repoargs.PendingPurchase{
		{ID: 10, UserID: 1, Username: "alice", Amount: decimal.NewFromInt(2),
			Price: decimal.NewFromInt(50), Signature: "sig", Status: domain.PurchaseStatusPending},
	}

	s.mockPurchaseService.EXPECT().ListPending(gomock.Any()).Return(requests, nil)

	res := s.adminRequest(http.MethodGet, RouteGroup+AdminRoute+"?action=purchase_requests", nil)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Requests []AdminPurchaseItem `json:"requests"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body.Requests, 1)
	s.Equal("alice", body.Requests[0].Username)
	s.Equal("pending", body.Requests[0].Status)
}

func (s *AdminHandlerTestSuite) TestIndexLotteries() {
	winnerID := int64(10)
	winnerName := "alice"
	lotteries := []repoargs.LotteryOverview{
		{ID: 1, Prize: decimal.NewFromInt(100), Active: true, ParticipantCount: 3},
		{ID: 2, Prize: decimal.NewFromInt(50), WinnerID: &winnerID, WinnerName: &winnerName},
	}

	s.mockLotteryService.EXPECT().ListAll(gomock.Any()).Return(lotteries, nil)

	res := s.adminRequest(http.MethodGet, RouteGroup+AdminRoute+"?action=lotteries", nil)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Lotteries []AdminLotteryItem `json:"lotteries"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body.Lotteries, 2)
	s.Nil(body.Lotteries[0].Winner)
	s.Require().NotNil(body.Lotteries[1].Winner)
	s.Equal("alice", *body.Lotteries[1].Winner)
}

func (s *AdminHandlerTestSuite) TestSetPrice() {
	s.mockSettingsService.EXPECT().SetPrice(gomock.Any(), gomock.Any()).Return(nil)
	s.mockSettingsService.EXPECT().SetPrice(gomock.Any(), gomock.Any()).
		Return(domain.ErrValidation)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "ok", payload: `{"action":"set_price","price":55.5}`, wantStatus: http.StatusOK},
		{name: "invalid price", payload: `{"action":"set_price","price":-1}`, wantStatus: http.StatusBadRequest},
		{name: "missing price", payload: `{"action":"set_price"}`, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.adminRequest(http.MethodPost, RouteGroup+AdminRoute, []byte(t.payload))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestCreatePromotion() {
	created := domain.Promotion{ID: 5, Title: "launch", Discount: decimal.NewFromInt(5)}

	s.mockPromoService.EXPECT().
		Create(gomock.Any(), "launch", "bonus", gomock.Any()).
		Return(&created, nil)

	res := s.adminRequest(http.MethodPost, RouteGroup+AdminRoute,
		[]byte(`{"action":"create_promotion","title":"launch","description":"bonus","discount":5}`))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusCreated, res.StatusCode)

	var body map[string]int64
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(int64(5), body["id"])
}

func (s *AdminHandlerTestSuite) TestApprovePurchase() {
	s.mockPurchaseService.EXPECT().Review(gomock.Any(), int64(10), true).Return(nil)
	s.mockPurchaseService.EXPECT().Review(gomock.Any(), int64(11), false).Return(nil)
	// Заявка уже решена или не существует.
	s.mockPurchaseService.EXPECT().Review(gomock.Any(), int64(99), true).
		Return(domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantError  string
	}{
		{
			name:       "approve",
			payload:    `{"action":"approve_purchase","requestId":10,"approved":true}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "reject",
			payload:    `{"action":"approve_purchase","requestId":11,"approved":false}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "already decided",
			payload:    `{"action":"approve_purchase","requestId":99,"approved":true}`,
			wantStatus: http.StatusNotFound,
			wantError:  "Request not found",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.adminRequest(http.MethodPost, RouteGroup+AdminRoute, []byte(t.payload))
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

func (s *AdminHandlerTestSuite) TestDrawWinner() {
	s.mockLotteryService.EXPECT().Draw(gomock.Any(), int64(1)).
		Return(&service.DrawResult{WinnerID: 10, WinnerName: "alice"}, nil)
	s.mockLotteryService.EXPECT().Draw(gomock.Any(), int64(2)).
		Return(nil, domain.ErrNoParticipants)
	s.mockLotteryService.EXPECT().Draw(gomock.Any(), int64(99)).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "ok", payload: `{"action":"draw_winner","lotteryId":1}`, wantStatus: http.StatusOK},
		{name: "no participants", payload: `{"action":"draw_winner","lotteryId":2}`, wantStatus: http.StatusBadRequest},
		{name: "missing lottery", payload: `{"action":"draw_winner","lotteryId":99}`, wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.adminRequest(http.MethodPost, RouteGroup+AdminRoute, []byte(t.payload))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body struct {
					WinnerID int64  `json:"winnerId"`
					Winner   string `json:"winner"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(int64(10), body.WinnerID)
				s.Equal("alice", body.Winner)
			}
		})
	}
}

func (s *AdminHandlerTestSuite) TestRemoveCrypto() {
	s.mockUserService.EXPECT().
		RemoveCrypto(gomock.Any(), int64(1), gomock.Any()).
		Return(nil)
	s.mockUserService.EXPECT().
		RemoveCrypto(gomock.Any(), int64(99), gomock.Any()).
		Return(domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "ok", payload: `{"action":"remove_crypto","userId":1,"amount":5}`, wantStatus: http.StatusOK},
		{name: "missing user", payload: `{"action":"remove_crypto","userId":99,"amount":5}`, wantStatus: http.StatusNotFound},
		{name: "missing amount", payload: `{"action":"remove_crypto","userId":1}`, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.adminRequest(http.MethodPost, RouteGroup+AdminRoute, []byte(t.payload))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestUnknownAction() {
	res := s.adminRequest(http.MethodPost, RouteGroup+AdminRoute,
		[]byte(`{"action":"bogus"}`))
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusBadRequest, res.StatusCode)
}
