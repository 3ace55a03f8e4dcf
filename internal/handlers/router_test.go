package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/handlers"
	"github.com/SscSPs/investor_onboarding_app/internal/platform/config"
	"github.com/SscSPs/investor_onboarding_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testJWTIssuer = "onboarding-test"
)

// routerSuite wires the real router, auth included, over mocked services.
type routerSuite struct {
	suite.Suite
	router        *gin.Engine
	profiles      *MockInvestorTypeService
	generalInfo   *MockGeneralInfoService
	beneficiaries *MockBeneficiaryService
	accreditation *MockAccreditationService
	userID        string
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.NewString()

	s.profiles = new(MockInvestorTypeService)
	s.generalInfo = new(MockGeneralInfoService)
	s.beneficiaries = new(MockBeneficiaryService)
	s.accreditation = new(MockAccreditationService)

	cfg := &config.Config{
		IsProduction:         true,
		JWTSecret:            testJWTSecret,
		JWTIssuer:            testJWTIssuer,
		MaxDocumentSizeBytes: 1 << 20,
		AllowedDocumentTypes: []string{"application/pdf", "image/png", "image/jpeg"},
	}
	handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		InvestorType:  s.profiles,
		GeneralInfo:   s.generalInfo,
		Beneficiary:   s.beneficiaries,
		Accreditation: s.accreditation,
	}, handlers.RouteOptions{})
}

func (s *routerSuite) TearDownTest() {
	s.profiles.AssertExpectations(s.T())
	s.generalInfo.AssertExpectations(s.T())
	s.beneficiaries.AssertExpectations(s.T())
	s.accreditation.AssertExpectations(s.T())
}

func (s *routerSuite) token(role domain.Role) string {
	tok, err := utils.GenerateJWT(s.userID, role, testJWTSecret, time.Hour, testJWTIssuer)
	s.Require().NoError(err)
	return tok
}

// do sends body (marshalled unless it is already a string) as an investor.
func (s *routerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	return s.doAs(domain.RoleInvestor, method, path, body)
}

func (s *routerSuite) doAs(role domain.Role, method, path string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		buf = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token(role))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors dto.Envelope with the payload left raw for per-test decoding.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

func (s *routerSuite) decode(w *httptest.ResponseRecorder, data any) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	s.Equal(w.Code, env.StatusCode)
	s.Equal(w.Code < http.StatusBadRequest, env.Success)
	if data != nil {
		s.Require().NoError(json.Unmarshal(env.Data, data))
	}
	return env
}

func newRequestWithoutAuth(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
