package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/external/vapi"
	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/session"
	analysisuse "github.com/interviewdeck/interview-analyzer/internal/usecase/analysis"
	dashuse "github.com/interviewdeck/interview-analyzer/internal/usecase/dashboard"
)

// dashboardFixture runs the dashboard against the in-memory Vapi mock and a
// stubbed completion client
type dashboardFixture struct {
	e       *echo.Echo
	cookies []*http.Cookie
}

func newDashboardFixture(reply string) *dashboardFixture {
	vapiClient := vapi.NewClient("", "", true)
	completion := &stubCompletion{reply: reply}

	analysisSvc := analysisuse.NewService(vapiClient, completion, nil)
	callSvc := dashuse.NewService(vapiClient, nil)
	sessions := session.NewStore(time.Hour)

	e := echo.New()
	NewDashboardHandler(analysisSvc, callSvc, sessions, nil).Setup(e)

	return &dashboardFixture{e: e}
}

func (f *dashboardFixture) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range f.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		f.cookies = cookies
	}
	return rec
}

// page performs a GET / and returns the rendered HTML
func (f *dashboardFixture) page(t *testing.T) string {
	rec := f.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestDashboard_InitialPage(t *testing.T) {
	f := newDashboardFixture("")

	html := f.page(t)

	assert.Contains(t, html, "Interview Analysis Dashboard")
	assert.Contains(t, html, "Start New Call")
	assert.Contains(t, html, "No call started")
	assert.NotContains(t, html, "End Current Call")
	require.NotEmpty(t, f.cookies)
}

func TestDashboard_StartAndEndCall(t *testing.T) {
	f := newDashboardFixture("")

	rec := f.do(http.MethodPost, "/calls/start", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	html := f.page(t)
	assert.Contains(t, html, "Call started with ID")
	assert.Contains(t, html, "End Current Call")
	assert.Contains(t, html, "In progress")

	rec = f.do(http.MethodPost, "/calls/end", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	html = f.page(t)
	assert.Contains(t, html, "ended successfully")
	assert.Contains(t, html, "Ended")
	assert.NotContains(t, html, "End Current Call")
}

func TestDashboard_EndWithoutCall(t *testing.T) {
	f := newDashboardFixture("")

	f.do(http.MethodPost, "/calls/end", url.Values{})

	html := f.page(t)
	assert.Contains(t, html, "No call in progress")
}

func TestDashboard_AnalyzeSpecificCall(t *testing.T) {
	f := newDashboardFixture(`{"overall_score": 8.4, "detailed_feedback": {"creativity": {"score": 9, "feedback": "inventive", "strengths": "ideas", "improvements": "focus"}}, "summary": "strong candidate", "red_flags": ""}`)

	f.do(http.MethodPost, "/analyze", url.Values{"call_id": {"some-ended-call"}})

	html := f.page(t)
	assert.Contains(t, html, "Analysis completed!")
	assert.Contains(t, html, "8.4")
	assert.Contains(t, html, "strong candidate")
	assert.Contains(t, html, "Creativity")
	assert.Contains(t, html, "inventive")
	assert.Contains(t, html, "Full Transcript")
}

func TestDashboard_AnalyzeWithoutCallID(t *testing.T) {
	f := newDashboardFixture("")

	f.do(http.MethodPost, "/analyze", url.Values{})

	html := f.page(t)
	assert.Contains(t, html, "Please enter a Call ID")
}

func TestDashboard_AnalyzeLatestWithNoCompletedCalls(t *testing.T) {
	f := newDashboardFixture("")

	f.do(http.MethodPost, "/analyze/latest", url.Values{})

	html := f.page(t)
	assert.Contains(t, html, "No completed calls found")
}

func TestDashboard_UnparseableReplyShowsRawText(t *testing.T) {
	f := newDashboardFixture("the model refused to answer")

	f.do(http.MethodPost, "/analyze", url.Values{"call_id": {"some-ended-call"}})

	html := f.page(t)
	assert.Contains(t, html, "Failed to parse AI response")
	assert.Contains(t, html, "the model refused to answer")
}
