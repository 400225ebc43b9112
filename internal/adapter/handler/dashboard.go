package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/interviewdeck/interview-analyzer/internal/domain/entities"
	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/session"
	analysisuse "github.com/interviewdeck/interview-analyzer/internal/usecase/analysis"
	dashuse "github.com/interviewdeck/interview-analyzer/internal/usecase/dashboard"
)

const sessionCookie = "dashboard_session"

// DashboardHandler serves the interactive analysis dashboard
type DashboardHandler struct {
	analysisSvc analysisuse.Service
	callSvc     dashuse.Service
	sessions    *session.Store
	logger      *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(analysisSvc analysisuse.Service, callSvc dashuse.Service, sessions *session.Store, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		analysisSvc: analysisSvc,
		callSvc:     callSvc,
		sessions:    sessions,
		logger:      logger,
	}
}

// Setup registers dashboard routes
func (h *DashboardHandler) Setup(e *echo.Echo) {
	e.GET("/", h.Page)
	e.POST("/calls/start", h.StartCall)
	e.POST("/calls/end", h.EndCall)
	e.POST("/analyze/latest", h.AnalyzeLatest)
	e.POST("/analyze", h.AnalyzeCall)
}

// currentSession resolves the caller's session from the cookie, creating one
// when absent or expired
func (h *DashboardHandler) currentSession(c echo.Context) *session.Session {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if sess, ok := h.sessions.Get(cookie.Value); ok {
			return sess
		}
	}

	sess := h.sessions.New()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return sess
}

// Page renders the dashboard from session state
func (h *DashboardHandler) Page(c echo.Context) error {
	sess := h.currentSession(c)
	return c.HTML(http.StatusOK, renderPage(sess))
}

// StartCall submits the fixed interview assistant configuration and records
// the returned call id in the session
func (h *DashboardHandler) StartCall(c echo.Context) error {
	sess := h.currentSession(c)

	call, err := h.callSvc.StartCall(c.Request().Context())
	if err != nil {
		return h.finish(c, sess, "Failed to start call: "+errorText(err), true)
	}

	sess.CurrentCallID = call.ID
	sess.CallEnded = false
	return h.finish(c, sess, "Call started with ID: "+call.ID, false)
}

// EndCall ends the session's current call
func (h *DashboardHandler) EndCall(c echo.Context) error {
	sess := h.currentSession(c)
	if sess.CurrentCallID == "" {
		return h.finish(c, sess, "No call in progress", true)
	}

	if err := h.callSvc.EndCall(c.Request().Context(), sess.CurrentCallID); err != nil {
		return h.finish(c, sess, "Failed to end call: "+errorText(err), true)
	}

	sess.CallEnded = true
	return h.finish(c, sess, "Call "+sess.CurrentCallID+" ended successfully", false)
}

// AnalyzeLatest picks the most recently completed call and analyzes it
func (h *DashboardHandler) AnalyzeLatest(c echo.Context) error {
	sess := h.currentSession(c)

	callID, err := h.callSvc.LatestCompletedCall(c.Request().Context())
	if err != nil {
		return h.finish(c, sess, "Error fetching calls: "+errorText(err), true)
	}

	return h.analyze(c, sess, callID)
}

// AnalyzeCall analyzes a specific call id entered in the form
func (h *DashboardHandler) AnalyzeCall(c echo.Context) error {
	sess := h.currentSession(c)

	callID := c.FormValue("call_id")
	if callID == "" {
		return h.finish(c, sess, "Please enter a Call ID", true)
	}

	return h.analyze(c, sess, callID)
}

func (h *DashboardHandler) analyze(c echo.Context, sess *session.Session, callID string) error {
	ctx := c.Request().Context()

	transcript, err := h.callSvc.WaitForTranscript(ctx, callID)
	if err != nil {
		logError(h.logger, c, err)
		return h.finish(c, sess, "Analysis failed: "+errorText(err), true)
	}

	sess.Transcript = transcript
	sess.Analysis = h.analysisSvc.AnalyzeTranscript(ctx, transcript)
	return h.finish(c, sess, "Analysis completed!", false)
}

// finish saves the session with a notice and redirects back to the page
func (h *DashboardHandler) finish(c echo.Context, sess *session.Session, notice string, isError bool) error {
	sess.Notice = notice
	sess.NoticeIsError = isError
	h.sessions.Save(sess)
	return c.Redirect(http.StatusSeeOther, "/")
}

// criterionView is one rubric row in the rendered page
type criterionView struct {
	Label    string
	Feedback entities.CriterionFeedback
	Present  bool
}

var criterionLabels = map[string]string{
	entities.CriterionProblemStructuring:   "Problem Structuring",
	entities.CriterionQuantitativeAnalysis: "Quantitative Analysis",
	entities.CriterionBusinessJudgment:     "Business Judgment",
	entities.CriterionCommunicationClarity: "Communication Clarity",
	entities.CriterionCreativity:           "Creativity",
}

// criterionViews orders the available feedback by the fixed rubric. Missing
// criteria render as absent rows rather than failing the page.
func criterionViews(result *entities.EvaluationResult) []criterionView {
	views := make([]criterionView, 0, len(entities.EvaluationCriteria))
	for _, key := range entities.EvaluationCriteria {
		view := criterionView{Label: criterionLabels[key]}
		if result != nil {
			if fb, ok := result.DetailedFeedback[key]; ok {
				view.Feedback = fb
				view.Present = true
			}
		}
		views = append(views, view)
	}
	return views
}
