package handler

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/interviewdeck/interview-analyzer/internal/domain/entities"
	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/session"
)

// pageData is everything the dashboard template needs
type pageData struct {
	Session       *session.Session
	Evaluation    *entities.EvaluationResult
	Criteria      []criterionView
	AnalysisError string
	RawResponse   string
	CallActive    bool
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Interview Analysis Dashboard</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; }
main { flex: 1; padding: 1.5rem; max-width: 60rem; }
aside { width: 16rem; background: #f4f4f4; padding: 1.5rem; min-height: 100vh; }
h1 { font-size: 1.5rem; }
h2 { font-size: 1.2rem; margin-top: 2rem; }
.notice { padding: .6rem 1rem; border-radius: 4px; background: #e6f4e6; }
.notice.error { background: #fbe4e4; }
.score { font-size: 2rem; font-weight: bold; }
details { margin: .5rem 0; border: 1px solid #ddd; border-radius: 4px; padding: .5rem; }
pre { white-space: pre-wrap; background: #f8f8f8; padding: .8rem; }
form { display: inline-block; margin-right: .5rem; }
.status-dot { display: inline-block; width: .7rem; height: .7rem; border-radius: 50%; margin-right: .4rem; }
.status-active { background: #2e9e44; }
.status-idle { background: #999; }
</style>
</head>
<body>
<main>
<h1>Interview Analysis Dashboard</h1>

{{if .Session.Notice}}
<p class="notice{{if .Session.NoticeIsError}} error{{end}}">{{.Session.Notice}}</p>
{{end}}

<h2>Call Management</h2>
<form method="post" action="/calls/start"><button type="submit">Start New Call</button></form>
{{if .CallActive}}
<form method="post" action="/calls/end"><button type="submit">End Current Call</button></form>
{{end}}

<h2>Transcript Analysis</h2>
<form method="post" action="/analyze/latest"><button type="submit">Analyze Latest Completed Call</button></form>
<form method="post" action="/analyze">
<input type="text" name="call_id" placeholder="Enter Call ID">
<button type="submit">Analyze This Call</button>
</form>

{{if .Evaluation}}
<h2>Analysis Results</h2>
<p>Overall Score: <span class="score">{{printf "%.1f" .Evaluation.OverallScore}}</span></p>

<h2>Detailed Feedback</h2>
{{range .Criteria}}
<details>
<summary>{{.Label}}{{if .Present}} — {{printf "%.0f" .Feedback.Score}}/10{{end}}</summary>
{{if .Present}}
<p>{{.Feedback.Feedback}}</p>
<p><strong>Strengths:</strong> {{.Feedback.Strengths}}</p>
<p><strong>Improvements:</strong> {{.Feedback.Improvements}}</p>
{{else}}
<p>No feedback returned for this criterion.</p>
{{end}}
</details>
{{end}}

<h2>Summary</h2>
<p>{{.Evaluation.Summary}}</p>
{{if .Evaluation.RedFlags}}
<h2>Red Flags</h2>
<p class="notice error">{{.Evaluation.RedFlags}}</p>
{{end}}
{{end}}

{{if .AnalysisError}}
<h2>Analysis Results</h2>
<p class="notice error">{{.AnalysisError}}</p>
{{if .RawResponse}}
<h2>Raw Model Reply</h2>
<pre>{{.RawResponse}}</pre>
{{end}}
{{end}}

{{if .Session.Transcript}}
<h2>Full Transcript</h2>
<pre>{{.Session.Transcript}}</pre>
{{end}}
</main>

<aside>
<h2>Call Status</h2>
{{if .Session.CurrentCallID}}
<p>
<span class="status-dot {{if .CallActive}}status-active{{else}}status-idle{{end}}"></span>
{{if .CallActive}}In progress{{else}}Ended{{end}}
</p>
<p>Call ID: {{.Session.CurrentCallID}}</p>
{{else}}
<p><span class="status-dot status-idle"></span>No call started</p>
{{end}}
</aside>
</body>
</html>
`))

// renderPage builds the dashboard HTML for one session
func renderPage(sess *session.Session) string {
	data := pageData{
		Session:    sess,
		CallActive: sess.CurrentCallID != "" && !sess.CallEnded,
	}

	if sess.Analysis != nil {
		if msg, failed := sess.Analysis["error"]; failed {
			data.AnalysisError = fmt.Sprint(msg)
			if raw, ok := sess.Analysis["raw_response"]; ok {
				data.RawResponse = fmt.Sprint(raw)
			}
		} else if eval, err := entities.EvaluationFromMap(sess.Analysis); err == nil {
			data.Evaluation = eval
			data.Criteria = criterionViews(eval)
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "<html><body>Failed to render dashboard</body></html>"
	}
	return buf.String()
}
