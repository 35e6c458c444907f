// Package ui provides the Datastar landing page and survey form.
package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const datastarBundle = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.Doctype(h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src(datastarBundle)),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"), g.Textf("© %s", title)),
		),
	))
}

const styles = `
:root {
	--primary: #2563eb;
	--primary-dark: #1d4ed8;
	--success: #10b981;
	--danger: #ef4444;
	--bg: #f8fafc;
	--card-bg: #ffffff;
	--text: #1e293b;
	--text-muted: #64748b;
	--border: #e2e8f0;
}

* {
	box-sizing: border-box;
	margin: 0;
	padding: 0;
}

body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	background: var(--bg);
	color: var(--text);
	line-height: 1.6;
}

.container {
	max-width: 760px;
	margin: 0 auto;
	padding: 2rem;
}

.footer {
	text-align: center;
	padding: 2rem;
	color: var(--text-muted);
	border-top: 1px solid var(--border);
	margin-top: 2rem;
}

.hero {
	text-align: center;
	padding: 3rem 0 2rem;
}

.hero h1 {
	font-size: 2.25rem;
	margin-bottom: 1rem;
}

.hero p {
	color: var(--text-muted);
	font-size: 1.125rem;
	margin-bottom: 2rem;
}

.actions {
	display: flex;
	gap: 1rem;
	justify-content: center;
	flex-wrap: wrap;
}

button, .button {
	background: var(--primary);
	color: white;
	border: none;
	padding: 0.75rem 1.5rem;
	border-radius: 6px;
	font-size: 1rem;
	cursor: pointer;
	text-decoration: none;
	transition: background 0.2s;
}

button:hover, .button:hover {
	background: var(--primary-dark);
}

button:disabled {
	opacity: 0.5;
	cursor: not-allowed;
}

.button.secondary {
	background: white;
	color: var(--primary);
	border: 1px solid var(--primary);
}

.survey {
	background: var(--card-bg);
	border: 1px solid var(--border);
	border-radius: 12px;
	padding: 2rem;
}

.survey h2 {
	font-size: 1.25rem;
	margin: 1.5rem 0 1rem;
}

.question {
	margin-bottom: 1.25rem;
}

.question label, .question .prompt {
	display: block;
	font-weight: 500;
	margin-bottom: 0.5rem;
}

.question input,
.question select {
	width: 100%;
	padding: 0.75rem;
	border: 1px solid var(--border);
	border-radius: 6px;
	font-size: 1rem;
}

.choices {
	display: flex;
	flex-wrap: wrap;
	gap: 0.5rem;
}

.choice {
	background: white;
	color: var(--text);
	border: 1px solid var(--border);
	padding: 0.5rem 1rem;
}

.choice:hover {
	background: #eff6ff;
}

.choice.selected {
	background: var(--primary);
	border-color: var(--primary);
	color: white;
}

.field-error, .submit-error {
	color: var(--danger);
	font-size: 0.875rem;
	margin-top: 0.25rem;
}

.submit-error {
	margin-top: 1rem;
}

.thank-you {
	text-align: center;
	padding: 3rem 1rem;
}

.thank-you h2 {
	color: var(--success);
	margin-bottom: 1rem;
}

.loading-spinner {
	display: inline-block;
	width: 1rem;
	height: 1rem;
	border: 2px solid rgba(255,255,255,0.4);
	border-top-color: white;
	border-radius: 50%;
	animation: spin 0.8s linear infinite;
	vertical-align: middle;
}

@keyframes spin {
	to { transform: rotate(360deg); }
}
`
