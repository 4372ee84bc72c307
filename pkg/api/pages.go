// Copyright (c) 2026, The StatusKit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/render"
	"github.com/statuskit/statuskit/pkg/server"
	"github.com/statuskit/statuskit/pkg/status"
)

// pageData feeds the interactive page template. Section bodies went
// through the interactive writer already (provider-controlled escaping),
// so they are inserted as pre-rendered HTML.
type pageData struct {
	Name     string
	Detail   bool
	Nav      []status.Info
	Sections []pageSection
}

type pageSection struct {
	Label string
	Title string
	Body  template.HTML
}

var pageTemplate = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>{{.Name}} status</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
nav ul { list-style: none; padding: 0; }
nav li { display: inline-block; margin-right: 1em; }
section { border-top: 1px solid #ccc; padding: 1em 0; }
.downloads { color: #555; }
pre.body { font-family: monospace; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>{{.Name}} status</h1>
<p class="downloads">
<a href="/v1/status.txt">Download as text</a> |
<a href="/v1/status.zip">Download as zip</a>
{{- if .Detail}} | <a href="/v1/status">All providers</a>{{end}}
</p>
<nav><ul>
{{- range .Nav}}
<li><a href="/v1/status/{{.Label}}">{{.Title}}</a></li>
{{- end}}
</ul></nav>
{{- range .Sections}}
<section id="{{.Label}}">
<h2>{{.Title}}</h2>
<pre class="body">{{.Body}}</pre>
</section>
{{- end}}
</body>
</html>
`))

// writeInteractivePage serves the HTML index (empty label) or a single
// provider's detail page. Section bodies are produced by the interactive
// writer per provider, navigation lists every provider regardless of mode.
func (h *Handler) writeInteractivePage(w http.ResponseWriter, r *http.Request, label string) {
	descriptors := h.source.Providers()

	data := pageData{
		Name:   name,
		Detail: label != "",
		Nav:    status.Infos(descriptors),
	}

	if label != "" {
		desc, ok := h.source.Provider(label)
		if !ok {
			server.WriteError(w, r, http.StatusNotFound, skerrors.ErrCodeNotFound,
				"No status provider with the requested label", false, map[string]any{
					"label": label,
				})
			return
		}
		descriptors = []*status.Descriptor{desc}
	}

	for _, desc := range descriptors {
		if label == "" && !desc.SupportsMode(status.ModeInteractive) {
			continue
		}
		var body bytes.Buffer
		if err := h.dispatcher.RenderProvider(render.NewHTML(&body), desc, status.ModeInteractive); err != nil {
			server.WriteErrorFromErr(w, r, err, "Rendering status page failed", nil)
			return
		}
		data.Sections = append(data.Sections, pageSection{
			Label: desc.Label,
			Title: desc.Title,
			Body:  template.HTML(body.String()), //nolint:gosec
		})
	}

	var page bytes.Buffer
	if err := pageTemplate.Execute(&page, data); err != nil {
		server.WriteErrorFromErr(w, r, err, "Rendering status page failed", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page.Bytes()); err != nil {
		slog.Debug("writing status page failed", "error", err)
	}
}
