// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package server

import "html/template"

const style = `
body { background: #111827; color: #f3f4f6; font-family: sans-serif; margin: 0; }
a { color: #60a5fa; text-decoration: none; }
a:hover { color: #93c5fd; }
.wrap { max-width: 72rem; margin: 0 auto; padding: 2rem 1rem; }
.card { background: #1f2937; border-radius: .5rem; padding: 1.5rem; }
.grid3 { display: grid; grid-template-columns: repeat(3, 1fr); gap: 2rem; margin-top: 4rem; }
.muted { color: #9ca3af; }
.button { display: inline-block; padding: 1rem 2rem; background: #3b82f6; color: #fff; border-radius: .5rem; font-weight: 600; }
.lanes { display: flex; gap: .5rem; }
.lane { width: 3.5rem; height: 2.5rem; display: flex; align-items: center; justify-content: center; border: 1px solid #4b5563; border-radius: .5rem; background: #1f2937; transition: all .3s; }
.lane.hl { background: #3b82f6; border-color: #93c5fd; transform: scale(1.1); }
.bin { font-family: monospace; font-size: .7rem; color: #9ca3af; text-align: center; }
.picker a { display: block; padding: .4rem .75rem; border-radius: .5rem; background: #374151; color: #e5e7eb; margin-bottom: .5rem; width: 7rem; }
.picker a.sel { background: #3b82f6; color: #fff; }
.opname { text-align: center; font-weight: bold; color: #93c5fd; }
.diag { background: #7f1d1d; color: #fecaca; padding: .75rem 1rem; border-radius: .5rem; margin-bottom: 1rem; }
pre { background: #1f2937; border: 1px solid #374151; padding: .75rem; border-radius: .25rem; font-size: .75rem; overflow-x: auto; }
button { background: #1f2937; color: #e5e7eb; border: 0; border-radius: .5rem; padding: .4rem .75rem; cursor: pointer; }
`

var landingTemplate = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>SIMD Operations Visualizer</title><style>` + style + `</style></head>
<body>
<div class="wrap" style="text-align: center">
  <h1>SIMD Operations Visualizer</h1>
  <p class="muted">Explore and understand Single Instruction Multiple Data (SIMD) operations through
  interactive visualizations. Perfect for learning parallel computing concepts.</p>
  <p><a class="button" href="/visualization">Launch Visualizer</a></p>
  <div class="grid3">
  {{- range .Categories}}
    <div class="card"><h3>{{.Title}}</h3><p class="muted">{{.Blurb}}</p></div>
  {{- end}}
  </div>
  <p class="muted">Vectors hold {{.Width}} 32-bit lanes.
  {{- if .Features}} This host supports {{range $i, $f := .Features}}{{if $i}}, {{end}}{{$f}}{{end}}.{{end}}</p>
</div>
</body>
</html>
`))

var visualizerTemplate = template.Must(template.New("visualizer").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Name}} - SIMD Operations Visualizer</title><style>` + style + `</style></head>
<body>
<div class="wrap">
  <div style="display: flex; justify-content: space-between; align-items: center">
    <h2>Advanced SIMD Operations Visualizer</h2>
    <a href="/">Back to Home</a>
  </div>
  {{with .Diagnostic}}<div class="diag" id="diag">{{.}}</div>{{end}}
  <div style="display: grid; grid-template-columns: 1fr 3fr; gap: 1rem">
    <div class="picker">
    {{- range .Groups}}
      <h4>{{.Title}}</h4>
      {{- range .Choices}}
      <a href="/visualization?op={{.ID}}" data-op="{{.ID}}"{{if .Selected}} class="sel"{{end}}>{{.Name}}</a>
      {{- end}}
    {{- end}}
    </div>
    <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 1rem">
      <div class="card" id="rows">
      {{- range $i, $r := .Rows}}
        <div class="row"><div>{{$r.Label}}</div>
          <div class="lanes">
          {{- range $r.Cells}}
            <div><div class="lane{{if .Highlight}} hl{{end}}">{{.Value}}</div>{{with .Binary}}<div class="bin">{{.}}</div>{{end}}</div>
          {{- end}}
          </div>
        </div>
        {{- if eq $i 0}}
        <div class="row opname" id="opname">{{$.Name}}</div>
        {{- end}}
      {{- end}}
        <p style="text-align: center">
          <button id="play">{{if .State.Running}}Pause{{else}}Play{{end}}</button>
          <button id="reset">Reset</button>
        </p>
      </div>
      <div>
        <div class="card"><b>C++ SIMD Code:</b><pre id="code">{{.Code}}</pre></div>
        <div class="card" style="margin-top: 1rem"><b>Operation Description:</b>
          <p class="muted" id="description">{{.Description}}</p></div>
      </div>
    </div>
  </div>
</div>
<script>
(function() {
  function lane(v, bin, hl) {
    var d = document.createElement("div");
    var l = document.createElement("div");
    l.className = hl ? "lane hl" : "lane";
    l.textContent = v;
    d.appendChild(l);
    if (bin) {
      var b = document.createElement("div");
      b.className = "bin";
      b.textContent = bin;
      d.appendChild(b);
    }
    return d;
  }
  function row(l, hl) {
    var r = document.createElement("div");
    r.className = "row";
    var t = document.createElement("div");
    t.textContent = l.label;
    r.appendChild(t);
    var lanes = document.createElement("div");
    lanes.className = "lanes";
    l.values.forEach(function(v, i) {
      lanes.appendChild(lane(v, l.binary ? l.binary[i] : "", i === hl));
    });
    r.appendChild(lanes);
    return r;
  }
  function paint(f) {
    var rows = document.getElementById("rows");
    rows.querySelectorAll(".row").forEach(function(r) { r.remove(); });
    var anchor = rows.firstChild;
    rows.insertBefore(row(f.a, f.highlight), anchor);
    var name = document.createElement("div");
    name.className = "row opname";
    name.id = "opname";
    name.textContent = f.name;
    rows.insertBefore(name, anchor);
    [f.b, f.result].forEach(function(l) {
      if (l) rows.insertBefore(row(l, f.highlight), anchor);
    });
    document.getElementById("play").textContent = f.state.running ? "Pause" : "Play";
    document.getElementById("code").textContent = f.code;
    document.getElementById("description").textContent = f.description;
    document.querySelectorAll(".picker a").forEach(function(a) {
      a.className = a.dataset.op === f.state.operation ? "sel" : "";
    });
  }
  function post(path) {
    fetch(path, {method: "POST", credentials: "same-origin"})
      .then(function(r) { return r.json(); })
      .then(function(f) { if (!f.error) paint(f); });
  }
  document.getElementById("play").onclick = function() { post("/api/play"); };
  document.getElementById("reset").onclick = function() { post("/api/reset"); };
  document.querySelectorAll(".picker a").forEach(function(a) {
    a.onclick = function(e) {
      e.preventDefault();
      var d = document.getElementById("diag");
      if (d) d.remove();
      history.replaceState(null, "", a.href);
      post("/api/select?op=" + encodeURIComponent(a.dataset.op));
    };
  });
  function connect() {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + "/api/stream");
    ws.onmessage = function(e) { paint(JSON.parse(e.data)); };
    ws.onclose = function() { setTimeout(connect, 1000); };
  }
  connect();
})();
</script>
</body>
</html>
`))
