package server

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Red Flag Identifier</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
  textarea { width: 100%; height: 14rem; font-family: monospace; }
  select, input, button { margin: 0.25rem 0.5rem 0.25rem 0; padding: 0.3rem; }
  table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
  th, td { border: 1px solid #ccc; padding: 0.35rem 0.5rem; text-align: left; font-size: 0.9rem; }
  .critical { color: #b00020; font-weight: bold; }
  .high     { color: #b00020; }
  .medium   { color: #9a6700; }
  .low      { color: #0550ae; }
</style>
</head>
<body>
<h1>Red Flag Identifier</h1>
<p>Paste a transcript below to scan for compliance, HR, and fraud red flags.</p>
<textarea id="text" placeholder="Paste transcript text here..."></textarea>
<div>
  <select id="mode">
    <option value="rules-only">Rules only</option>
    <option value="hybrid">Hybrid (rules + AI)</option>
    <option value="ai-only">AI only</option>
  </select>
  <select id="severity">
    <option value="low">Low and above</option>
    <option value="medium">Medium and above</option>
    <option value="high">High and above</option>
    <option value="critical">Critical only</option>
  </select>
  <input id="api_key" type="password" placeholder="API key (AI modes)">
  <button onclick="run()">Analyze</button>
</div>
<div id="result"></div>
<script>
function esc(s) {
  return String(s).replace(/[&<>"]/g, function(c) {
    return {'&':'&amp;','<':'&lt;','>':'&gt;','"':'&quot;'}[c];
  });
}
async function run() {
  const body = {
    text: document.getElementById('text').value,
    mode: document.getElementById('mode').value,
    severity: document.getElementById('severity').value,
    api_key: document.getElementById('api_key').value,
  };
  const out = document.getElementById('result');
  out.textContent = 'Analyzing...';
  const resp = await fetch('/analyze', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body),
  });
  const data = await resp.json();
  if (!resp.ok) { out.textContent = 'Error: ' + data.error; return; }
  if (data.total === 0) { out.textContent = 'No red flags found.'; return; }
  let html = '<table><tr><th>#</th><th>Severity</th><th>Category</th><th>Line</th>' +
             '<th>Speaker</th><th>Description</th><th>Flagged text</th><th>Source</th></tr>';
  data.findings.forEach(function(f, i) {
    html += '<tr><td>' + (i + 1) + '</td>' +
      '<td class="' + f.severity + '">' + f.severity.toUpperCase() + '</td>' +
      '<td>' + esc(f.category) + '</td>' +
      '<td>' + (f.line_number || '-') + '</td>' +
      '<td>' + esc(f.speaker || '') + '</td>' +
      '<td>' + esc(f.description) + '</td>' +
      '<td>' + esc(f.matched_text) + '</td>' +
      '<td>' + f.source + '</td></tr>';
  });
  out.innerHTML = html + '</table>';
}
</script>
</body>
</html>
`
