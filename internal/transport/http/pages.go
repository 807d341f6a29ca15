package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var verifiedPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>Email Verification</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#2193b0,#6dd5ed); color: #fff; min-height: 100vh; display: flex; justify-content: center; align-items: center; }
.card { background: rgba(255,255,255,0.12); padding: 48px 40px; border-radius: 8px; text-align: center; max-width: 420px; box-shadow: 0 10px 40px rgba(0,0,0,0.2); }
.card h1 { margin-top: 0; }
.card p { font-size: 16px; opacity: 0.9; }
.error h1 { color: #ffd4d4; }
</style>
</head>
<body>
<div class="card" id="card">
  <h1 id="headline">Email verified</h1>
  <p id="detail">Your email address has been verified. You can sign in to your account now.</p>
</div>
<script>
const params = new URLSearchParams(window.location.search);
if (params.get('error')) {
  document.getElementById('card').classList.add('error');
  document.getElementById('headline').textContent = 'Verification failed';
  document.getElementById('detail').textContent = params.get('message') || 'The verification link is invalid.';
}
</script>
</body>
</html>`

// verifiedPage is both the success landing and the error page: failed
// verification redirects back here with error and message query parameters.
func (h *accountHandler) verifiedPage(c echo.Context) error {
	return c.HTML(http.StatusOK, verifiedPageHTML)
}
