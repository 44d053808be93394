package browser

// Package browser implements the active-tab lookup against a running
// browser's Chrome DevTools Protocol endpoint via chromedp. It exposes the
// lookup behind the TabQuerier interface so the UI can be tested with a
// stub.
