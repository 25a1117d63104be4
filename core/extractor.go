package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor provides methods for parsing the platform's HTML shell.
var Extractor = &extractor{}

type extractor struct{}

var (
	dtsgTokenRe = regexp.MustCompile(`"DTSGInitialData"[^}]*?"token":"([^"]+)"`)
	viewerIDRe  = regexp.MustCompile(`"(?:USER_ID|ACCOUNT_ID)":"(\d+)"`)
)

// FormToken extracts the anti-CSRF form token that must accompany every
// mutation. It is present both as a hidden form input and inside the
// bootstrap script data; the input is tried first.
func (e *extractor) FormToken(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to create goquery document: %w", err)
	}

	if token, exists := doc.Find("input[name=fb_dtsg]").Attr("value"); exists && token != "" {
		return token, nil
	}

	matches := dtsgTokenRe.FindStringSubmatch(html)
	if len(matches) < 2 {
		return "", fmt.Errorf("form token not found")
	}
	return matches[1], nil
}

// ViewerID extracts the numeric identifier of the logged-in user from the
// bootstrap script data. Returns an empty string when no viewer is present.
func (e *extractor) ViewerID(html string) string {
	matches := viewerIDRe.FindStringSubmatch(html)
	if len(matches) < 2 || matches[1] == "0" {
		return ""
	}
	return matches[1]
}

// LoggedOut reports whether the page is a login wall rather than the
// logged-in shell.
func (e *extractor) LoggedOut(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find("#login_form, form[action*='login'] input[name=email]").Length() > 0
}
