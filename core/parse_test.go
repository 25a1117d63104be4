package core

import (
	"errors"
	"testing"
)

func TestParseAndCheckLogin(t *testing.T) {
	// A healthy mutation response with the anti-hijacking prefix.
	gr, err := ParseAndCheckLogin(`for (;;);{"data":{"profile":{"id":"1"}}}`)
	if err != nil {
		t.Fatalf("ParseAndCheckLogin failed: %v", err)
	}
	if len(gr.Data) == 0 {
		t.Error("Expected data to be populated")
	}

	// The prefix is optional; plain JSON must decode too.
	if _, err := ParseAndCheckLogin(`{"data":{}}`); err != nil {
		t.Errorf("Expected plain JSON to parse, got %v", err)
	}
}

func TestParseAndCheckLogin_NotLoggedIn(t *testing.T) {
	body := `for (;;);{"error":1357001,"errorSummary":"Not logged in","errorDescription":"Please log in to continue."}`
	_, err := ParseAndCheckLogin(body)
	var ae *AuthError
	if !errors.As(err, &ae) {
		t.Fatalf("Expected an AuthError, got %T: %v", err, err)
	}
	if ae.Reason != "Not logged in" {
		t.Errorf("Expected server summary to be preserved, got %q", ae.Reason)
	}
}

func TestParseAndCheckLogin_RemoteError(t *testing.T) {
	body := `for (;;);{"error":1675030,"errorSummary":"Action blocked","errorDescription":"Try again later."}`
	_, err := ParseAndCheckLogin(body)
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("Expected a RemoteError, got %T: %v", err, err)
	}
	if re.Code != 1675030 || re.Summary != "Action blocked" {
		t.Errorf("Expected server error to pass through, got %+v", re)
	}
}

func TestParseAndCheckLogin_ErrorsArray(t *testing.T) {
	body := `{"errors":[{"code":1357031,"message":"The source of this content is unavailable","severity":"CRITICAL"}]}`
	_, err := ParseAndCheckLogin(body)
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("Expected a RemoteError, got %T: %v", err, err)
	}
	if re.Summary != "The source of this content is unavailable" {
		t.Errorf("Expected the first error's message, got %q", re.Summary)
	}
}

func TestParseAndCheckLogin_Malformed(t *testing.T) {
	if _, err := ParseAndCheckLogin("<html>gateway timeout</html>"); err == nil {
		t.Error("Expected an error for a non-JSON body")
	}
}
