// Package tips fetches the daily wellness quote from zenquotes.io.
package tips

import (
	"encoding/json"
	"net/http"
	"time"
)

// QuoteURL is a package variable so tests can point it at a stub server.
var QuoteURL = "https://zenquotes.io/api/today"

// Fallback pair returned whenever the upstream service fails.
const (
	FallbackQuote  = "Could not fetch a tip. Check your internet connection."
	FallbackAuthor = "MoodLog"
)

var client = &http.Client{Timeout: 10 * time.Second}

type Tip struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// Fetch returns today's tip, degrading to the fallback pair on any
// upstream failure rather than surfacing an error to the caller.
func Fetch() Tip {
	fallback := Tip{Quote: FallbackQuote, Author: FallbackAuthor}

	resp, err := client.Get(QuoteURL)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallback
	}

	var payload []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || len(payload) == 0 {
		return fallback
	}

	return Tip{Quote: payload[0].Q, Author: payload[0].A}
}
