// SPDX-License-Identifier: MIT
// Package extract pulls sender and recipient addresses out of raw message
// bytes.
//
// Input is decoded as ISO-8859-1, which maps every byte to one rune and so
// never fails. Address tokens are matched in order of appearance; the first
// token carrying a From label names the sender and every later token is a
// recipient candidate. Tokens seen before the sender are discarded.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// DefaultDomain is the address domain matched when none is configured.
const DefaultDomain = "enron.com"

// ErrInvalidDomain is returned by New for an empty or malformed domain.
var ErrInvalidDomain = errors.New("extract: invalid domain")

var domainRe = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

// Message is the header-level view of one message file.
type Message struct {
	Sender     string
	Recipients []string
}

// HasSender reports whether a From-labelled address was found.
func (m Message) HasSender() bool { return m.Sender != "" }

// Option tunes an Extractor.
type Option func(*Extractor)

// WithLowercase folds every extracted address to lower case.
func WithLowercase() Option {
	return func(e *Extractor) { e.lower = true }
}

// Extractor is safe for concurrent use; it holds only compiled state.
type Extractor struct {
	domain string
	tokens *regexp.Regexp
	lower  bool
}

// New compiles the token pattern for domain. An empty domain selects
// DefaultDomain.
func New(domain string, opts ...Option) (*Extractor, error) {
	if domain == "" {
		domain = DefaultDomain
	}
	if !domainRe.MatchString(domain) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}

	// Group 1: label, group 2: labelled address, group 3: bare address.
	local := `[A-Za-z0-9._%+-]+@` + regexp.QuoteMeta(domain)
	pattern := `(?i)(?:(From|To|Cc|Bcc):\s*\b(` + local + `)\b|\b(` + local + `)\b)`

	e := &Extractor{domain: domain, tokens: regexp.MustCompile(pattern)}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Domain returns the matched address domain.
func (e *Extractor) Domain() string { return e.domain }

// Extract decodes raw as ISO-8859-1 and returns the addresses it carries.
func (e *Extractor) Extract(raw []byte) Message {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// Unreachable for ISO-8859-1; fall back to the raw bytes.
		text = raw
	}

	return e.Parse(string(text))
}

// Parse scans already-decoded text.
func (e *Extractor) Parse(text string) Message {
	var msg Message
	for _, m := range e.tokens.FindAllStringSubmatch(text, -1) {
		label, addr := m[1], m[2]
		if addr == "" {
			addr = m[3]
		}
		if e.lower {
			addr = strings.ToLower(addr)
		}

		if msg.Sender == "" {
			if strings.EqualFold(label, "From") {
				msg.Sender = addr
			}
			continue
		}
		msg.Recipients = append(msg.Recipients, addr)
	}

	return msg
}
